package services

import (
	"fmt"
	"sort"
	"time"
)

// CompareForecasts diffs two forecast runs and describes every disagreement.
// Occurrences are grouped per dog; a mismatch is flagged when counts differ,
// when an occurrence exists on one side but not the other (matched by dog and
// calendar day), or when an aligned pair drifts by more than 24 hours.
// Purely descriptive: the caller decides where the reports go.
func CompareForecasts(primaryName string, alternateName string, primary []HeatOccurrence, alternate []HeatOccurrence) []string {
	mismatches := make([]string, 0)

	primaryByDog := groupOccurrencesByDog(primary)
	alternateByDog := groupOccurrencesByDog(alternate)

	dogIDs := make(map[uint]struct{}, len(primaryByDog)+len(alternateByDog))
	for dogID := range primaryByDog {
		dogIDs[dogID] = struct{}{}
	}
	for dogID := range alternateByDog {
		dogIDs[dogID] = struct{}{}
	}

	orderedDogIDs := make([]uint, 0, len(dogIDs))
	for dogID := range dogIDs {
		orderedDogIDs = append(orderedDogIDs, dogID)
	}
	sort.Slice(orderedDogIDs, func(i, j int) bool { return orderedDogIDs[i] < orderedDogIDs[j] })

	for _, dogID := range orderedDogIDs {
		primarySet := primaryByDog[dogID]
		alternateSet := alternateByDog[dogID]

		if len(primarySet) != len(alternateSet) {
			mismatches = append(mismatches, fmt.Sprintf(
				"dog %d: %s produced %d occurrences, %s produced %d",
				dogID, primaryName, len(primarySet), alternateName, len(alternateSet)))
		}

		mismatches = append(mismatches, missingOccurrences(dogID, primaryName, alternateName, primarySet, alternateSet)...)
		mismatches = append(mismatches, missingOccurrences(dogID, alternateName, primaryName, alternateSet, primarySet)...)
		mismatches = append(mismatches, driftedPairs(dogID, primarySet, alternateSet)...)
	}

	return mismatches
}

func groupOccurrencesByDog(occurrences []HeatOccurrence) map[uint][]HeatOccurrence {
	grouped := make(map[uint][]HeatOccurrence)
	for _, occurrence := range occurrences {
		grouped[occurrence.DogID] = append(grouped[occurrence.DogID], occurrence)
	}
	for dogID := range grouped {
		set := grouped[dogID]
		sort.Slice(set, func(i, j int) bool { return set[i].Date.Before(set[j].Date) })
		grouped[dogID] = set
	}
	return grouped
}

func missingOccurrences(dogID uint, haveName string, lackName string, have []HeatOccurrence, lack []HeatOccurrence) []string {
	missing := make([]string, 0)
	for _, occurrence := range have {
		if !containsDay(lack, occurrence.Date) {
			missing = append(missing, fmt.Sprintf(
				"dog %d: %s has occurrence on %s that %s lacks",
				dogID, haveName, occurrence.Date.Format("2006-01-02"), lackName))
		}
	}
	return missing
}

func containsDay(occurrences []HeatOccurrence, day time.Time) bool {
	for _, occurrence := range occurrences {
		if sameCalendarDay(occurrence.Date, day) {
			return true
		}
	}
	return false
}

func driftedPairs(dogID uint, primarySet []HeatOccurrence, alternateSet []HeatOccurrence) []string {
	drifted := make([]string, 0)
	pairs := len(primarySet)
	if len(alternateSet) < pairs {
		pairs = len(alternateSet)
	}
	for index := 0; index < pairs; index++ {
		gap := primarySet[index].Date.Sub(alternateSet[index].Date)
		if gap < 0 {
			gap = -gap
		}
		if gap > 24*time.Hour {
			drifted = append(drifted, fmt.Sprintf(
				"dog %d: aligned occurrence %d differs by %s (%s vs %s)",
				dogID, index, gap,
				primarySet[index].Date.Format("2006-01-02"),
				alternateSet[index].Date.Format("2006-01-02")))
		}
	}
	return drifted
}
