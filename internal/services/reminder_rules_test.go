package services

import (
	"testing"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

func TestReminderKeyDeterministic(t *testing.T) {
	t.Parallel()

	generatedAt := mustParseDay(t, "2026-03-05")
	first := ReminderKey(models.ReminderCategoryHeat, 7, generatedAt)
	second := ReminderKey(models.ReminderCategoryHeat, 7, generatedAt)
	if first != second {
		t.Fatalf("same inputs must give the same key: %q vs %q", first, second)
	}

	later := ReminderKey(models.ReminderCategoryHeat, 7, generatedAt.Add(time.Second))
	if first == later {
		t.Fatal("a different generation time must change the key")
	}
	otherCategory := ReminderKey(models.ReminderCategoryBirthday, 7, generatedAt)
	if first == otherCategory {
		t.Fatal("a different category must change the key")
	}
}

func TestBuildHeatReminderWindow(t *testing.T) {
	t.Parallel()

	dog := models.Dog{ID: 1, UserID: 10, Name: "Luna"}
	today := mustParseDay(t, "2026-06-01")
	generatedAt := today

	cases := []struct {
		name         string
		next         string
		wantFire     bool
		wantPriority string
	}{
		{"thirty days ahead fires medium", "2026-07-01", true, models.ReminderPriorityMedium},
		{"thirty-one days ahead is silent", "2026-07-02", false, ""},
		{"seven days ahead fires high", "2026-06-08", true, models.ReminderPriorityHigh},
		{"eight days ahead fires medium", "2026-06-09", true, models.ReminderPriorityMedium},
		{"five days past fires high", "2026-05-27", true, models.ReminderPriorityHigh},
		{"six days past is silent", "2026-05-26", false, ""},
		{"today fires high", "2026-06-01", true, models.ReminderPriorityHigh},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			reminder, ok := BuildHeatReminder(dog, mustParseDay(t, tc.next), today, generatedAt, time.UTC)
			if ok != tc.wantFire {
				t.Fatalf("fire = %v, want %v", ok, tc.wantFire)
			}
			if ok && reminder.Priority != tc.wantPriority {
				t.Fatalf("priority = %s, want %s", reminder.Priority, tc.wantPriority)
			}
		})
	}
}

func TestBuildHeatReminderZeroDateSilent(t *testing.T) {
	t.Parallel()

	dog := models.Dog{ID: 1, UserID: 10, Name: "Luna"}
	if _, ok := BuildHeatReminder(dog, time.Time{}, mustParseDay(t, "2026-06-01"), mustParseDay(t, "2026-06-01"), time.UTC); ok {
		t.Fatal("zero next-heat date must not fire")
	}
}

func TestBuildVaccinationReminderUpcomingAnniversary(t *testing.T) {
	t.Parallel()

	// Last shot March 10 last year, today March 5: due March 10 this year,
	// five days out, so high priority.
	lastShot := mustParseDay(t, "2025-03-10")
	dog := models.Dog{ID: 1, UserID: 10, Name: "Luna", LastVaccinationAt: &lastShot}
	today := mustParseDay(t, "2026-03-05")

	reminder, ok := BuildVaccinationReminder(dog, today, today, time.UTC)
	if !ok {
		t.Fatal("expected a vaccination reminder five days before the anniversary")
	}
	if got := reminder.DueDate.Format("2006-01-02"); got != "2026-03-10" {
		t.Fatalf("due date = %s, want 2026-03-10", got)
	}
	if reminder.Priority != models.ReminderPriorityHigh {
		t.Fatalf("priority = %s, want high", reminder.Priority)
	}
}

func TestBuildVaccinationReminderRollsToNextYear(t *testing.T) {
	t.Parallel()

	// Shot given March 10 this year; on April 1 the next due date is March 10
	// next year, far outside the window.
	lastShot := mustParseDay(t, "2026-03-10")
	dog := models.Dog{ID: 1, UserID: 10, Name: "Luna", LastVaccinationAt: &lastShot}
	today := mustParseDay(t, "2026-04-01")

	if _, ok := BuildVaccinationReminder(dog, today, today, time.UTC); ok {
		t.Fatal("a fresh shot must not produce a reminder eleven months early")
	}
}

func TestBuildVaccinationReminderSkippedYearOverdue(t *testing.T) {
	t.Parallel()

	// Shot given two years back and the anniversary missed three weeks ago:
	// the missed date stays as the due date and reads as overdue.
	lastShot := mustParseDay(t, "2024-03-10")
	dog := models.Dog{ID: 1, UserID: 10, Name: "Luna", LastVaccinationAt: &lastShot}
	today := mustParseDay(t, "2026-03-31")

	reminder, ok := BuildVaccinationReminder(dog, today, today, time.UTC)
	if !ok {
		t.Fatal("expected an overdue reminder for the skipped anniversary")
	}
	if got := reminder.DueDate.Format("2006-01-02"); got != "2026-03-10" {
		t.Fatalf("due date = %s, want the missed 2026-03-10", got)
	}
	if reminder.Priority != models.ReminderPriorityHigh {
		t.Fatalf("overdue priority = %s, want high", reminder.Priority)
	}
}

func TestBuildVaccinationReminderMissingHistorySilent(t *testing.T) {
	t.Parallel()

	dog := models.Dog{ID: 1, UserID: 10, Name: "Luna"}
	if _, ok := BuildVaccinationReminder(dog, mustParseDay(t, "2026-03-05"), mustParseDay(t, "2026-03-05"), time.UTC); ok {
		t.Fatal("no vaccination history must mean no reminder")
	}
}

func TestBuildBirthdayReminderWindow(t *testing.T) {
	t.Parallel()

	dog := models.Dog{ID: 1, UserID: 10, Name: "Luna", BirthDate: mustParseDay(t, "2022-06-10")}

	cases := []struct {
		name     string
		today    string
		wantFire bool
	}{
		{"a week ahead", "2026-06-03", true},
		{"eight days ahead", "2026-06-02", false},
		{"two days after", "2026-06-12", true},
		{"three days after", "2026-06-13", false},
		{"the day itself", "2026-06-10", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			today := mustParseDay(t, tc.today)
			reminder, ok := BuildBirthdayReminder(dog, today, today, time.UTC)
			if ok != tc.wantFire {
				t.Fatalf("fire = %v, want %v", ok, tc.wantFire)
			}
			if ok && reminder.Priority != models.ReminderPriorityLow {
				t.Fatalf("birthday priority = %s, want low", reminder.Priority)
			}
		})
	}
}

func TestBuildLitterCareRemindersDeworming(t *testing.T) {
	t.Parallel()

	birth := mustParseDay(t, "2026-05-01")
	litter := models.Litter{ID: 3, UserID: 10, DamID: 1, BirthDate: &birth}

	// Day 21 is the first deworming round; the slack allows day 19 to 23.
	for _, today := range []string{"2026-05-20", "2026-05-22", "2026-05-24"} {
		reminders := BuildLitterCareReminders(litter, mustParseDay(t, today), mustParseDay(t, today), time.UTC)
		var found bool
		for _, reminder := range reminders {
			if reminder.Category == models.ReminderCategoryDeworming {
				found = true
				if reminder.Priority != models.ReminderPriorityHigh {
					t.Fatalf("deworming priority = %s, want high", reminder.Priority)
				}
			}
		}
		if !found {
			t.Fatalf("expected a deworming reminder on %s", today)
		}
	}

	// Day 25 is outside every round's slack.
	for _, reminder := range BuildLitterCareReminders(litter, mustParseDay(t, "2026-05-26"), mustParseDay(t, "2026-05-26"), time.UTC) {
		if reminder.Category == models.ReminderCategoryDeworming {
			t.Fatal("no deworming round is due on day 25")
		}
	}
}

func TestBuildLitterCareRemindersVetVisit(t *testing.T) {
	t.Parallel()

	birth := mustParseDay(t, "2026-05-01")
	litter := models.Litter{ID: 3, UserID: 10, DamID: 1, BirthDate: &birth}

	// Day 42 is the six-week check, with one day of slack either side.
	reminders := BuildLitterCareReminders(litter, mustParseDay(t, "2026-06-12"), mustParseDay(t, "2026-06-12"), time.UTC)
	var found bool
	for _, reminder := range reminders {
		if reminder.Category == models.ReminderCategoryVetVisit {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the six-week vet visit reminder on day 42")
	}

	for _, reminder := range BuildLitterCareReminders(litter, mustParseDay(t, "2026-06-15"), mustParseDay(t, "2026-06-15"), time.UTC) {
		if reminder.Category == models.ReminderCategoryVetVisit {
			t.Fatal("vet visit reminder fired outside its slack")
		}
	}
}

func TestBuildLitterCareRemindersWeighing(t *testing.T) {
	t.Parallel()

	birth := mustParseDay(t, "2026-05-01")
	litter := models.Litter{ID: 3, UserID: 10, DamID: 1, BirthDate: &birth}

	// Every third day up to day 21.
	reminders := BuildLitterCareReminders(litter, mustParseDay(t, "2026-05-07"), mustParseDay(t, "2026-05-07"), time.UTC)
	var found bool
	for _, reminder := range reminders {
		if reminder.Category == models.ReminderCategoryWeighing {
			found = true
			if reminder.Priority != models.ReminderPriorityMedium {
				t.Fatalf("weighing priority = %s, want medium", reminder.Priority)
			}
		}
	}
	if !found {
		t.Fatal("expected a weigh-in reminder on day 6")
	}

	// Day 7 is not a multiple of three; day 24 is past the three-week mark.
	for _, today := range []string{"2026-05-08", "2026-05-25"} {
		for _, reminder := range BuildLitterCareReminders(litter, mustParseDay(t, today), mustParseDay(t, today), time.UTC) {
			if reminder.Category == models.ReminderCategoryWeighing {
				t.Fatalf("weigh-in fired on %s", today)
			}
		}
	}
}

func TestBuildLitterCareRemindersUnbornLitterSilent(t *testing.T) {
	t.Parallel()

	litter := models.Litter{ID: 3, UserID: 10, DamID: 1}
	if reminders := BuildLitterCareReminders(litter, mustParseDay(t, "2026-05-22"), mustParseDay(t, "2026-05-22"), time.UTC); len(reminders) != 0 {
		t.Fatalf("an unborn litter has no care schedule, got %d reminders", len(reminders))
	}
}

func TestTwoLittersSameDayBothFire(t *testing.T) {
	t.Parallel()

	birth := mustParseDay(t, "2026-05-01")
	first := models.Litter{ID: 3, UserID: 10, DamID: 1, BirthDate: &birth}
	second := models.Litter{ID: 4, UserID: 10, DamID: 2, BirthDate: &birth}
	today := mustParseDay(t, "2026-05-07")

	firstReminders := BuildLitterCareReminders(first, today, today, time.UTC)
	secondReminders := BuildLitterCareReminders(second, today, today, time.UTC)
	if len(firstReminders) == 0 || len(secondReminders) == 0 {
		t.Fatal("both litters due the same day must emit reminders")
	}
	if firstReminders[0].Key == secondReminders[0].Key {
		t.Fatalf("reminders for different litters must not collide on key: %q", firstReminders[0].Key)
	}
}

func TestBuildVaccinationReminderLeapDayAnniversary(t *testing.T) {
	t.Parallel()

	lastShot := mustParseDay(t, "2024-02-29")
	dog := models.Dog{ID: 1, UserID: 10, Name: "Luna", LastVaccinationAt: &lastShot}

	t.Run("non-leap year rolls to March 1", func(t *testing.T) {
		t.Parallel()

		today := mustParseDay(t, "2026-02-20")
		reminder, ok := BuildVaccinationReminder(dog, today, today, time.UTC)
		if !ok {
			t.Fatal("expected a reminder nine days before the normalized anniversary")
		}
		if got := reminder.DueDate.Format("2006-01-02"); got != "2026-03-01" {
			t.Fatalf("due date = %s, want 2026-03-01", got)
		}
		if reminder.Priority != models.ReminderPriorityMedium {
			t.Fatalf("priority = %s, want medium", reminder.Priority)
		}
	})

	t.Run("leap year keeps February 29", func(t *testing.T) {
		t.Parallel()

		today := mustParseDay(t, "2028-02-20")
		reminder, ok := BuildVaccinationReminder(dog, today, today, time.UTC)
		if !ok {
			t.Fatal("expected a reminder nine days before the leap-day anniversary")
		}
		if got := reminder.DueDate.Format("2006-01-02"); got != "2028-02-29" {
			t.Fatalf("due date = %s, want 2028-02-29", got)
		}
	})

	t.Run("normalized anniversary today counts as this year", func(t *testing.T) {
		t.Parallel()

		today := mustParseDay(t, "2027-03-01")
		reminder, ok := BuildVaccinationReminder(dog, today, today, time.UTC)
		if !ok {
			t.Fatal("expected a reminder on the normalized anniversary itself")
		}
		if got := reminder.DueDate.Format("2006-01-02"); got != "2027-03-01" {
			t.Fatalf("due date = %s, want 2027-03-01", got)
		}
		if reminder.Priority != models.ReminderPriorityHigh {
			t.Fatalf("priority = %s, want high", reminder.Priority)
		}
	})
}
