package services

import (
	"context"
	"testing"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

// fakeReminderStore records upserts and prunes in memory, with optional
// per-key failure injection.
type fakeReminderStore struct {
	upserts     map[string]models.Reminder
	failKeys    map[string]error
	prunedAt    time.Time
	pruneCalled bool
}

func newFakeReminderStore() *fakeReminderStore {
	return &fakeReminderStore{
		upserts:  make(map[string]models.Reminder),
		failKeys: make(map[string]error),
	}
}

func (store *fakeReminderStore) UpsertByKey(reminder *models.Reminder) error {
	if err := store.failKeys[reminder.Key]; err != nil {
		return err
	}
	store.upserts[reminder.Key] = *reminder
	return nil
}

func (store *fakeReminderStore) DeleteStaleGenerated(_ uint, generatedBefore time.Time) error {
	store.pruneCalled = true
	store.prunedAt = generatedBefore
	return nil
}

type fixedForecaster struct {
	occurrences []HeatOccurrence
}

func (forecaster fixedForecaster) Forecast(_ context.Context, _ uint, _ time.Time, _ int) []HeatOccurrence {
	return forecaster.occurrences
}

func countByCategory(store *fakeReminderStore, category string) int {
	count := 0
	for _, reminder := range store.upserts {
		if reminder.Category == category {
			count++
		}
	}
	return count
}

func TestRegenerateWritesDogAndLitterReminders(t *testing.T) {
	t.Parallel()

	lastShot := mustParseDay(t, "2025-06-15")
	herd := newFakeHerd()
	herd.dogs = []models.Dog{{
		ID: 1, UserID: 10, Name: "Luna", Sex: models.SexFemale,
		BirthDate:         mustParseDay(t, "2022-06-12"),
		LastVaccinationAt: &lastShot,
	}}
	birth := mustParseDay(t, "2026-05-20")
	herd.litters[1] = []models.Litter{{ID: 3, UserID: 10, DamID: 1, BirthDate: &birth}}

	now := mustParseDay(t, "2026-06-10")
	forecaster := fixedForecaster{occurrences: []HeatOccurrence{{
		DogID: 1, DogName: "Luna", Date: mustParseDay(t, "2026-06-20"), Status: HeatStatusPredicted,
	}}}
	store := newFakeReminderStore()

	service := NewReminderService(herd, litterByUserSource{herd: herd}, store, forecaster, time.UTC)
	written, err := service.Regenerate(context.Background(), 10, now)
	if err != nil {
		t.Fatalf("regenerate failed: %v", err)
	}

	// Heat (20 June, 10 days out), vaccination (15 June, 5 days out),
	// birthday (12 June, 2 days out), and the litter's day-21 deworming.
	if got := countByCategory(store, models.ReminderCategoryHeat); got != 1 {
		t.Fatalf("heat reminders = %d, want 1", got)
	}
	if got := countByCategory(store, models.ReminderCategoryVaccination); got != 1 {
		t.Fatalf("vaccination reminders = %d, want 1", got)
	}
	if got := countByCategory(store, models.ReminderCategoryBirthday); got != 1 {
		t.Fatalf("birthday reminders = %d, want 1", got)
	}
	if got := countByCategory(store, models.ReminderCategoryDeworming); got != 1 {
		t.Fatalf("deworming reminders = %d, want 1", got)
	}
	if written != len(store.upserts) {
		t.Fatalf("written = %d but store holds %d", written, len(store.upserts))
	}
	if !store.pruneCalled {
		t.Fatal("expected stale reminders to be pruned after regeneration")
	}
	if !store.prunedAt.Equal(now) {
		t.Fatalf("prune cutoff = %s, want the generation time %s", store.prunedAt, now)
	}
}

func TestRegenerateSkipsFailedUpserts(t *testing.T) {
	t.Parallel()

	lastShot := mustParseDay(t, "2025-06-15")
	herd := newFakeHerd()
	herd.dogs = []models.Dog{{
		ID: 1, UserID: 10, Name: "Luna", Sex: models.SexFemale,
		BirthDate:         mustParseDay(t, "2022-06-12"),
		LastVaccinationAt: &lastShot,
	}}

	now := mustParseDay(t, "2026-06-10")
	store := newFakeReminderStore()
	store.failKeys[ReminderKey(models.ReminderCategoryVaccination, 1, now)] = errFakeSource

	service := NewReminderService(herd, litterByUserSource{herd: herd}, store, fixedForecaster{}, time.UTC)
	written, err := service.Regenerate(context.Background(), 10, now)
	if err != nil {
		t.Fatalf("a single failed upsert must not fail the batch: %v", err)
	}
	if written != 1 {
		t.Fatalf("written = %d, want 1 (birthday only)", written)
	}
	if countByCategory(store, models.ReminderCategoryVaccination) != 0 {
		t.Fatal("failed vaccination upsert must not land in the store")
	}
	if countByCategory(store, models.ReminderCategoryBirthday) != 1 {
		t.Fatal("birthday reminder should survive the vaccination failure")
	}
}

func TestRegenerateRepeatSamePassIsIdempotent(t *testing.T) {
	t.Parallel()

	herd := newFakeHerd()
	herd.dogs = []models.Dog{{
		ID: 1, UserID: 10, Name: "Luna", Sex: models.SexFemale,
		BirthDate: mustParseDay(t, "2022-06-12"),
	}}

	now := mustParseDay(t, "2026-06-10")
	store := newFakeReminderStore()
	service := NewReminderService(herd, litterByUserSource{herd: herd}, store, fixedForecaster{}, time.UTC)

	if _, err := service.Regenerate(context.Background(), 10, now); err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	firstCount := len(store.upserts)
	if _, err := service.Regenerate(context.Background(), 10, now); err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if len(store.upserts) != firstCount {
		t.Fatalf("rerunning at the same instant grew the store from %d to %d", firstCount, len(store.upserts))
	}
}

func TestRegenerateFailsWhenDogsUnavailable(t *testing.T) {
	t.Parallel()

	herd := newFakeHerd()
	herd.dogsErr = errFakeSource

	service := NewReminderService(herd, litterByUserSource{herd: herd}, newFakeReminderStore(), fixedForecaster{}, time.UTC)
	if _, err := service.Regenerate(context.Background(), 10, mustParseDay(t, "2026-06-10")); err == nil {
		t.Fatal("expected an error when the dog listing fails")
	}
}

// litterByUserSource adapts the herd's per-user litter view.
type litterByUserSource struct {
	herd *fakeHerd
}

func (source litterByUserSource) ListByUser(userID uint) ([]models.Litter, error) {
	matched := make([]models.Litter, 0)
	for _, litters := range source.herd.litters {
		for _, litter := range litters {
			if litter.UserID == userID {
				matched = append(matched, litter)
			}
		}
	}
	return matched, nil
}
