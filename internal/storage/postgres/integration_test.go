package postgres

import (
	"errors"
	"os"
	"testing"

	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/storage"
)

// TestStore_Integration runs against a real database.
// Example: POSTGRES_TEST_URL="postgres://studyplan@localhost:5432/studyplan_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	plans := []models.Plan{
		{PlanDate: "2024-01-15", ContentType: models.ContentTypeBook, ContentID: "content-a", PlannedStartUnit: 1, PlannedEndUnit: 20,
			StartTime: "09:00", EndTime: "10:00", DayType: models.DayTypeStudy, Week: 1, Day: 1, PlanNumber: 1},
		{PlanDate: "2024-01-21", DayType: models.DayTypeHoliday, Week: 1, PlanNumber: 2},
	}

	saved, err := store.SavePlanGroup(models.PlanGroup{Name: "integration", Plans: plans})
	if err != nil {
		t.Fatalf("SavePlanGroup failed: %v", err)
	}
	defer store.DeletePlanGroup(saved.ID)

	t.Run("Get", func(t *testing.T) {
		got, err := store.GetPlanGroup(saved.ID)
		if err != nil {
			t.Fatalf("GetPlanGroup failed: %v", err)
		}
		if len(got.Plans) != 2 || got.Plans[1].DayType != models.DayTypeHoliday {
			t.Errorf("unexpected plans: %+v", got.Plans)
		}
	})

	t.Run("Replace", func(t *testing.T) {
		saved.Plans = plans[:1]
		if _, err := store.SavePlanGroup(saved); err != nil {
			t.Fatalf("SavePlanGroup (replace) failed: %v", err)
		}
		got, err := store.GetPlanGroup(saved.ID)
		if err != nil {
			t.Fatalf("GetPlanGroup failed: %v", err)
		}
		if len(got.Plans) != 1 {
			t.Errorf("expected 1 plan after replace, got %d", len(got.Plans))
		}
	})

	t.Run("List", func(t *testing.T) {
		groups, err := store.ListPlanGroups()
		if err != nil {
			t.Fatalf("ListPlanGroups failed: %v", err)
		}
		found := false
		for _, g := range groups {
			if g.ID == saved.ID {
				found = true
			}
		}
		if !found {
			t.Error("saved group missing from list")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.DeletePlanGroup(saved.ID); err != nil {
			t.Fatalf("DeletePlanGroup failed: %v", err)
		}
		if _, err := store.GetPlanGroup(saved.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
