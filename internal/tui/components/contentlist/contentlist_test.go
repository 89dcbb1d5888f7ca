package contentlist

import (
	"testing"

	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/scheduler"
)

func TestSummarize(t *testing.T) {
	rows := []scheduler.PreviewRow{
		{Plan: models.Plan{PlanDate: "2024-01-17", ContentID: "alg", ContentTitle: "Algebra", ContentType: models.ContentTypeBook, PlanNumber: 3}, Sequence: 2},
		{Plan: models.Plan{PlanDate: "2024-01-15", ContentID: "alg", ContentTitle: "Algebra", ContentType: models.ContentTypeBook, PlanNumber: 1}, Sequence: 1},
		{Plan: models.Plan{PlanDate: "2024-01-15", BlockIndex: 1, ContentID: "alg", ContentTitle: "Algebra", ContentType: models.ContentTypeBook, PlanNumber: 1}, Sequence: 1},
		{Plan: models.Plan{PlanDate: "2024-01-16", ContentID: "lec-7", ContentType: models.ContentTypeLecture, PlanNumber: 2}, Sequence: 1},
		{Plan: models.Plan{PlanDate: "2024-01-21", DayType: models.DayTypeHoliday, PlanNumber: 4}},
	}

	items := Summarize(rows)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	alg := items[0]
	if alg.ContentID != "alg" || alg.Sessions != 2 || alg.Blocks != 3 {
		t.Errorf("alg = %+v, want 2 sessions in 3 blocks", alg)
	}
	if alg.First != "2024-01-15" || alg.Last != "2024-01-17" {
		t.Errorf("alg range = %s..%s", alg.First, alg.Last)
	}

	lec := items[1]
	if lec.Title() != "lec-7" {
		t.Errorf("untitled content should fall back to its ID, got %q", lec.Title())
	}
}

func TestSummarize_Empty(t *testing.T) {
	if items := Summarize(nil); len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestModel_Items(t *testing.T) {
	m := New([]Item{{ContentID: "a", Name: "A"}, {ContentID: "b", Name: "B"}}, 80, 20)
	if got := len(m.Items()); got != 2 {
		t.Errorf("Items() = %d, want 2", got)
	}

	m.SetItems(nil)
	if got := len(m.Items()); got != 0 {
		t.Errorf("Items() after reset = %d, want 0", got)
	}
}
