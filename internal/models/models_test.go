package models

import (
	"encoding/json"
	"testing"
)

func TestParseDayType(t *testing.T) {
	tests := []struct {
		in      string
		want    DayType
		wantErr bool
	}{
		{"study day", DayTypeStudy, false},
		{"review day", DayTypeReview, false},
		{"designated holiday", DayTypeHoliday, false},
		{"leave", DayTypeLeave, false},
		{"personal schedule", DayTypePersonal, false},
		{"Holiday", DayTypeHoliday, false},
		{" personal ", DayTypePersonal, false},
		{"", DayTypeUnset, false},
		{"vacation", DayTypeUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDayType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDayType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDayType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDayType_IsExclusion(t *testing.T) {
	for _, d := range []DayType{DayTypeHoliday, DayTypeLeave, DayTypePersonal} {
		if !d.IsExclusion() {
			t.Errorf("%v should be an exclusion", d)
		}
	}
	for _, d := range []DayType{DayTypeUnset, DayTypeStudy, DayTypeReview} {
		if d.IsExclusion() {
			t.Errorf("%v should not be an exclusion", d)
		}
	}
}

func TestDayType_JSON(t *testing.T) {
	p := Plan{PlanDate: "2024-01-15", DayType: DayTypeHoliday}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Plan
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.DayType != DayTypeHoliday {
		t.Errorf("DayType = %v, want %v", decoded.DayType, DayTypeHoliday)
	}

	if _, err := DayType(42).MarshalText(); err == nil {
		t.Error("expected error marshaling unknown day type")
	}
}

func TestNormalizeContentType(t *testing.T) {
	tests := []struct {
		in   string
		want ContentType
	}{
		{"", ContentTypeBook},
		{"book", ContentTypeBook},
		{"Textbook", ContentTypeBook},
		{"lecture", ContentTypeLecture},
		{"video", ContentTypeLecture},
		{"course", ContentTypeLecture},
		{"custom", ContentTypeCustom},
		{"podcast", ContentTypeCustom},
	}

	for _, tt := range tests {
		if got := NormalizeContentType(tt.in); got != tt.want {
			t.Errorf("NormalizeContentType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlan_IsPlaceholder(t *testing.T) {
	if !(Plan{PlanDate: "2024-01-21", DayType: DayTypeHoliday}).IsPlaceholder() {
		t.Error("plan without content should be a placeholder")
	}
	if (Plan{ContentID: "content-a"}).IsPlaceholder() {
		t.Error("plan with content should not be a placeholder")
	}
}
