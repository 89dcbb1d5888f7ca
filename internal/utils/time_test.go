package utils

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2024-01-15", wantErr: false},
		{name: "leap day", input: "2024-02-29", wantErr: false},
		{name: "non-leap Feb 29", input: "2023-02-29", wantErr: true},
		{name: "wrong layout", input: "15/01/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && FormatDate(got) != tt.input {
				t.Errorf("FormatDate(ParseDate(%q)) = %q", tt.input, FormatDate(got))
			}
		})
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "09:30", want: 570},
		{input: "23:59", want: 1439},
		{input: "24:00", wantErr: true},
		{input: "9am", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeToMinutes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeToMinutes(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2024-01-17 is a Wednesday; its week starts Sunday 2024-01-14
	if got := FormatDate(StartOfWeek(mustDate(t, "2024-01-17"))); got != "2024-01-14" {
		t.Errorf("StartOfWeek = %s, want 2024-01-14", got)
	}
	if got := FormatDate(StartOfWeek(mustDate(t, "2024-01-14"))); got != "2024-01-14" {
		t.Errorf("StartOfWeek of a Sunday = %s, want 2024-01-14", got)
	}
}

func TestInRange(t *testing.T) {
	start := mustDate(t, "2024-01-15")
	end := mustDate(t, "2024-01-21")

	if !InRange(start, start, end) || !InRange(end, start, end) {
		t.Error("InRange should include both bounds")
	}
	if InRange(mustDate(t, "2024-01-22"), start, end) {
		t.Error("InRange should exclude dates after the end")
	}
	if InRange(mustDate(t, "2024-01-14"), start, end) {
		t.Error("InRange should exclude dates before the start")
	}
}
