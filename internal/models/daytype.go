package models

import (
	"fmt"
	"strings"
)

// DayType classifies a planned day. It is a closed set; the zero value is unset.
type DayType int

const (
	DayTypeUnset DayType = iota
	DayTypeStudy
	DayTypeReview
	DayTypeHoliday
	DayTypeLeave
	DayTypePersonal
)

var dayTypeLabels = map[DayType]string{
	DayTypeUnset:    "",
	DayTypeStudy:    "study day",
	DayTypeReview:   "review day",
	DayTypeHoliday:  "designated holiday",
	DayTypeLeave:    "leave",
	DayTypePersonal: "personal schedule",
}

func (d DayType) String() string {
	if label, ok := dayTypeLabels[d]; ok {
		return label
	}
	return fmt.Sprintf("DayType(%d)", int(d))
}

// IsExclusion reports whether the day type marks a non-study day that an
// exclusion rule may produce.
func (d DayType) IsExclusion() bool {
	switch d {
	case DayTypeHoliday, DayTypeLeave, DayTypePersonal:
		return true
	default:
		return false
	}
}

// Short names accepted in payload files.
var dayTypeAliases = map[string]DayType{
	"study":    DayTypeStudy,
	"review":   DayTypeReview,
	"holiday":  DayTypeHoliday,
	"personal": DayTypePersonal,
}

// ParseDayType maps a label or short alias back to its DayType. The empty
// string is DayTypeUnset.
func ParseDayType(s string) (DayType, error) {
	for d, label := range dayTypeLabels {
		if label == s {
			return d, nil
		}
	}
	if d, ok := dayTypeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return DayTypeUnset, fmt.Errorf("unknown day type: %q", s)
}

func (d DayType) MarshalText() ([]byte, error) {
	if _, ok := dayTypeLabels[d]; !ok {
		return nil, fmt.Errorf("unknown day type: %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *DayType) UnmarshalText(text []byte) error {
	parsed, err := ParseDayType(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
