package csv

import (
	"fmt"
	"strings"
	"time"
)

// DateLayouts are accepted for start and end dates, all read as UTC.
var DateLayouts = []string{"2006-01-02:15:04:05", time.RFC3339, "2006-01-02"}

// ParseDate reads an optional date bound. An empty value is no bound.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q, expected one of %v", value, DateLayouts)
}
