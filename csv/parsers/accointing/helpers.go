package accointing

import (
	"time"
)

// FormatDatetime renders t as mm/dd/yyyy hh:MM:ss in UTC.
func FormatDatetime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
