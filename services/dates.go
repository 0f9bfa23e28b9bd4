package services

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateDate checks the YYYY-MM-DD shape. Dates are stored and matched
// as literal strings; no timezone conversion happens anywhere.
func ValidateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return nil
}

// weekStartSunday returns the most recent Sunday on or before the given
// date key, as a date key.
func weekStartSunday(date string) (string, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, -int(d.Weekday())).Format(dateLayout), nil
}
