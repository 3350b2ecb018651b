package domain

import (
	"strconv"
	"strings"
	"time"
)

const (
	OpeningHour = 6
	ClosingHour = 23
	// MaxReservationMinutes is the longest slot a reservation may take.
	MaxReservationMinutes = 75
)

// ValidateDate requires a date that is not before today's calendar day.
func ValidateDate(date *time.Time, today time.Time) error {
	if date == nil || date.IsZero() {
		return ErrDateRequired
	}
	if calendarDay(*date).Before(calendarDay(today)) {
		return ErrDateInPast
	}
	return nil
}

// ValidateTimeRange checks a start/end time-of-day pair: both hours inside
// [OpeningHour, ClosingHour] and 0 < end-start <= MaxReservationMinutes.
func ValidateTimeRange(start, end string) error {
	h1, m1, err := parseClock(start)
	if err != nil {
		return err
	}
	h2, m2, err := parseClock(end)
	if err != nil {
		return err
	}

	if outsideOpeningHours(h1) || outsideOpeningHours(h2) {
		return ErrOutsideOpeningHours
	}

	d := (h2*60 + m2) - (h1*60 + m1)
	if d <= 0 || d > MaxReservationMinutes {
		return ErrDurationExceeded
	}
	return nil
}

// CheckTimeInput is the per-keystroke check of a time field. It never blocks:
// it only returns a warning when the typed hour is outside opening hours.
func CheckTimeInput(value string) *Notification {
	if value == "" {
		return nil
	}
	hourPart, _, _ := strings.Cut(value, ":")
	h, err := strconv.Atoi(hourPart)
	if err != nil {
		return nil
	}
	if outsideOpeningHours(h) {
		return &Notification{Severity: SeverityWarning, Message: ErrOutsideOpeningHours.Message}
	}
	return nil
}

func outsideOpeningHours(h int) bool {
	return h < OpeningHour || h > ClosingHour
}

// parseClock reads HH:MM (a trailing :SS is ignored).
func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, ErrTimeFormat
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrTimeFormat
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrTimeFormat
	}
	return hour, minute, nil
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
