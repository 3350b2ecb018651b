package domain

import (
	"fmt"
	"time"
)

const (
	// APIDateLayout is the calendar-date text the backend stores.
	APIDateLayout = "2006-01-02"
	// PickerDateLayout is the dd/MM/yyyy format shown by the date picker.
	PickerDateLayout = "02/01/2006"
)

// AcademicSpace is a room or venue that can be reserved.
type AcademicSpace struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	Available bool   `json:"disponivel"`
}

// Instructor is a professor who can hold a reservation.
type Instructor struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// Ref points at another backend entity by id.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"nome,omitempty"`
}

// Reservation is the backend's reservation record.
type Reservation struct {
	ID         *int64 `json:"id,omitempty"`
	Space      Ref    `json:"espacoAcademico"`
	Instructor Ref    `json:"professor"`
	Date       string `json:"data"`
	StartTime  string `json:"horaInicial"`
	EndTime    string `json:"horaFinal"`
}

// WorkingCopy is the form's editable copy of a reservation. It only reaches
// the backend through ToReservation.
type WorkingCopy struct {
	SpaceID      int64
	InstructorID int64
	Date         *time.Time
	StartTime    string
	EndTime      string
}

// Clone returns a deep copy so callers cannot mutate form state through it.
func (w WorkingCopy) Clone() WorkingCopy {
	if w.Date != nil {
		d := *w.Date
		w.Date = &d
	}
	return w
}

// ToReservation builds the request payload: the date becomes APIDateLayout
// text and the selected ids become references.
func (w WorkingCopy) ToReservation(id *int64) Reservation {
	r := Reservation{
		ID:         id,
		Space:      Ref{ID: w.SpaceID},
		Instructor: Ref{ID: w.InstructorID},
		StartTime:  w.StartTime,
		EndTime:    w.EndTime,
	}
	if w.Date != nil {
		r.Date = FormatCalendarDate(*w.Date)
	}
	return r
}

// WorkingCopyFromReservation fills a working copy from a fetched reservation,
// turning its stored date into a picker date in loc.
func WorkingCopyFromReservation(r Reservation, loc *time.Location) (WorkingCopy, error) {
	w := WorkingCopy{
		SpaceID:      r.Space.ID,
		InstructorID: r.Instructor.ID,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
	}
	if r.Date != "" {
		d, err := ParseCalendarDate(r.Date, loc)
		if err != nil {
			return WorkingCopy{}, err
		}
		w.Date = &d
	}
	return w, nil
}

// AvailableSpaces keeps only the spaces flagged as available.
func AvailableSpaces(spaces []AcademicSpace) []AcademicSpace {
	out := make([]AcademicSpace, 0, len(spaces))
	for _, s := range spaces {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

// FormatCalendarDate renders t as yyyy-MM-dd.
func FormatCalendarDate(t time.Time) string {
	return t.Format(APIDateLayout)
}

// ParseCalendarDate accepts yyyy-MM-dd, dd/MM/yyyy or an RFC 3339 timestamp
// and returns midnight of that calendar day in loc.
func ParseCalendarDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{APIDateLayout, PickerDateLayout} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
