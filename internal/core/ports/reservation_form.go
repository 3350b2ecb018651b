package ports

import (
	"context"
	"time"

	"github.com/ucasl/reservas-web/internal/core/domain"
)

// FormSnapshot is a read-only view of a reservation form screen.
type FormSnapshot struct {
	Mode        domain.FormMode
	EditID      int64
	State       domain.FormState
	Spaces      []domain.AcademicSpace
	Instructors []domain.Instructor
	Working     domain.WorkingCopy
	Banner      *domain.Failure
}

// SubmitResult is returned by a successful submission.
type SubmitResult struct {
	Reservation  *domain.Reservation
	Notification domain.Notification
	Redirect     string
}

// ReservationForm is one reservation form screen instance.
type ReservationForm interface {
	Load(ctx context.Context, editID int64) error
	Restore(editID int64, w domain.WorkingCopy) error
	SetSpace(id int64) error
	SetInstructor(id int64) error
	SetDate(d *time.Time) error
	SetStartTime(v string) (*domain.Notification, error)
	SetEndTime(v string) (*domain.Notification, error)
	Submit(ctx context.Context) (*SubmitResult, error)
	Cancel() (string, error)
	Snapshot() FormSnapshot
}

// FormFactory opens a new form screen instance.
type FormFactory interface {
	NewForm() ReservationForm
}
