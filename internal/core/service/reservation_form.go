package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ucasl/reservas-web/internal/core/domain"
	"github.com/ucasl/reservas-web/internal/core/ports"
)

// FormService opens reservation form screens bound to one backend.
type FormService struct {
	backend ports.Backend
	log     zerolog.Logger
	now     func() time.Time
	loc     *time.Location
}

// FormOption customises a FormService.
type FormOption func(*FormService)

// WithClock sets the clock used by the date-in-past rule.
func WithClock(now func() time.Time) FormOption {
	return func(s *FormService) { s.now = now }
}

// WithLocation sets the zone calendar dates are interpreted in.
func WithLocation(loc *time.Location) FormOption {
	return func(s *FormService) { s.loc = loc }
}

func NewFormService(backend ports.Backend, log zerolog.Logger, opts ...FormOption) *FormService {
	s := &FormService{backend: backend, log: log, now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewForm opens a screen in the Loading state, as if just mounted.
func (s *FormService) NewForm() ports.ReservationForm {
	return &ReservationForm{svc: s, state: domain.FormLoading, mode: domain.ModeCreate}
}

// ReservationForm is one reservation form screen. Its working copy is only
// replaced by a successful load, by field edits in the Ready state, or by
// Cancel.
type ReservationForm struct {
	svc *FormService

	mu          sync.Mutex
	state       domain.FormState
	mode        domain.FormMode
	editID      int64
	spaces      []domain.AcademicSpace
	instructors []domain.Instructor
	working     domain.WorkingCopy
	banner      *domain.Failure

	// loadSeq identifies the active load; results of older loads are dropped.
	loadSeq    uint64
	cancelLoad context.CancelFunc
}

// Load fetches the lookup lists and, when editID > 0, the reservation being
// edited. Starting a new load cancels the previous one and makes its results
// stale.
func (f *ReservationForm) Load(ctx context.Context, editID int64) error {
	f.mu.Lock()
	if !f.state.CanTransitionTo(domain.FormLoading) {
		f.mu.Unlock()
		return domain.Normalize(domain.KindLoad, domain.ErrFormBusy)
	}
	f.loadSeq++
	seq := f.loadSeq
	if f.cancelLoad != nil {
		f.cancelLoad()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	f.cancelLoad = cancel
	f.state = domain.FormLoading
	f.editID = editID
	f.mode = modeFor(editID)
	f.banner = nil
	f.mu.Unlock()
	defer cancel()

	res, err := f.fetch(loadCtx, editID)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.loadSeq {
		f.svc.log.Debug().Uint64("load", seq).Msg("discarding superseded form load")
		return domain.ErrStaleLoad
	}
	f.cancelLoad = nil
	f.state = domain.FormReady

	// Lists that arrived stay on screen next to the banner.
	if res.spaces != nil {
		f.spaces = res.spaces
	}
	if res.instructors != nil {
		f.instructors = res.instructors
	}
	if res.working != nil {
		f.working = *res.working
	}

	if err != nil {
		failure := domain.Normalize(domain.KindLoad, err)
		f.banner = failure
		return failure
	}
	return nil
}

// loadResult holds whatever parts of a load succeeded. Nil means the part
// failed or was not requested.
type loadResult struct {
	spaces      []domain.AcademicSpace
	instructors []domain.Instructor
	working     *domain.WorkingCopy
}

// fetch runs every request of a load independently, so one failure does not
// cancel the others. The first error is returned with the partial result.
func (f *ReservationForm) fetch(ctx context.Context, editID int64) (loadResult, error) {
	var (
		res loadResult
		g   errgroup.Group
	)

	g.Go(func() error {
		list, err := f.svc.backend.ListSpaces(ctx)
		if err != nil {
			f.logBackendError(err, editID, "Erro ao carregar espaços")
			return err
		}
		res.spaces = domain.AvailableSpaces(list)
		return nil
	})
	g.Go(func() error {
		list, err := f.svc.backend.ListInstructors(ctx)
		if err != nil {
			f.logBackendError(err, editID, "Erro ao carregar professores")
			return err
		}
		res.instructors = list
		if res.instructors == nil {
			res.instructors = []domain.Instructor{}
		}
		return nil
	})
	if editID > 0 {
		g.Go(func() error {
			r, err := f.svc.backend.GetReservation(ctx, editID)
			if err != nil {
				f.logBackendError(err, editID, "Erro ao carregar reserva")
				return err
			}
			working, err := domain.WorkingCopyFromReservation(*r, f.svc.loc)
			if err != nil {
				f.svc.log.Error().Err(err).Int64("edit_id", editID).Msg("Erro ao carregar reserva")
				return fmt.Errorf("reservation %d: %w", editID, err)
			}
			res.working = &working
			return nil
		})
	}

	err := g.Wait()
	return res, err
}

func (f *ReservationForm) logBackendError(err error, editID int64, msg string) {
	ev := f.svc.log.Error().Err(err).Int64("edit_id", editID)
	var be *domain.BackendError
	if errors.As(err, &be) {
		ev = ev.Str("op", be.Op).Int("status", be.Status).Str("backend_message", be.Message).Bytes("body", be.Body)
	}
	ev.Msg(msg)
}

// Restore puts a working copy held by the caller into a fresh or ready form
// and marks it Ready. Any load still running becomes stale.
func (f *ReservationForm) Restore(editID int64, w domain.WorkingCopy) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != domain.FormLoading && f.state != domain.FormReady {
		return domain.Normalize(domain.KindState, domain.ErrFormBusy)
	}
	f.loadSeq++
	if f.cancelLoad != nil {
		f.cancelLoad()
		f.cancelLoad = nil
	}
	f.editID = editID
	f.mode = modeFor(editID)
	f.working = w.Clone()
	f.state = domain.FormReady
	return nil
}

func (f *ReservationForm) edit(apply func(w *domain.WorkingCopy)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.state.AcceptsInput() {
		return domain.Normalize(domain.KindState, domain.ErrFormBusy)
	}
	apply(&f.working)
	return nil
}

func (f *ReservationForm) SetSpace(id int64) error {
	return f.edit(func(w *domain.WorkingCopy) { w.SpaceID = id })
}

func (f *ReservationForm) SetInstructor(id int64) error {
	return f.edit(func(w *domain.WorkingCopy) { w.InstructorID = id })
}

func (f *ReservationForm) SetDate(d *time.Time) error {
	return f.edit(func(w *domain.WorkingCopy) {
		if d == nil {
			w.Date = nil
			return
		}
		v := *d
		w.Date = &v
	})
}

// SetStartTime stores v and returns a warning when its hour is outside
// opening hours. The warning never blocks the edit.
func (f *ReservationForm) SetStartTime(v string) (*domain.Notification, error) {
	if err := f.edit(func(w *domain.WorkingCopy) { w.StartTime = v }); err != nil {
		return nil, err
	}
	return domain.CheckTimeInput(v), nil
}

func (f *ReservationForm) SetEndTime(v string) (*domain.Notification, error) {
	if err := f.edit(func(w *domain.WorkingCopy) { w.EndTime = v }); err != nil {
		return nil, err
	}
	return domain.CheckTimeInput(v), nil
}

// Submit validates the working copy and creates or updates the reservation.
// Validation failures return before any backend call. A backend failure puts
// the form back to Ready with its working copy untouched.
func (f *ReservationForm) Submit(ctx context.Context) (*ports.SubmitResult, error) {
	f.mu.Lock()
	if !f.state.AcceptsInput() {
		f.mu.Unlock()
		return nil, domain.Normalize(domain.KindSubmit, domain.ErrFormBusy)
	}
	working := f.working.Clone()
	editID := f.editID
	if err := f.validate(working); err != nil {
		f.mu.Unlock()
		return nil, domain.Normalize(domain.KindValidation, err)
	}
	f.state = domain.FormSubmitting
	f.mu.Unlock()

	var (
		saved *domain.Reservation
		err   error
		msg   string
	)
	if editID > 0 {
		saved, err = f.svc.backend.UpdateReservation(ctx, editID, working.ToReservation(&editID))
		msg = domain.MsgReservationUpdated
	} else {
		saved, err = f.svc.backend.CreateReservation(ctx, working.ToReservation(nil))
		msg = domain.MsgReservationCreated
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = domain.FormReady
		f.svc.log.Error().Err(err).Int64("edit_id", editID).Msg("Erro ao salvar reserva")
		return nil, domain.Normalize(domain.KindSubmit, err)
	}

	f.state = domain.FormNavigated
	return &ports.SubmitResult{
		Reservation:  saved,
		Notification: domain.Notification{Severity: domain.SeveritySuccess, Message: msg},
		Redirect:     domain.ReservationListPath,
	}, nil
}

// validate runs the blocking rules in the order the user sees them.
func (f *ReservationForm) validate(w domain.WorkingCopy) error {
	if err := domain.ValidateDate(w.Date, f.svc.now().In(f.svc.loc)); err != nil {
		return err
	}
	if err := domain.ValidateTimeRange(w.StartTime, w.EndTime); err != nil {
		return err
	}
	if w.SpaceID <= 0 || w.InstructorID <= 0 {
		return domain.ErrSelectionRequired
	}
	return nil
}

// Cancel discards in-progress edits and returns where to navigate.
func (f *ReservationForm) Cancel() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.state.CanTransitionTo(domain.FormNavigated) || f.state == domain.FormSubmitting {
		return "", domain.Normalize(domain.KindState, domain.ErrFormBusy)
	}
	f.working = domain.WorkingCopy{}
	f.state = domain.FormNavigated
	return domain.ReservationListPath, nil
}

// Snapshot returns a copy of the screen state.
func (f *ReservationForm) Snapshot() ports.FormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return ports.FormSnapshot{
		Mode:        f.mode,
		EditID:      f.editID,
		State:       f.state,
		Spaces:      append([]domain.AcademicSpace(nil), f.spaces...),
		Instructors: append([]domain.Instructor(nil), f.instructors...),
		Working:     f.working.Clone(),
		Banner:      f.banner,
	}
}

func modeFor(editID int64) domain.FormMode {
	if editID > 0 {
		return domain.ModeEdit
	}
	return domain.ModeCreate
}
