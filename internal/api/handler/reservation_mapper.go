package handler

import (
	"fmt"
	"time"

	"github.com/ucasl/reservas-web/internal/core/domain"
	"github.com/ucasl/reservas-web/internal/core/ports"
)

// --- Request → working copy ---

func toWorkingCopy(req workingCopyRequest, loc *time.Location) (domain.WorkingCopy, error) {
	w := domain.WorkingCopy{
		SpaceID:      req.SpaceID,
		InstructorID: req.InstructorID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}
	if req.Date != "" {
		d, err := domain.ParseCalendarDate(req.Date, loc)
		if err != nil {
			return domain.WorkingCopy{}, fmt.Errorf("data: %w", err)
		}
		w.Date = &d
	}
	return w, nil
}

// --- Snapshot → HTTP response ---

func toWorkingCopyResponse(w domain.WorkingCopy) workingCopyResponse {
	out := workingCopyResponse{
		SpaceID:      w.SpaceID,
		InstructorID: w.InstructorID,
		StartTime:    w.StartTime,
		EndTime:      w.EndTime,
	}
	if w.Date != nil {
		out.Date = domain.FormatCalendarDate(*w.Date)
		out.DateDisplay = w.Date.Format(domain.PickerDateLayout)
	}
	return out
}

func toFormResponse(s ports.FormSnapshot) formResponse {
	out := formResponse{
		Mode:        s.Mode,
		Title:       s.Mode.Title(),
		SubmitLabel: s.Mode.SubmitLabel(s.State),
		State:       s.State,
		EditID:      s.EditID,
		Spaces:      s.Spaces,
		Instructors: s.Instructors,
		Reservation: toWorkingCopyResponse(s.Working),
	}
	if out.Spaces == nil {
		out.Spaces = []domain.AcademicSpace{}
	}
	if out.Instructors == nil {
		out.Instructors = []domain.Instructor{}
	}
	if s.Banner != nil {
		out.Banner = &errorResponse{Error: s.Banner.UserMessage, Kind: s.Banner.Kind}
	}
	return out
}

func toSubmitResponse(r *ports.SubmitResult) submitResponse {
	return submitResponse{
		Reservation:  r.Reservation,
		Notification: r.Notification,
		Redirect:     r.Redirect,
	}
}
