package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ucasl/reservas-web/internal/api/metrics"
	"github.com/ucasl/reservas-web/internal/core/domain"
	"github.com/ucasl/reservas-web/internal/core/ports"
)

// ReservationHandler serves the reservation form screen. Every request opens
// its own form instance; the browser holds the working copy between requests.
type ReservationHandler struct {
	forms ports.FormFactory
	loc   *time.Location
}

func NewReservationHandler(forms ports.FormFactory, loc *time.Location) *ReservationHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ReservationHandler{forms: forms, loc: loc}
}

// New loads the empty creation form.
//
// @Summary      Open the creation form
// @Tags         reservas
// @Produce      json
// @Success      200  {object}  formResponse
// @Failure      502  {object}  formResponse
// @Router       /reservas/novo [get]
func (h *ReservationHandler) New(c echo.Context) error {
	return h.load(c, 0)
}

// Edit loads the form populated with an existing reservation.
//
// @Summary      Open the edit form
// @Tags         reservas
// @Produce      json
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  formResponse
// @Failure      400  {object}  errorResponse
// @Failure      502  {object}  formResponse
// @Router       /reservas/{id}/editar [get]
func (h *ReservationHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return h.load(c, id)
}

// load answers with the form snapshot even when loading failed: the screen
// still renders, with the failure as its banner.
func (h *ReservationHandler) load(c echo.Context, editID int64) error {
	form := h.forms.NewForm()
	err := form.Load(c.Request().Context(), editID)

	var failure *domain.Failure
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, toFormResponse(form.Snapshot()))
	case errors.As(err, &failure):
		return c.JSON(failure.HTTPStatus(), toFormResponse(form.Snapshot()))
	default:
		return err
	}
}

// CheckTime is the per-keystroke check of a time field.
//
// @Summary      Check a time field
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        body  body      timeInputRequest  true  "Typed value"
// @Success      200   {object}  timeInputResponse
// @Failure      400   {object}  errorResponse
// @Router       /reservas/horario [post]
func (h *ReservationHandler) CheckTime(c echo.Context) error {
	var req timeInputRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, timeInputResponse{Warning: domain.CheckTimeInput(req.Value)})
}

// Create submits a new reservation.
//
// @Summary      Create a reservation
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        body  body      workingCopyRequest  true  "Form contents"
// @Success      201   {object}  submitResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /reservas [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	return h.submit(c, 0, http.StatusCreated)
}

// Update submits changes to an existing reservation.
//
// @Summary      Update a reservation
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Reservation id"
// @Param        body  body      workingCopyRequest  true  "Form contents"
// @Success      200   {object}  submitResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /reservas/{id} [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return h.submit(c, id, http.StatusOK)
}

func (h *ReservationHandler) submit(c echo.Context, editID int64, status int) error {
	var req workingCopyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	working, err := toWorkingCopy(req, h.loc)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "data inválida")
	}

	form := h.forms.NewForm()
	if err := form.Restore(editID, working); err != nil {
		return err
	}
	mode := form.Snapshot().Mode

	res, err := form.Submit(c.Request().Context())
	if err != nil {
		var failure *domain.Failure
		if errors.As(err, &failure) && failure.Kind == domain.KindValidation {
			metrics.ValidationRejectionsTotal.WithLabelValues(failure.Rule).Inc()
		} else {
			metrics.SubmissionsTotal.WithLabelValues(string(mode), metrics.Result(err)).Inc()
		}
		return err
	}
	metrics.SubmissionsTotal.WithLabelValues(string(mode), metrics.Result(nil)).Inc()
	return c.JSON(status, toSubmitResponse(res))
}

// Cancel discards the form and tells the browser where to go.
//
// @Summary      Cancel the form
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        body  body      cancelRequest  false  "Form being cancelled"
// @Success      200   {object}  redirectResponse
// @Router       /reservas/cancelar [post]
func (h *ReservationHandler) Cancel(c echo.Context) error {
	var req cancelRequest
	if c.Request().ContentLength > 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	form := h.forms.NewForm()
	if err := form.Restore(req.EditID, domain.WorkingCopy{}); err != nil {
		return err
	}
	to, err := form.Cancel()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, redirectResponse{Redirect: to})
}
