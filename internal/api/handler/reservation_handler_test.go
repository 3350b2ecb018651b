package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucasl/reservas-web/internal/core/domain"
	"github.com/ucasl/reservas-web/internal/core/ports"
	"github.com/ucasl/reservas-web/internal/core/service"
)

type fakeBackend struct {
	spacesErr error
	saveErr   error
	created   []domain.Reservation
	updated   map[int64]domain.Reservation
}

func (b *fakeBackend) Login(context.Context, domain.Credentials) (*ports.LoginResult, error) {
	return nil, errors.New("not used")
}

func (b *fakeBackend) ListSpaces(context.Context) ([]domain.AcademicSpace, error) {
	if b.spacesErr != nil {
		return nil, b.spacesErr
	}
	return []domain.AcademicSpace{
		{ID: 1, Name: "Lab 1", Available: true},
		{ID: 2, Name: "Auditório", Available: false},
	}, nil
}

func (b *fakeBackend) ListInstructors(context.Context) ([]domain.Instructor, error) {
	return []domain.Instructor{{ID: 7, Name: "Ana"}}, nil
}

func (b *fakeBackend) GetReservation(_ context.Context, id int64) (*domain.Reservation, error) {
	return &domain.Reservation{
		ID: &id, Space: domain.Ref{ID: 1}, Instructor: domain.Ref{ID: 7},
		Date: "2026-11-03T00:00:00Z", StartTime: "08:00", EndTime: "09:00",
	}, nil
}

func (b *fakeBackend) CreateReservation(_ context.Context, r domain.Reservation) (*domain.Reservation, error) {
	if b.saveErr != nil {
		return nil, b.saveErr
	}
	b.created = append(b.created, r)
	id := int64(100)
	r.ID = &id
	return &r, nil
}

func (b *fakeBackend) UpdateReservation(_ context.Context, id int64, r domain.Reservation) (*domain.Reservation, error) {
	if b.saveErr != nil {
		return nil, b.saveErr
	}
	if b.updated == nil {
		b.updated = make(map[int64]domain.Reservation)
	}
	b.updated[id] = r
	return &r, nil
}

func newReservationHandler(b *fakeBackend) *ReservationHandler {
	forms := service.NewFormService(b, zerolog.Nop(),
		service.WithClock(func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) }),
		service.WithLocation(time.UTC),
	)
	return NewReservationHandler(forms, time.UTC)
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestReservationHandler_New(t *testing.T) {
	h := newReservationHandler(&fakeBackend{})

	c, rec := newJSONContext(http.MethodGet, "/reservas/novo", "")
	require.NoError(t, h.New(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp formResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.ModeCreate, resp.Mode)
	assert.Equal(t, "Cadastrar Reserva", resp.Title)
	assert.Equal(t, "Cadastrar", resp.SubmitLabel)
	assert.Equal(t, domain.FormReady, resp.State)
	assert.Equal(t, []domain.AcademicSpace{{ID: 1, Name: "Lab 1", Available: true}}, resp.Spaces)
	assert.Len(t, resp.Instructors, 1)
	assert.Nil(t, resp.Banner)
}

func TestReservationHandler_Edit(t *testing.T) {
	h := newReservationHandler(&fakeBackend{})

	c, rec := newJSONContext(http.MethodGet, "/reservas/5/editar", "")
	require.NoError(t, h.Edit(withID(c, "5")))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp formResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.ModeEdit, resp.Mode)
	assert.Equal(t, "Editar Reserva", resp.Title)
	assert.Equal(t, "Atualizar", resp.SubmitLabel)
	assert.EqualValues(t, 5, resp.EditID)
	assert.Equal(t, workingCopyResponse{
		SpaceID: 1, InstructorID: 7,
		Date: "2026-11-03", DateDisplay: "03/11/2026",
		StartTime: "08:00", EndTime: "09:00",
	}, resp.Reservation)
}

func TestReservationHandler_Edit_BadID(t *testing.T) {
	h := newReservationHandler(&fakeBackend{})

	c, _ := newJSONContext(http.MethodGet, "/reservas/abc/editar", "")
	err := h.Edit(withID(c, "abc"))

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestReservationHandler_New_LoadFailureRendersBanner(t *testing.T) {
	h := newReservationHandler(&fakeBackend{
		spacesErr: &domain.BackendError{Op: "GET /espacos", Status: 503, Message: "manutenção"},
	})

	c, rec := newJSONContext(http.MethodGet, "/reservas/novo", "")
	require.NoError(t, h.New(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp formResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Banner)
	assert.Equal(t, "Erro ao carregar dados iniciais: manutenção", resp.Banner.Error)
	assert.Equal(t, domain.FormReady, resp.State)
	assert.Empty(t, resp.Spaces)
	assert.Len(t, resp.Instructors, 1)
}

func TestReservationHandler_CheckTime(t *testing.T) {
	h := newReservationHandler(&fakeBackend{})

	c, rec := newJSONContext(http.MethodPost, "/reservas/horario", `{"value":"23:30"}`)
	require.NoError(t, h.CheckTime(c))
	assert.JSONEq(t, `{"warning":null}`, rec.Body.String())

	c, rec = newJSONContext(http.MethodPost, "/reservas/horario", `{"value":"05:59"}`)
	require.NoError(t, h.CheckTime(c))
	assert.JSONEq(t, `{"warning":{"severity":"warning","message":"Horário deve estar entre 06:00 e 23:00"}}`, rec.Body.String())
}

func TestReservationHandler_Create(t *testing.T) {
	b := &fakeBackend{}
	h := newReservationHandler(b)

	body := `{"espacoId":1,"professorId":7,"data":"20/10/2026","horaInicial":"14:00","horaFinal":"15:15"}`
	c, rec := newJSONContext(http.MethodPost, "/reservas", body)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp submitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.Notification{Severity: domain.SeveritySuccess, Message: "Reserva criada com sucesso"}, resp.Notification)
	assert.Equal(t, "/reservas", resp.Redirect)

	require.Len(t, b.created, 1)
	assert.Equal(t, "2026-10-20", b.created[0].Date)
	assert.EqualValues(t, 1, b.created[0].Space.ID)
	assert.EqualValues(t, 7, b.created[0].Instructor.ID)
}

func TestReservationHandler_Create_ValidationFailure(t *testing.T) {
	b := &fakeBackend{}
	h := newReservationHandler(b)

	body := `{"espacoId":1,"professorId":7,"horaInicial":"14:00","horaFinal":"15:15"}`
	c, _ := newJSONContext(http.MethodPost, "/reservas", body)
	err := h.Create(c)

	var f *domain.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, http.StatusUnprocessableEntity, f.HTTPStatus())
	assert.Equal(t, "É necessário selecionar uma data", f.UserMessage)
	assert.Empty(t, b.created)
}

func TestReservationHandler_Create_BadDate(t *testing.T) {
	h := newReservationHandler(&fakeBackend{})

	c, _ := newJSONContext(http.MethodPost, "/reservas", `{"data":"amanhã"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestReservationHandler_Update(t *testing.T) {
	b := &fakeBackend{}
	h := newReservationHandler(b)

	body := `{"espacoId":1,"professorId":7,"data":"2026-10-16","horaInicial":"22:00","horaFinal":"23:00"}`
	c, rec := newJSONContext(http.MethodPut, "/reservas/5", body)
	require.NoError(t, h.Update(withID(c, "5")))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp submitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Reserva atualizada com sucesso", resp.Notification.Message)
	require.Contains(t, b.updated, int64(5))
	assert.Equal(t, "2026-10-16", b.updated[5].Date)
}

func TestReservationHandler_Update_BackendFailure(t *testing.T) {
	h := newReservationHandler(&fakeBackend{
		saveErr: &domain.BackendError{Op: "PUT /reservas/5", Status: 409, Message: "Conflito de horário"},
	})

	body := `{"espacoId":1,"professorId":7,"data":"2026-10-17","horaInicial":"08:00","horaFinal":"09:00"}`
	c, _ := newJSONContext(http.MethodPut, "/reservas/5", body)
	err := h.Update(withID(c, "5"))

	var f *domain.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, http.StatusConflict, f.HTTPStatus())
	assert.Equal(t, "Conflito de horário", f.UserMessage)
}

func TestReservationHandler_Cancel(t *testing.T) {
	h := newReservationHandler(&fakeBackend{})

	c, rec := newJSONContext(http.MethodPost, "/reservas/cancelar", `{"editId":5}`)
	require.NoError(t, h.Cancel(c))
	assert.JSONEq(t, `{"redirect":"/reservas"}`, rec.Body.String())

	c, rec = newJSONContext(http.MethodPost, "/reservas/cancelar", "")
	require.NoError(t, h.Cancel(c))
	assert.JSONEq(t, `{"redirect":"/reservas"}`, rec.Body.String())
}
