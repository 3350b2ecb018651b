package handler

import "github.com/ucasl/reservas-web/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string      `json:"error"`
	Kind  domain.Kind `json:"kind,omitempty"`
}

// --- Request types ---

type loginRequest struct {
	Identifier string `json:"identifier" validate:"max=254"`
	Secret     string `json:"secret"     validate:"max=256"`
}

// workingCopyRequest is the reservation form as the browser holds it. Dates
// are yyyy-MM-dd or dd/MM/yyyy; times are HH:MM.
type workingCopyRequest struct {
	SpaceID      int64  `json:"espacoId"    validate:"gte=0"`
	InstructorID int64  `json:"professorId" validate:"gte=0"`
	Date         string `json:"data"        validate:"max=32"`
	StartTime    string `json:"horaInicial" validate:"max=8"`
	EndTime      string `json:"horaFinal"   validate:"max=8"`
}

type timeInputRequest struct {
	Value string `json:"value" validate:"max=8"`
}

type cancelRequest struct {
	EditID int64 `json:"editId" validate:"gte=0"`
}

// --- Response types ---

type loginResponse struct {
	User     *domain.User `json:"user"`
	Redirect string       `json:"redirect"`
}

type redirectResponse struct {
	Redirect string `json:"redirect"`
}

type workingCopyResponse struct {
	SpaceID      int64  `json:"espacoId"`
	InstructorID int64  `json:"professorId"`
	Date         string `json:"data"`
	DateDisplay  string `json:"dataExibicao"`
	StartTime    string `json:"horaInicial"`
	EndTime      string `json:"horaFinal"`
}

type formResponse struct {
	Mode        domain.FormMode        `json:"mode"`
	Title       string                 `json:"title"`
	SubmitLabel string                 `json:"submitLabel"`
	State       domain.FormState       `json:"state"`
	EditID      int64                  `json:"editId,omitempty"`
	Spaces      []domain.AcademicSpace `json:"espacos"`
	Instructors []domain.Instructor    `json:"professores"`
	Reservation workingCopyResponse    `json:"reserva"`
	Banner      *errorResponse         `json:"banner,omitempty"`
}

type timeInputResponse struct {
	Warning *domain.Notification `json:"warning"`
}

type submitResponse struct {
	Reservation  *domain.Reservation `json:"reserva,omitempty"`
	Notification domain.Notification `json:"notification"`
	Redirect     string              `json:"redirect"`
}
