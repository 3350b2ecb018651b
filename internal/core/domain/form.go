package domain

// FormState is the lifecycle state of one reservation form screen.
type FormState string

const (
	FormLoading    FormState = "loading"
	FormReady      FormState = "ready"
	FormSubmitting FormState = "submitting"
	FormNavigated  FormState = "navigated"
)

// validFormTransitions is the form state machine. Loading is re-entered when
// the edit target changes; Navigated is terminal.
var validFormTransitions = map[FormState][]FormState{
	FormLoading:    {FormLoading, FormReady},
	FormReady:      {FormLoading, FormSubmitting, FormNavigated},
	FormSubmitting: {FormReady, FormNavigated},
}

// CanTransitionTo reports whether the form may move from s to next.
func (s FormState) CanTransitionTo(next FormState) bool {
	for _, allowed := range validFormTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AcceptsInput reports whether field edits and submit are allowed.
func (s FormState) AcceptsInput() bool {
	return s == FormReady
}

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Notification is a transient message shown to the user.
type Notification struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

const (
	MsgReservationCreated = "Reserva criada com sucesso"
	MsgReservationUpdated = "Reserva atualizada com sucesso"
)

// FormMode tells whether a form creates a reservation or edits one.
type FormMode string

const (
	ModeCreate FormMode = "create"
	ModeEdit   FormMode = "edit"
)

// Title is the page heading for the mode.
func (m FormMode) Title() string {
	if m == ModeEdit {
		return "Editar Reserva"
	}
	return "Cadastrar Reserva"
}

// SubmitLabel is the label of the submit control in the given state.
func (m FormMode) SubmitLabel(s FormState) string {
	switch {
	case s == FormLoading || s == FormSubmitting:
		return "Salvando..."
	case m == ModeEdit:
		return "Atualizar"
	default:
		return "Cadastrar"
	}
}
