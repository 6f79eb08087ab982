package state

import "github.com/charmbracelet/huh"

// FormState holds the open dialog form and the values its fields write to.
// huh fields keep pointers into this struct, so it is shared by every copy of
// the model rather than copied with it.
type FormState struct {
	// Form is the open dialog, nil when none is shown
	Form *huh.Form

	// Values bound to the form fields
	Title       string
	Description string
	Confirm     bool
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{}
}

// Open sets the form being shown. Values are seeded before the form is built
// so its fields start prefilled.
func (s *FormState) Open(form *huh.Form) {
	s.Form = form
}

// Completed reports whether the open form has been submitted
func (s *FormState) Completed() bool {
	return s.Form != nil && s.Form.State == huh.StateCompleted
}

// Complete submits the open form without going through its fields
func (s *FormState) Complete() {
	if s.Form != nil {
		s.Form.State = huh.StateCompleted
	}
}

// Clear closes the form and forgets its values
func (s *FormState) Clear() {
	*s = FormState{}
}
