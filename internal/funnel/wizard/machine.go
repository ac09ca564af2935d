// Package wizard is the four-step onboarding state machine. Each forward
// transition has exactly one guard; backward transitions are always
// allowed and never lose entered data.
package wizard

import (
	"errors"
	"fmt"

	"mutual-book/internal/domain/funnel"
)

type State int

const (
	StateLanding State = iota
	StateUserType
	StateCommunities
	StateSocial
	StateEmail
	StateSubmitting
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateLanding:
		return "landing"
	case StateUserType:
		return "userType"
	case StateCommunities:
		return "communities"
	case StateSocial:
		return "social"
	case StateEmail:
		return "email"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MinCommunities is the wizard's gate. It is stricter than the server-side
// validator (which accepts one); the two thresholds belong to different
// layers.
const MinCommunities = 3

// Catalogs presented by the UI. Selection from them is a presentation
// concern only; nothing enforces membership downstream.
var Communities = []string{
	"Technology", "Design", "Business", "Marketing", "Finance",
	"Health", "Education", "Arts", "Sports", "Science",
}

var Traits = []string{
	"Curious", "Collaborative", "Analytical", "Creative",
	"Empathetic", "Resilient", "Organized", "Visionary",
}

// GuardError is a blocked forward transition; Message is shown inline on
// the current step.
type GuardError struct {
	Step    State
	Message string
}

func (e *GuardError) Error() string {
	return e.Step.String() + ": " + e.Message
}

var errNoForward = errors.New("no forward transition from this state")

// Form is the data accumulated across steps.
type Form struct {
	UserType    string
	Communities []string
	Social      funnel.SocialLinks
	Email       string
}

func (f Form) ToInput() funnel.EntryInput {
	return funnel.EntryInput{
		UserType:    f.UserType,
		Communities: f.Communities,
		SocialMedia: f.Social,
		Email:       f.Email,
	}
}

type Machine struct {
	state State
	form  Form
}

func New() *Machine {
	return &Machine{state: StateLanding}
}

// Resume rebuilds a machine from externalized state, e.g. hidden form
// fields on a server-rendered page.
func Resume(state State, form Form) *Machine {
	if state < StateLanding || state > StateSuccess {
		state = StateLanding
	}
	return &Machine{state: state, form: form}
}

func (m *Machine) State() State { return m.state }
func (m *Machine) Form() Form   { return m.form }

func (m *Machine) SetForm(f Form) { m.form = f }

// Next runs the current step's guard and advances on success. From
// StateEmail it moves to StateSubmitting; the caller performs the actual
// submission and reports back via Finish.
func (m *Machine) Next() error {
	switch m.state {
	case StateLanding:
		m.state = StateUserType
		return nil
	case StateUserType:
		if err := guardUserType(m.form); err != nil {
			return err
		}
		m.state = StateCommunities
		return nil
	case StateCommunities:
		if err := guardCommunities(m.form); err != nil {
			return err
		}
		m.state = StateSocial
		return nil
	case StateSocial:
		// Social handles are optional; no guard.
		m.state = StateEmail
		return nil
	case StateEmail:
		if err := guardEmail(m.form); err != nil {
			return err
		}
		m.state = StateSubmitting
		return nil
	default:
		return errNoForward
	}
}

// Prev steps back without touching the form. Step 1 and the terminal
// states have no backward transition.
func (m *Machine) Prev() {
	switch m.state {
	case StateCommunities:
		m.state = StateUserType
	case StateSocial:
		m.state = StateCommunities
	case StateEmail:
		m.state = StateSocial
	}
}

// Finish resolves a submission attempt: success lands on the success
// view, failure returns to the email step with the form intact.
func (m *Machine) Finish(ok bool) {
	if m.state != StateSubmitting {
		return
	}
	if ok {
		m.state = StateSuccess
	} else {
		m.state = StateEmail
	}
}

func guardUserType(f Form) error {
	if f.UserType == "" {
		return &GuardError{Step: StateUserType, Message: "Please select whether you are a student or a professional."}
	}
	return nil
}

func guardCommunities(f Form) error {
	if len(f.Communities) < MinCommunities {
		return &GuardError{Step: StateCommunities, Message: "Please select at least 3 communities."}
	}
	return nil
}

func guardEmail(f Form) error {
	if !funnel.ValidEmail(f.Email) {
		return &GuardError{Step: StateEmail, Message: "Please enter a valid email address."}
	}
	return nil
}
