// Package web serves the server-rendered funnel pages: landing, the
// four-step wizard, the success view and the follow-up profile form. The
// wizard's state rides in hidden form fields between requests, so the
// server stays stateless.
package web

import (
	"errors"
	"strconv"

	"mutual-book/internal/domain/funnel"
	"mutual-book/internal/funnel/wizard"
	"mutual-book/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Handler struct {
	uc usecase.FunnelUsecase
}

func NewHandler(uc usecase.FunnelUsecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/", h.Landing)
	app.Get("/onboarding", h.StartWizard)
	app.Post("/onboarding/step", h.WizardStep)
	app.Post("/onboarding/resend", h.ResendEmail)
	app.Get("/complete-profile/:id", h.ProfileForm)
	app.Post("/complete-profile/:id", h.SubmitProfile)
}

func (h *Handler) Landing(c fiber.Ctx) error {
	return c.Render("landing", fiber.Map{})
}

func (h *Handler) StartWizard(c fiber.Ctx) error {
	m := wizard.Resume(wizard.StateUserType, wizard.Form{})
	return renderWizard(c, m, "")
}

// WizardStep advances or rewinds the machine rebuilt from the posted
// hidden fields. A blocked guard re-renders the same step with its
// message; the final forward transition submits through the usecase.
func (h *Handler) WizardStep(c fiber.Ctx) error {
	m := wizard.Resume(parseState(c.FormValue("state")), parseForm(c))

	if c.FormValue("action") == "prev" {
		m.Prev()
		return renderWizard(c, m, "")
	}

	if err := m.Next(); err != nil {
		var gErr *wizard.GuardError
		if errors.As(err, &gErr) {
			return renderWizard(c, m, gErr.Message)
		}
		return renderWizard(c, m, "Something went wrong. Please try again.")
	}

	if m.State() != wizard.StateSubmitting {
		return renderWizard(c, m, "")
	}

	_, err := h.uc.SubmitOnboarding(c.Context(), m.Form().ToInput())
	if err != nil {
		m.Finish(false)
		return renderWizard(c, m, "Something went wrong. Please try again.")
	}
	m.Finish(true)

	return c.Render("success", fiber.Map{"Email": m.Form().Email})
}

// ResendEmail backs the "click here to resend" control on the success
// view and re-renders it with the outcome inline.
func (h *Handler) ResendEmail(c fiber.Ctx) error {
	email := c.FormValue("email")
	bind := fiber.Map{"Email": email}

	if err := h.uc.ResendEmail(c.Context(), email); err != nil {
		var vErr *funnel.ValidationError
		switch {
		case errors.Is(err, funnel.ErrEntryNotFound):
			bind["Error"] = "No submission was found for this email."
		case errors.As(err, &vErr) && len(vErr.Fields) > 0:
			bind["Error"] = vErr.Fields[0].Message
		default:
			bind["Error"] = "Something went wrong. Please try again."
		}
		return c.Render("success", bind)
	}

	bind["Notice"] = "Email resent successfully!"
	return c.Render("success", bind)
}

func (h *Handler) ProfileForm(c fiber.Ctx) error {
	return c.Render("profile", profileView{
		OnboardingID: c.Params("id"),
		Traits:       wizard.Traits,
	})
}

func (h *Handler) SubmitProfile(c fiber.Ctx) error {
	onboardingID, _ := strconv.Atoi(c.Params("id"))

	in := funnel.ProfileInput{
		OnboardingID:      onboardingID,
		FullName:          c.FormValue("fullName"),
		Bio:               c.FormValue("bio"),
		PersonalityTraits: formValues(c, "personalityTraits"),
		Goals:             c.FormValue("goals"),
	}

	if _, err := h.uc.CompleteProfile(c.Context(), in); err != nil {
		view := profileView{
			OnboardingID: c.Params("id"),
			Traits:       wizard.Traits,
			FullName:     in.FullName,
			Bio:          in.Bio,
			Goals:        in.Goals,
			Selected:     selectedSet(in.PersonalityTraits),
		}

		var vErr *funnel.ValidationError
		if errors.As(err, &vErr) {
			view.FieldErrors = vErr.Fields
		} else {
			view.Error = "Something went wrong. Please try again."
		}
		return c.Render("profile", view)
	}

	return c.Render("profile_done", fiber.Map{})
}

type profileView struct {
	OnboardingID string
	Traits       []string
	FullName     string
	Bio          string
	Goals        string
	Selected     map[string]bool
	FieldErrors  []funnel.FieldError
	Error        string
}

type wizardView struct {
	Step        string
	StateValue  int
	StepNumber  int
	TotalSteps  int
	ProgressPct int
	Form        wizard.Form
	Communities []string
	Selected    map[string]bool
	Error       string
}

const totalSteps = 4

func renderWizard(c fiber.Ctx, m *wizard.Machine, errMsg string) error {
	n := stepNumber(m.State())
	return c.Render("wizard", wizardView{
		Step:        m.State().String(),
		StateValue:  int(m.State()),
		StepNumber:  n,
		TotalSteps:  totalSteps,
		ProgressPct: n * 100 / totalSteps,
		Form:        m.Form(),
		Communities: wizard.Communities,
		Selected:    selectedSet(m.Form().Communities),
		Error:       errMsg,
	})
}

func stepNumber(s wizard.State) int {
	switch s {
	case wizard.StateCommunities:
		return 2
	case wizard.StateSocial:
		return 3
	case wizard.StateEmail, wizard.StateSubmitting:
		return 4
	default:
		return 1
	}
}

func parseState(raw string) wizard.State {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return wizard.StateLanding
	}
	return wizard.State(n)
}

func parseForm(c fiber.Ctx) wizard.Form {
	return wizard.Form{
		UserType:    c.FormValue("userType"),
		Communities: formValues(c, "communities"),
		Social: funnel.SocialLinks{
			WhatsApp:  c.FormValue("whatsapp"),
			Instagram: c.FormValue("instagram"),
			Snapchat:  c.FormValue("snapchat"),
			LinkedIn:  c.FormValue("linkedin"),
		},
		Email: c.FormValue("email"),
	}
}

func formValues(c fiber.Ctx, key string) []string {
	raw := c.Request().PostArgs().PeekMulti(key)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if len(v) > 0 {
			out = append(out, string(v))
		}
	}
	return out
}

func selectedSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}
