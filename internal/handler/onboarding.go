package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/alfieapp/quarterly/internal/ctxkeys"
	"github.com/alfieapp/quarterly/internal/service"
	"github.com/alfieapp/quarterly/internal/store"
	"github.com/alfieapp/quarterly/internal/ui"
	"github.com/alfieapp/quarterly/internal/validation"
)

type OnboardingHandler struct {
	quarterService *service.QuarterService
	sessions       *store.Manager
}

func NewOnboardingHandler(quarterService *service.QuarterService, sessions *store.Manager) *OnboardingHandler {
	return &OnboardingHandler{
		quarterService: quarterService,
		sessions:       sessions,
	}
}

type onboardingView struct {
	Step        string
	QuarterName string
	MeetingGoal int
	MMRGoal     float64
	Error       string
}

func (h *OnboardingHandler) OnboardingPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	// Users with quarters have nothing to onboard
	quarters, err := h.quarterService.Quarters(user.ID)
	if err == nil && len(quarters) > 0 {
		http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
		return
	}

	ui.Render(w, r, "onboarding.html", onboardingView{Step: "quarter"})
}

// SubmitQuarter validates the quarter name and advances to the goals step.
// Nothing is persisted until both steps are submitted.
func (h *OnboardingHandler) SubmitQuarter(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("quarter_name"))

	err := validation.ValidateQuarterName(name)
	if err != nil {
		ui.Render(w, r, "onboarding.html", onboardingView{
			Step:        "quarter",
			QuarterName: name,
			Error:       err.Error(),
		})
		return
	}

	ui.Render(w, r, "onboarding.html", onboardingView{
		Step:        "goals",
		QuarterName: name,
	})
}

// SubmitGoals creates the quarter and its goals in one transaction and
// drops the user on the dashboard.
func (h *OnboardingHandler) SubmitGoals(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	name := strings.TrimSpace(r.FormValue("quarter_name"))
	meetingGoal, _ := strconv.Atoi(r.FormValue("meeting_goal"))
	mmrGoal, _ := strconv.ParseFloat(r.FormValue("mmr_goal"), 64)

	view := onboardingView{
		Step:        "goals",
		QuarterName: name,
		MeetingGoal: meetingGoal,
		MMRGoal:     mmrGoal,
	}

	err := validation.ValidateGoals(meetingGoal, mmrGoal)
	if err != nil {
		view.Error = err.Error()
		ui.Render(w, r, "onboarding.html", view)
		return
	}

	quarter, err := h.quarterService.CreateWithGoals(user.ID, name, meetingGoal, mmrGoal)
	if err != nil {
		slog.Error("onboarding failed", "error", err, "user_id", user.ID)
		view.Error = "Could not create your quarter. Please try again."
		ui.Render(w, r, "onboarding.html", view)
		return
	}

	sess := h.sessions.Session(user.ID)
	err = sess.SelectQuarter(quarter.ID)
	if err != nil {
		slog.Warn("failed to preload quarter data", "error", err, "user_id", user.ID, "quarter_id", quarter.ID)
	}

	http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
}
