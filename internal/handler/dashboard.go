package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alfieapp/quarterly/internal/ctxkeys"
	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/service"
	"github.com/alfieapp/quarterly/internal/store"
	"github.com/alfieapp/quarterly/internal/ui"
)

// dashboardView is the template data for the dashboard page and all of its
// HTMX partials, so a partial response sees the same shape as the full page.
type dashboardView struct {
	Quarter              *model.Quarter
	Summary              store.Summary
	Goals                *model.Goals
	Meetings             []*model.Meeting
	Deals                []*model.Deal
	PendingMeetingDelete string
	PendingDealDelete    string
	Error                string
}

type DashboardHandler struct {
	quarterService *service.QuarterService
	sessions       *store.Manager
}

func NewDashboardHandler(quarterService *service.QuarterService, sessions *store.Manager) *DashboardHandler {
	return &DashboardHandler{
		quarterService: quarterService,
		sessions:       sessions,
	}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	quarter, err := h.quarterService.Resolve(user.ID)
	if errors.Is(err, service.ErrOnboardingRequired) {
		http.Redirect(w, r, "/app/onboarding", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("failed to resolve quarter", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	sess := h.sessions.Session(user.ID)
	if sess.QuarterID() != quarter.ID {
		err = sess.SelectQuarter(quarter.ID)
	} else {
		err = refresh(sess)
	}

	view := buildDashboardView(sess, quarter)
	if err != nil {
		slog.Error("failed to load quarter data", "error", err, "user_id", user.ID, "quarter_id", quarter.ID)
		view.Error = "Some of your data could not be loaded. Please refresh."
	}

	ui.Render(w, r, "dashboard.html", view)
}

// refresh re-fetches all three caches for the current scope.
func refresh(sess *store.Session) error {
	var firstErr error
	for _, fn := range []func() error{
		sess.Goals.Refresh,
		sess.Meetings.Refresh,
		sess.Deals.Refresh,
	} {
		if err := fn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func buildDashboardView(sess *store.Session, quarter *model.Quarter) dashboardView {
	return dashboardView{
		Quarter:              quarter,
		Summary:              sess.Summarize(),
		Goals:                sess.Goals.Goals(),
		Meetings:             sess.Meetings.Meetings(),
		Deals:                sess.Deals.Deals(),
		PendingMeetingDelete: sess.MeetingDeletes.Pending(),
		PendingDealDelete:    sess.DealDeletes.Pending(),
	}
}
