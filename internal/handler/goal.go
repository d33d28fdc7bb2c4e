package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alfieapp/quarterly/internal/ctxkeys"
	"github.com/alfieapp/quarterly/internal/store"
	"github.com/alfieapp/quarterly/internal/ui"
)

type GoalHandler struct {
	sessions *store.Manager
}

func NewGoalHandler(sessions *store.Manager) *GoalHandler {
	return &GoalHandler{sessions: sessions}
}

// Update upserts both targets for the current quarter.
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	sess := h.sessions.Session(user.ID)

	meetingGoal, _ := strconv.Atoi(r.FormValue("meeting_goal"))
	mmrGoal, _ := strconv.ParseFloat(r.FormValue("mmr_goal"), 64)

	_, err := sess.Goals.Set(meetingGoal, mmrGoal)
	if err != nil {
		slog.Debug("goals update rejected", "error", err, "user_id", user.ID)
	}

	view := buildDashboardView(sess, nil)
	ui.RenderPartial(w, r, "goals_form", view)
	ui.RenderPartial(w, r, "summary_oob", view)
}
