package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alfieapp/quarterly/internal/ctxkeys"
	"github.com/alfieapp/quarterly/internal/service"
	"github.com/alfieapp/quarterly/internal/store"
	"github.com/alfieapp/quarterly/internal/ui"
)

type MeetingHandler struct {
	sessions *store.Manager
}

func NewMeetingHandler(sessions *store.Manager) *MeetingHandler {
	return &MeetingHandler{sessions: sessions}
}

// Create adds a meeting to the current quarter. Failures are logged by the
// store and the row list re-renders from the last good cache.
func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	sess := h.sessions.Session(user.ID)

	meetingDate, err := time.Parse("2006-01-02", r.FormValue("meeting_date"))
	if err != nil {
		h.renderRows(w, r, sess)
		return
	}

	_, err = sess.Meetings.Add(service.MeetingInput{
		ContactName: r.FormValue("contact_name"),
		CompanyName: r.FormValue("company_name"),
		MeetingDate: meetingDate,
		Outcome:     r.FormValue("outcome"),
	})
	if err != nil {
		slog.Debug("meeting create rejected", "error", err, "user_id", user.ID)
	}

	h.renderRows(w, r, sess)
}

// UpdateOutcome changes one meeting's outcome.
func (h *MeetingHandler) UpdateOutcome(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	sess := h.sessions.Session(user.ID)

	meetingID := r.PathValue("id")
	outcome := r.FormValue("outcome")

	_, err := sess.Meetings.UpdateOutcome(meetingID, outcome)
	if err != nil {
		slog.Debug("meeting update rejected", "error", err, "user_id", user.ID, "meeting_id", meetingID)
	}

	h.renderRows(w, r, sess)
}

// Delete is two-step: the first request arms the confirmation and re-renders
// the row with a confirm prompt; a second request within the window deletes.
func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	sess := h.sessions.Session(user.ID)

	meetingID := r.PathValue("id")
	if sess.MeetingDeletes.Confirm(meetingID) {
		err := sess.Meetings.Remove(meetingID)
		if err != nil {
			slog.Debug("meeting delete rejected", "error", err, "user_id", user.ID, "meeting_id", meetingID)
		}
	}

	h.renderRows(w, r, sess)
}

func (h *MeetingHandler) renderRows(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	view := buildDashboardView(sess, nil)
	ui.RenderPartial(w, r, "meeting_rows", view)
	ui.RenderPartial(w, r, "summary_oob", view)
}
