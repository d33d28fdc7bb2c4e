package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alfieapp/quarterly/internal/ctxkeys"
	"github.com/alfieapp/quarterly/internal/store"
	"github.com/alfieapp/quarterly/internal/ui"
)

type DealHandler struct {
	sessions *store.Manager
}

func NewDealHandler(sessions *store.Manager) *DealHandler {
	return &DealHandler{sessions: sessions}
}

func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	sess := h.sessions.Session(user.ID)

	name := r.FormValue("name")
	value, err := strconv.ParseFloat(r.FormValue("value"), 64)
	if err != nil {
		h.renderList(w, r, sess)
		return
	}

	_, err = sess.Deals.Add(name, value)
	if err != nil {
		slog.Debug("deal create rejected", "error", err, "user_id", user.ID)
	}

	h.renderList(w, r, sess)
}

// UpdateValue edits one deal's MMR value in place.
func (h *DealHandler) UpdateValue(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	sess := h.sessions.Session(user.ID)

	dealID := r.PathValue("id")
	value, err := strconv.ParseFloat(r.FormValue("value"), 64)
	if err != nil {
		h.renderList(w, r, sess)
		return
	}

	_, err = sess.Deals.UpdateValue(dealID, value)
	if err != nil {
		slog.Debug("deal update rejected", "error", err, "user_id", user.ID, "deal_id", dealID)
	}

	h.renderList(w, r, sess)
}

// Delete is two-step, same flow as meetings.
func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	sess := h.sessions.Session(user.ID)

	dealID := r.PathValue("id")
	if sess.DealDeletes.Confirm(dealID) {
		err := sess.Deals.Remove(dealID)
		if err != nil {
			slog.Debug("deal delete rejected", "error", err, "user_id", user.ID, "deal_id", dealID)
		}
	}

	h.renderList(w, r, sess)
}

func (h *DealHandler) renderList(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	view := buildDashboardView(sess, nil)
	ui.RenderPartial(w, r, "deal_list", view)
	ui.RenderPartial(w, r, "summary_oob", view)
}
