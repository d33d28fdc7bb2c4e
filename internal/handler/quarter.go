package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alfieapp/quarterly/internal/ctxkeys"
	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/service"
	"github.com/alfieapp/quarterly/internal/store"
	"github.com/alfieapp/quarterly/internal/ui"
)

type QuarterHandler struct {
	quarterService *service.QuarterService
	sessions       *store.Manager
}

func NewQuarterHandler(quarterService *service.QuarterService, sessions *store.Manager) *QuarterHandler {
	return &QuarterHandler{
		quarterService: quarterService,
		sessions:       sessions,
	}
}

type quartersView struct {
	Quarters []*model.Quarter
	Error    string
}

func (h *QuarterHandler) QuartersPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	quarters, err := h.quarterService.Quarters(user.ID)
	if err != nil {
		slog.Error("failed to list quarters", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load quarters", http.StatusInternalServerError)
		return
	}

	if len(quarters) == 0 {
		http.Redirect(w, r, "/app/onboarding", http.StatusSeeOther)
		return
	}

	ui.Render(w, r, "quarters.html", quartersView{Quarters: quarters})
}

// Create starts a new quarter and makes it the active one.
func (h *QuarterHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	name := strings.TrimSpace(r.FormValue("quarter_name"))

	quarter, err := h.quarterService.Create(user.ID, name)
	if err != nil {
		msg := err.Error()
		if errors.Unwrap(err) != nil {
			slog.Error("failed to create quarter", "error", err, "user_id", user.ID)
			msg = "Could not create the quarter. Please try again."
		}
		quarters, listErr := h.quarterService.Quarters(user.ID)
		if listErr != nil {
			slog.Error("failed to list quarters", "error", listErr, "user_id", user.ID)
		}
		ui.Render(w, r, "quarters.html", quartersView{Quarters: quarters, Error: msg})
		return
	}

	h.switchTo(w, r, user.ID, quarter.ID)
}

// Select switches the active quarter.
func (h *QuarterHandler) Select(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	quarterID := r.PathValue("id")

	err := h.quarterService.Select(user.ID, quarterID)
	if err != nil {
		slog.Error("failed to select quarter", "error", err, "user_id", user.ID, "quarter_id", quarterID)
		http.Redirect(w, r, "/app/quarters", http.StatusSeeOther)
		return
	}

	h.switchTo(w, r, user.ID, quarterID)
}

func (h *QuarterHandler) switchTo(w http.ResponseWriter, r *http.Request, userID, quarterID string) {
	sess := h.sessions.Session(userID)
	err := sess.SelectQuarter(quarterID)
	if err != nil {
		slog.Warn("failed to preload quarter data", "error", err, "user_id", userID, "quarter_id", quarterID)
	}

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/app/dashboard")
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
}
