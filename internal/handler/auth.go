package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alfieapp/quarterly/internal/ctxkeys"
	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/service"
	"github.com/alfieapp/quarterly/internal/store"
	"github.com/alfieapp/quarterly/internal/ui"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *store.Manager
}

func NewAuthHandler(authService *service.AuthService, sessions *store.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

type authView struct {
	Email string
	Error string
}

func (h *AuthHandler) AuthPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "auth.html", authView{})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.authService.Register(email, password)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, service.ErrEmailAlreadyExists):
			msg = "An account with this email already exists."
		case errors.Is(err, service.ErrInvalidEmail):
			msg = "Please enter a valid email address."
		case errors.Unwrap(err) == nil:
			// Validation errors are leaf errors with user-facing messages
			msg = err.Error()
		default:
			slog.Error("registration failed", "error", err)
			msg = "Could not create your account. Please try again."
		}
		ui.Render(w, r, "auth.html", authView{Email: email, Error: msg})
		return
	}

	h.signIn(w, r, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.authService.Login(email, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			slog.Error("login failed", "error", err)
		}
		ui.Render(w, r, "auth.html", authView{Email: email, Error: "Invalid email or password."})
		return
	}

	h.signIn(w, r, user)
}

func (h *AuthHandler) signIn(w http.ResponseWriter, r *http.Request, user *model.User) {
	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		ui.Render(w, r, "auth.html", authView{Email: user.Email, Error: "Something went wrong. Please try again."})
		return
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))
	http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
}

// Logout clears the cookie and drops the server-side session caches.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if user := ctxkeys.User(r.Context()); user != nil {
		h.sessions.Drop(user.ID)
	}

	h.authService.ClearJWTCookie(w)

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
