package handler

import (
	"net/http"

	"github.com/alfieapp/quarterly/internal/ui"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "home.html", nil)
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	ui.Render(w, r, "notfound.html", nil)
}
