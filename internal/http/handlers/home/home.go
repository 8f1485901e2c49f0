package home

import (
	"net/http"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/http/view"
)

type Handler struct {
	view *view.Renderer
}

func New(view *view.Renderer) *Handler {
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	return &Handler{view: view}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	h.view.Render(rw, r, http.StatusOK, "home", view.Page{Title: "home.title"})
}
