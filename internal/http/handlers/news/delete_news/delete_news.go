package deletenews

import (
	"errors"
	"fmt"
	"net/http"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/services"
	deletenews "newsdesk/internal/core/services/delete_news"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"
)

const LIST_PATH = "/admin/news"

type Handler struct {
	view    *view.Renderer
	service services.Service[deletenews.Input, deletenews.Result]
}

func New(
	view *view.Renderer,
	service services.Service[deletenews.Input, deletenews.Result],
) *Handler {
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{view: view, service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID, ok := response.ParseID(r)
	if !ok {
		http.NotFound(rw, r)
		return
	}
	id := news.ID(rawID)

	_, err := h.service.Run(r.Context(), deletenews.Input{ID: id})
	if errors.Is(err, news.ErrNewsDoesNotExist) {
		flash.Redirect(rw, r, LIST_PATH, flash.Danger("news.change.not_found", fmt.Sprint(id)))
		return
	}
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}

	flash.Redirect(rw, r, LIST_PATH, flash.Success("news.delete.success", fmt.Sprint(id)))
}
