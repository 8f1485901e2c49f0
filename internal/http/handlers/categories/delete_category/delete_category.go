package deletecategory

import (
	"errors"
	"fmt"
	"net/http"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/services"
	deletecategory "newsdesk/internal/core/services/delete_category"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"
)

const LIST_PATH = "/admin/news/category"

type Handler struct {
	view    *view.Renderer
	service services.Service[deletecategory.Input, deletecategory.Result]
}

func New(
	view *view.Renderer,
	service services.Service[deletecategory.Input, deletecategory.Result],
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
	id := news.CategoryID(rawID)

	_, err := h.service.Run(r.Context(), deletecategory.Input{ID: id})
	switch {
	case err == nil:
		flash.Redirect(rw, r, LIST_PATH, flash.Success("category.delete.success", fmt.Sprint(id)))
	case errors.Is(err, news.ErrCategoryDoesNotExist):
		flash.Redirect(rw, r, LIST_PATH, flash.Danger("category.change.not_found", fmt.Sprint(id)))
	case errors.Is(err, news.ErrCategoryInUse):
		flash.Redirect(rw, r, LIST_PATH, flash.Danger("category.delete.in_use", fmt.Sprint(id)))
	case response.RenderAuthError(h.view, rw, r, err):
	default:
		h.view.RenderInternalError(rw, r)
	}
}
