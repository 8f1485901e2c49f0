package listcategories

import (
	"net/http"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/services"
	listcategories "newsdesk/internal/core/services/list_categories"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"
)

const (
	PATH  = "/admin/news/category"
	PAGE  = "category_list"
	TITLE = "category.list.title"
)

type Handler struct {
	view    *view.Renderer
	service services.Service[listcategories.Input, listcategories.Result]
}

func New(
	view *view.Renderer,
	service services.Service[listcategories.Input, listcategories.Result],
) *Handler {
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{view: view, service: service}
}

type Data struct {
	Categories []news.Category
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listcategories.Input{})
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}
	h.view.Render(rw, r, http.StatusOK, PAGE, view.Page{
		Title: TITLE,
		Data:  Data{Categories: result.Categories},
	})
}
