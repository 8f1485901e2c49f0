package listnews

import (
	"net/http"
	"strconv"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/services"
	listcategories "newsdesk/internal/core/services/list_categories"
	listnews "newsdesk/internal/core/services/list_news"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"
)

const (
	PATH  = "/admin/news"
	PAGE  = "news_list"
	TITLE = "news.list.title"
)

type Handler struct {
	view              *view.Renderer
	service           services.Service[listnews.Input, listnews.Result]
	categoriesService services.Service[listcategories.Input, listcategories.Result]
}

func New(
	view *view.Renderer,
	service services.Service[listnews.Input, listnews.Result],
	categoriesService services.Service[listcategories.Input, listcategories.Result],
) *Handler {
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if categoriesService == nil {
		panic(e.NewNilArgumentError("categoriesService"))
	}
	return &Handler{view: view, service: service, categoriesService: categoriesService}
}

type Data struct {
	News       []news.News
	Categories []news.Category
}

// ParseCategory reads the optional ?category= filter. Malformed values are ignored.
func ParseCategory(r *http.Request) c.Optional[news.CategoryID] {
	id, err := strconv.ParseInt(r.URL.Query().Get("category"), 10, 64)
	if err != nil || id <= 0 {
		return c.Absent[news.CategoryID]()
	}
	return c.NewOptional(news.CategoryID(id), true)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listnews.Input{CategoryID: ParseCategory(r)})
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}

	categories, err := h.categoriesService.Run(r.Context(), listcategories.Input{})
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}

	h.view.Render(rw, r, http.StatusOK, PAGE, view.Page{
		Title: TITLE,
		Form:  r.URL.Query(),
		Data:  Data{News: result.News, Categories: categories.Categories},
	})
}
