package changenews

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/services"
	changenews "newsdesk/internal/core/services/change_news"
	getnews "newsdesk/internal/core/services/get_news"
	listcategories "newsdesk/internal/core/services/list_categories"
	"newsdesk/internal/http/handlers/flash"
	createnews "newsdesk/internal/http/handlers/news/create_news"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"
)

const (
	LIST_PATH = "/admin/news"
	PAGE      = "news_form"
	TITLE     = "news.change.title"
)

type Handler struct {
	view              *view.Renderer
	service           services.Service[changenews.Input, changenews.Result]
	getService        services.Service[getnews.Input, getnews.Result]
	categoriesService services.Service[listcategories.Input, listcategories.Result]
}

func New(
	view *view.Renderer,
	service services.Service[changenews.Input, changenews.Result],
	getService services.Service[getnews.Input, getnews.Result],
	categoriesService services.Service[listcategories.Input, listcategories.Result],
) *Handler {
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if getService == nil {
		panic(e.NewNilArgumentError("getService"))
	}
	if categoriesService == nil {
		panic(e.NewNilArgumentError("categoriesService"))
	}
	return &Handler{
		view:              view,
		service:           service,
		getService:        getService,
		categoriesService: categoriesService,
	}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID, ok := response.ParseID(r)
	if !ok {
		http.NotFound(rw, r)
		return
	}
	id := news.ID(rawID)
	notFound := flash.Danger("news.change.not_found", fmt.Sprint(id))

	if r.Method != http.MethodPost {
		result, err := h.getService.Run(r.Context(), getnews.Input{ID: id})
		if errors.Is(err, news.ErrNewsDoesNotExist) {
			flash.Redirect(rw, r, LIST_PATH, notFound)
			return
		}
		if response.RenderAuthError(h.view, rw, r, err) {
			return
		}
		if err != nil {
			h.view.RenderInternalError(rw, r)
			return
		}
		form := url.Values{
			"title":    {result.News.Title},
			"text":     {result.News.Text},
			"category": {fmt.Sprint(result.News.CategoryID)},
		}
		h.render(rw, r, http.StatusOK, id, form, nil)
		return
	}
	if !response.ParseForm(rw, r) {
		return
	}

	input := createnews.Input{}
	input.FromForm(r.PostForm)
	if err := input.Validate(); err != nil {
		h.render(rw, r, http.StatusUnprocessableEntity, id, r.PostForm, view.FormErrors(err))
		return
	}

	_, err := h.service.Run(r.Context(), changenews.Input{
		ID:         id,
		Title:      input.Title,
		Text:       input.Text,
		CategoryID: input.CategoryID(),
	})
	if errors.Is(err, news.ErrNewsDoesNotExist) {
		flash.Redirect(rw, r, LIST_PATH, notFound)
		return
	}
	if errors.Is(err, news.ErrCategoryDoesNotExist) {
		h.render(rw, r, http.StatusUnprocessableEntity, id, r.PostForm, map[string]string{"category": "news.category.unknown"})
		return
	}
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}

	flash.Redirect(rw, r, LIST_PATH, flash.Success("news.change.success", fmt.Sprint(id)))
}

func (h *Handler) render(
	rw http.ResponseWriter,
	r *http.Request,
	status int,
	id news.ID,
	form url.Values,
	errs map[string]string,
) {
	categories, err := h.categoriesService.Run(r.Context(), listcategories.Input{})
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}
	h.view.Render(rw, r, status, PAGE, view.Page{
		Title:     TITLE,
		TitleArgs: []string{fmt.Sprint(id)},
		Form:      form,
		Errors:    errs,
		Data:      createnews.Data{Categories: categories.Categories},
	})
}
