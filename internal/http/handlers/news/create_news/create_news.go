package createnews

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/services"
	createnews "newsdesk/internal/core/services/create_news"
	listcategories "newsdesk/internal/core/services/list_categories"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	PATH      = "/admin/news/create"
	LIST_PATH = "/admin/news"
	PAGE      = "news_form"
	TITLE     = "news.create.title"
)

type Handler struct {
	view              *view.Renderer
	service           services.Service[createnews.Input, createnews.Result]
	categoriesService services.Service[listcategories.Input, listcategories.Result]
}

func New(
	view *view.Renderer,
	service services.Service[createnews.Input, createnews.Result],
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

// Input is the news form, shared by the change page.
type Input struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

func (i *Input) FromForm(form url.Values) {
	i.Title = form.Get("title")
	i.Text = form.Get("text")
	i.Category = form.Get("category")
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, news.MaxTitleLength)),
		validation.Field(&i.Text, validation.Required),
		validation.Field(&i.Category, validation.Required, is.Int),
	)
}

// CategoryID must only be called on a validated input.
func (i Input) CategoryID() news.CategoryID {
	id, _ := strconv.ParseInt(i.Category, 10, 64)
	return news.CategoryID(id)
}

type Data struct {
	Categories []news.Category
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.render(rw, r, http.StatusOK, nil, nil)
		return
	}
	if !response.ParseForm(rw, r) {
		return
	}

	input := Input{}
	input.FromForm(r.PostForm)
	if err := input.Validate(); err != nil {
		h.render(rw, r, http.StatusUnprocessableEntity, r.PostForm, view.FormErrors(err))
		return
	}

	_, err := h.service.Run(r.Context(), createnews.Input{
		Title:      input.Title,
		Text:       input.Text,
		CategoryID: input.CategoryID(),
	})
	if errors.Is(err, news.ErrCategoryDoesNotExist) {
		h.render(rw, r, http.StatusUnprocessableEntity, r.PostForm, map[string]string{"category": "news.category.unknown"})
		return
	}
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}

	flash.Redirect(rw, r, LIST_PATH, flash.Success("news.create.success"))
}

func (h *Handler) render(rw http.ResponseWriter, r *http.Request, status int, form url.Values, errs map[string]string) {
	categories, err := h.categoriesService.Run(r.Context(), listcategories.Input{})
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}
	h.view.Render(rw, r, status, PAGE, view.Page{
		Title:  TITLE,
		Form:   form,
		Errors: errs,
		Data:   Data{Categories: categories.Categories},
	})
}
