package createcategory

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/services"
	createcategory "newsdesk/internal/core/services/create_category"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	PATH      = "/admin/news/category/create"
	LIST_PATH = "/admin/news/category"
	PAGE      = "category_form"
	TITLE     = "category.create.title"
)

type Handler struct {
	view    *view.Renderer
	service services.Service[createcategory.Input, createcategory.Result]
}

func New(
	view *view.Renderer,
	service services.Service[createcategory.Input, createcategory.Result],
) *Handler {
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{view: view, service: service}
}

// Input is the category form, shared by the change page.
type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Ico         string `json:"ico"`
}

func (i *Input) FromForm(form url.Values) {
	i.Name = strings.TrimSpace(form.Get("name"))
	i.Description = strings.TrimSpace(form.Get("description"))
	i.Ico = strings.TrimSpace(form.Get("ico"))
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, news.MaxCategoryNameLength)),
		validation.Field(&i.Description, validation.Length(0, news.MaxCategoryDescriptionLength)),
		validation.Field(&i.Ico, validation.Length(0, news.MaxCategoryIcoLength)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.view.Render(rw, r, http.StatusOK, PAGE, view.Page{Title: TITLE})
		return
	}
	if !response.ParseForm(rw, r) {
		return
	}

	input := Input{}
	input.FromForm(r.PostForm)
	if err := input.Validate(); err != nil {
		h.view.Render(rw, r, http.StatusUnprocessableEntity, PAGE, view.Page{
			Title:  TITLE,
			Form:   r.PostForm,
			Errors: view.FormErrors(err),
		})
		return
	}

	_, err := h.service.Run(r.Context(), createcategory.Input{
		Name:        input.Name,
		Description: news.OptionalText(input.Description),
		Ico:         news.OptionalText(input.Ico),
	})
	if errors.Is(err, news.ErrCategoryAlreadyExists) {
		flash.Redirect(rw, r, PATH, flash.Danger("category.create.error"))
		return
	}
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}

	flash.Redirect(rw, r, LIST_PATH, flash.Success("category.create.success"))
}
