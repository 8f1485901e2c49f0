package changecategory

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/services"
	changecategory "newsdesk/internal/core/services/change_category"
	listcategories "newsdesk/internal/core/services/list_categories"
	createcategory "newsdesk/internal/http/handlers/categories/create_category"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/handlers/response"
	"newsdesk/internal/http/view"
)

const (
	LIST_PATH = "/admin/news/category"
	PAGE      = "category_form"
	TITLE     = "category.change.title"
)

type Handler struct {
	view        *view.Renderer
	service     services.Service[changecategory.Input, changecategory.Result]
	listService services.Service[listcategories.Input, listcategories.Result]
}

func New(
	view *view.Renderer,
	service services.Service[changecategory.Input, changecategory.Result],
	listService services.Service[listcategories.Input, listcategories.Result],
) *Handler {
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if listService == nil {
		panic(e.NewNilArgumentError("listService"))
	}
	return &Handler{view: view, service: service, listService: listService}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID, ok := response.ParseID(r)
	if !ok {
		http.NotFound(rw, r)
		return
	}
	id := news.CategoryID(rawID)
	notFound := flash.Danger("category.change.not_found", fmt.Sprint(id))

	if r.Method != http.MethodPost {
		result, err := h.listService.Run(r.Context(), listcategories.Input{})
		if response.RenderAuthError(h.view, rw, r, err) {
			return
		}
		if err != nil {
			h.view.RenderInternalError(rw, r)
			return
		}
		for _, category := range result.Categories {
			if category.ID != id {
				continue
			}
			form := url.Values{
				"name":        {category.Name},
				"description": {category.Description.Value},
				"ico":         {category.Ico.Value},
			}
			h.render(rw, r, http.StatusOK, id, form, nil)
			return
		}
		flash.Redirect(rw, r, LIST_PATH, notFound)
		return
	}
	if !response.ParseForm(rw, r) {
		return
	}

	input := createcategory.Input{}
	input.FromForm(r.PostForm)
	if err := input.Validate(); err != nil {
		h.render(rw, r, http.StatusUnprocessableEntity, id, r.PostForm, view.FormErrors(err))
		return
	}

	_, err := h.service.Run(r.Context(), changecategory.Input{
		ID:          id,
		Name:        input.Name,
		Description: news.OptionalText(input.Description),
		Ico:         news.OptionalText(input.Ico),
	})
	if errors.Is(err, news.ErrCategoryDoesNotExist) {
		flash.Redirect(rw, r, LIST_PATH, notFound)
		return
	}
	if errors.Is(err, news.ErrCategoryAlreadyExists) {
		flash.Redirect(rw, r, r.URL.Path, flash.Danger("category.change.error"))
		return
	}
	if response.RenderAuthError(h.view, rw, r, err) {
		return
	}
	if err != nil {
		h.view.RenderInternalError(rw, r)
		return
	}

	flash.Redirect(rw, r, LIST_PATH, flash.Success("category.change.success", fmt.Sprint(id)))
}

func (h *Handler) render(
	rw http.ResponseWriter,
	r *http.Request,
	status int,
	id news.CategoryID,
	form url.Values,
	errs map[string]string,
) {
	h.view.Render(rw, r, status, PAGE, view.Page{
		Title:     TITLE,
		TitleArgs: []string{fmt.Sprint(id)},
		Form:      form,
		Errors:    errs,
	})
}
