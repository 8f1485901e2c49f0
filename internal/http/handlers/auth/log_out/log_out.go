package logout

import (
	"errors"
	"net/http"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	logout "newsdesk/internal/core/services/log_out"
	"newsdesk/internal/http/handlers/auth"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/view"
)

type Handler struct {
	view          *view.Renderer
	service       services.Service[logout.Input, logout.Result]
	secureCookies bool
}

func New(
	view *view.Renderer,
	service services.Service[logout.Input, logout.Result],
	secureCookies bool,
) *Handler {
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{view: view, service: service, secureCookies: secureCookies}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		http.Redirect(rw, r, auth.LOG_IN_PATH, http.StatusSeeOther)
		return
	}
	_, err := h.service.Run(r.Context(), logout.Input{Token: token})
	if err != nil && !errors.Is(err, user.ErrSessionDoesNotExist) {
		h.view.RenderInternalError(rw, r)
		return
	}

	auth.ClearSessionCookie(rw, h.secureCookies)
	flash.Redirect(rw, r, auth.LOG_IN_PATH, flash.Success("logout.success"))
}
