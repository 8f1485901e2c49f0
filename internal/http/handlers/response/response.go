package response

import (
	"errors"
	"net/http"
	"strconv"

	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/http/handlers/auth"
	"newsdesk/internal/http/view"

	"github.com/go-chi/chi/v5"
)

const ID_PARAM = "id"

// ParseID reads the positive numeric {id} route parameter.
func ParseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, ID_PARAM), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// RenderAuthError answers the errors of authenticated services.
// It reports false when err is not an authentication error.
func RenderAuthError(v *view.Renderer, rw http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case errors.Is(err, user.ErrUserDoesNotExist):
		http.Redirect(rw, r, auth.LOG_IN_PATH, http.StatusSeeOther)
	case errors.Is(err, user.ErrPermissionDenied):
		v.RenderForbidden(rw, r)
	default:
		return false
	}
	return true
}

// ParseForm fills the request form. Oversized bodies are rejected.
func ParseForm(rw http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(rw, r.Body, 1<<20)
	if err := r.ParseForm(); err != nil {
		http.Error(rw, "invalid request data", http.StatusBadRequest)
		return false
	}
	return true
}
