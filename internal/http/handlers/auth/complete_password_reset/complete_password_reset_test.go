package completepasswordreset

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	completepasswordreset "newsdesk/internal/core/services/complete_password_reset"
	"newsdesk/internal/http/handlers/auth"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/view"

	"github.com/stretchr/testify/assert"
)

func TestCompletePasswordResetHandler(t *testing.T) {
	cases := []struct {
		id               string
		form             url.Values
		serviceErr       error
		expectedStatus   int
		expectedLocation string
		expectedFlash    flash.Message
	}{
		{
			id:             "missing-code",
			form:           url.Values{"mail": {"bob@x.com"}},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:               "success",
			form:             url.Values{"mail": {"bob@x.com"}, "code": {"0a1b2c3d4e5f6071"}},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: auth.LOG_IN_PATH,
			expectedFlash:    flash.Success("reset.password.success"),
		},
		{
			id:               "wrong-code",
			form:             url.Values{"mail": {"bob@x.com"}, "code": {"ffffffffffffffff"}},
			serviceErr:       user.ErrUserDoesNotExist,
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: PATH,
			expectedFlash:    flash.Danger("reset.password.failure"),
		},
		{
			id:               "send-failure",
			form:             url.Values{"mail": {"bob@x.com"}, "code": {"0a1b2c3d4e5f6071"}},
			serviceErr:       user.ErrNotificationNotSent,
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: PATH,
			expectedFlash:    flash.Danger("reset.password.critical"),
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			service := services.NewFakeService[completepasswordreset.Input, completepasswordreset.Result]()
			service.Err = testcase.serviceErr
			handler := New(view.NewTestRenderer(t), service)

			req := httptest.NewRequest(http.MethodPost, PATH, strings.NewReader(testcase.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, testcase.expectedStatus, rec.Code)
			assert.Equal(t, testcase.expectedLocation, rec.Header().Get("Location"))
			if testcase.expectedStatus != http.StatusSeeOther {
				assert.Empty(t, service.Inputs)
				return
			}
			assert.Equal(t, []completepasswordreset.Input{{
				Mail: "bob@x.com",
				Code: user.ValidationCode(testcase.form.Get("code")),
			}}, service.Inputs)

			next := httptest.NewRequest(http.MethodGet, testcase.expectedLocation, nil)
			for _, cookie := range rec.Result().Cookies() {
				next.AddCookie(cookie)
			}
			m, ok := flash.Pop(httptest.NewRecorder(), next)
			assert.True(t, ok)
			assert.Equal(t, testcase.expectedFlash.Kind, m.Kind)
			assert.Equal(t, testcase.expectedFlash.Key, m.Key)
		})
	}
}
