package logout

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	logout "newsdesk/internal/core/services/log_out"
	"newsdesk/internal/http/handlers/auth"
	"newsdesk/internal/http/view"

	"github.com/stretchr/testify/assert"
)

func TestLogOutHandler(t *testing.T) {
	cases := []struct {
		id             string
		token          string
		serviceErr     error
		expectedInputs []logout.Input
		expectedStatus int
	}{
		{
			id:             "no-cookie",
			expectedStatus: http.StatusSeeOther,
		},
		{
			id:             "success",
			token:          "abc",
			expectedInputs: []logout.Input{{Token: "abc"}},
			expectedStatus: http.StatusSeeOther,
		},
		{
			id:             "stale-session",
			token:          "abc",
			serviceErr:     user.ErrSessionDoesNotExist,
			expectedInputs: []logout.Input{{Token: "abc"}},
			expectedStatus: http.StatusSeeOther,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			service := services.NewFakeService[logout.Input, logout.Result]()
			service.Err = testcase.serviceErr
			handler := New(view.NewTestRenderer(t), service, false)

			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			if testcase.token != "" {
				req.AddCookie(&http.Cookie{Name: auth.SESSION_COOKIE_NAME, Value: testcase.token})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, testcase.expectedStatus, rec.Code)
			assert.Equal(t, auth.LOG_IN_PATH, rec.Header().Get("Location"))
			assert.Equal(t, testcase.expectedInputs, service.Inputs)
		})
	}
}
