package register

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	registeruser "newsdesk/internal/core/services/register_user"
	"newsdesk/internal/http/handlers/auth"
	"newsdesk/internal/http/view"

	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	valid := url.Values{
		"username": {"bob"},
		"mail":     {"Bob@X.com"},
		"password": {"secret1"},
		"repeat":   {"secret1"},
	}
	cases := []struct {
		id               string
		form             url.Values
		serviceErr       error
		expectedStatus   int
		expectedLocation string
		expectCall       bool
	}{
		{
			id:               "success",
			form:             valid,
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: auth.LOG_IN_PATH,
			expectCall:       true,
		},
		{
			id:               "username-taken",
			form:             valid,
			serviceErr:       user.ErrUserAlreadyExists,
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: PATH,
			expectCall:       true,
		},
		{
			id:               "mail-taken",
			form:             valid,
			serviceErr:       &user.DuplicateKeyError{Key: "mail"},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: PATH,
			expectCall:       true,
		},
		{
			id: "short-password",
			form: url.Values{
				"username": {"bob"},
				"mail":     {"bob@x.com"},
				"password": {"12345"},
				"repeat":   {"12345"},
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id: "repeat-mismatch",
			form: url.Values{
				"username": {"bob"},
				"mail":     {"bob@x.com"},
				"password": {"secret1"},
				"repeat":   {"secret2"},
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			service := services.NewFakeService[registeruser.Input, registeruser.Result]()
			service.Err = testcase.serviceErr
			handler := New(view.NewTestRenderer(t), service)

			req := httptest.NewRequest(http.MethodPost, PATH, strings.NewReader(testcase.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, testcase.expectedStatus, rec.Code)
			assert.Equal(t, testcase.expectedLocation, rec.Header().Get("Location"))
			if testcase.expectCall {
				assert.Equal(t, []registeruser.Input{{Username: "bob", Password: "secret1", Mail: "bob@x.com"}}, service.Inputs)
			} else {
				assert.Empty(t, service.Inputs)
			}
		})
	}
}
