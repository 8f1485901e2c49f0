package changenews

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/services"
	changenews "newsdesk/internal/core/services/change_news"
	getnews "newsdesk/internal/core/services/get_news"
	listcategories "newsdesk/internal/core/services/list_categories"
	"newsdesk/internal/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	service           *services.FakeService[changenews.Input, changenews.Result]
	getService        *services.FakeService[getnews.Input, getnews.Result]
	categoriesService *services.FakeService[listcategories.Input, listcategories.Result]
	router            chi.Router
}

func (suite *testSuite) SetupTest() {
	suite.service = services.NewFakeService[changenews.Input, changenews.Result]()
	suite.getService = services.NewFakeService[getnews.Input, getnews.Result]()
	suite.getService.Result = getnews.Result{News: news.News{ID: 3, Title: "Old title", Text: "Old text", CategoryID: 2}}
	suite.categoriesService = services.NewFakeService[listcategories.Input, listcategories.Result]()
	suite.categoriesService.Result = listcategories.Result{Categories: []news.Category{
		{ID: 1, Name: "Releases"},
		{ID: 2, Name: "Security"},
	}}
	suite.router = chi.NewRouter()
	suite.router.Handle(
		"/admin/news/change/{id}",
		New(view.NewTestRenderer(suite.T()), suite.service, suite.getService, suite.categoriesService),
	)
}

func TestChangeNewsHandler(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestGetPrefillsForm() {
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/news/change/3", nil))

	assert := suite.Require()
	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal([]getnews.Input{{ID: 3}}, suite.getService.Inputs)
	body := rec.Body.String()
	assert.Contains(body, "<h1>News #3</h1>")
	assert.Contains(body, `value="Old title"`)
	assert.Contains(body, `<option value="2" selected>Security</option>`)
}

func (suite *testSuite) TestGetMissingNews() {
	suite.getService.Err = news.ErrNewsDoesNotExist

	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/news/change/3", nil))

	suite.Require().Equal(http.StatusSeeOther, rec.Code)
	suite.Require().Equal(LIST_PATH, rec.Header().Get("Location"))
}

func (suite *testSuite) TestChange() {
	form := url.Values{"title": {"New title"}, "text": {"New text"}, "category": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/news/change/3", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	suite.router.ServeHTTP(rec, req)

	assert := suite.Require()
	assert.Equal(http.StatusSeeOther, rec.Code)
	assert.Equal(LIST_PATH, rec.Header().Get("Location"))
	assert.Equal([]changenews.Input{{ID: 3, Title: "New title", Text: "New text", CategoryID: 1}}, suite.service.Inputs)
	assert.Empty(suite.getService.Inputs)
}
