package changecategory

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	c "newsdesk/internal/core/domain/common"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/services"
	changecategory "newsdesk/internal/core/services/change_category"
	listcategories "newsdesk/internal/core/services/list_categories"
	"newsdesk/internal/http/handlers/flash"
	"newsdesk/internal/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	service     *services.FakeService[changecategory.Input, changecategory.Result]
	listService *services.FakeService[listcategories.Input, listcategories.Result]
	router      chi.Router
}

func (suite *testSuite) SetupTest() {
	suite.service = services.NewFakeService[changecategory.Input, changecategory.Result]()
	suite.listService = services.NewFakeService[listcategories.Input, listcategories.Result]()
	suite.listService.Result = listcategories.Result{Categories: []news.Category{
		{ID: 3, Name: "Sport", Description: c.NewOptional("All sports", true)},
	}}
	suite.router = chi.NewRouter()
	suite.router.Handle(
		"/admin/news/category/change/{id}",
		New(view.NewTestRenderer(suite.T()), suite.service, suite.listService),
	)
}

func TestChangeCategoryHandler(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *testSuite) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return suite.serve(req)
}

func (suite *testSuite) popFlash(rec *httptest.ResponseRecorder) flash.Message {
	next := httptest.NewRequest(http.MethodGet, LIST_PATH, nil)
	for _, cookie := range rec.Result().Cookies() {
		next.AddCookie(cookie)
	}
	m, ok := flash.Pop(httptest.NewRecorder(), next)
	suite.Require().True(ok)
	return m
}

func (suite *testSuite) TestGetPrefillsForm() {
	assert := suite.Require()

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/admin/news/category/change/3", nil))

	assert.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(body, "<h1>Category #3</h1>")
	assert.Contains(body, `value="Sport"`)
	assert.Contains(body, `value="All sports"`)
}

func (suite *testSuite) TestGetUnknownCategory() {
	assert := suite.Require()

	rec := suite.serve(httptest.NewRequest(http.MethodGet, "/admin/news/category/change/9", nil))

	assert.Equal(http.StatusSeeOther, rec.Code)
	assert.Equal(LIST_PATH, rec.Header().Get("Location"))
	assert.Equal(
		flash.Message{Kind: flash.KindDanger, Key: "category.change.not_found", Args: []string{"9"}},
		suite.popFlash(rec),
	)
}

func (suite *testSuite) TestChange() {
	assert := suite.Require()

	// Exercise ---
	rec := suite.post("/admin/news/category/change/3", url.Values{"name": {"Sports"}, "ico": {"fa-ball"}})

	// Verify ---
	assert.Equal(http.StatusSeeOther, rec.Code)
	assert.Equal(LIST_PATH, rec.Header().Get("Location"))
	assert.Equal([]changecategory.Input{{
		ID:          3,
		Name:        "Sports",
		Description: c.NewOptional("", false),
		Ico:         c.NewOptional("fa-ball", true),
	}}, suite.service.Inputs)
	assert.Equal(
		flash.Message{Kind: flash.KindSuccess, Key: "category.change.success", Args: []string{"3"}},
		suite.popFlash(rec),
	)
}

func (suite *testSuite) TestDuplicateName() {
	assert := suite.Require()

	suite.service.Err = news.ErrCategoryAlreadyExists

	rec := suite.post("/admin/news/category/change/3", url.Values{"name": {"Politics"}})

	assert.Equal(http.StatusSeeOther, rec.Code)
	assert.Equal("/admin/news/category/change/3", rec.Header().Get("Location"))
	assert.Equal(flash.Message{Kind: flash.KindDanger, Key: "category.change.error"}, suite.popFlash(rec))
}

func (suite *testSuite) TestInvalidForm() {
	assert := suite.Require()

	rec := suite.post("/admin/news/category/change/3", url.Values{"name": {""}})

	assert.Equal(http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(suite.service.Inputs)
	assert.Contains(rec.Body.String(), "The form contains errors.")
}
