package app

import (
	"fmt"
	"net/http"

	"newsdesk/internal/app/deps"
	"newsdesk/internal/app/services"
	"newsdesk/internal/http/handlers/auth"
	completepasswordreset "newsdesk/internal/http/handlers/auth/complete_password_reset"
	login "newsdesk/internal/http/handlers/auth/log_in"
	logout "newsdesk/internal/http/handlers/auth/log_out"
	"newsdesk/internal/http/handlers/auth/profile"
	"newsdesk/internal/http/handlers/auth/register"
	requestpasswordreset "newsdesk/internal/http/handlers/auth/request_password_reset"
	changecategory "newsdesk/internal/http/handlers/categories/change_category"
	createcategory "newsdesk/internal/http/handlers/categories/create_category"
	deletecategory "newsdesk/internal/http/handlers/categories/delete_category"
	listcategories "newsdesk/internal/http/handlers/categories/list_categories"
	"newsdesk/internal/http/handlers/home"
	changenews "newsdesk/internal/http/handlers/news/change_news"
	createnews "newsdesk/internal/http/handlers/news/create_news"
	deletenews "newsdesk/internal/http/handlers/news/delete_news"
	"newsdesk/internal/http/handlers/news/events"
	listnews "newsdesk/internal/http/handlers/news/list_news"
	"newsdesk/internal/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) (*http.Server, error) {
	v, err := view.New(deps.Logger, deps.Translator)
	if err != nil {
		return nil, err
	}
	secure := deps.Config.SecureCookies

	categoryRouter := chi.NewRouter()
	categoryRouter.Method(http.MethodGet, "/", listcategories.New(v, s.ListCategories))
	categoryRouter.Handle("/create", createcategory.New(v, s.CreateCategory))
	categoryRouter.Handle("/change/{id:[0-9]+}", changecategory.New(v, s.ChangeCategory, s.ListCategories))
	categoryRouter.Method(http.MethodPost, "/delete/{id:[0-9]+}", deletecategory.New(v, s.DeleteCategory))

	newsRouter := chi.NewRouter()
	newsRouter.Use(auth.RequireUser)
	newsRouter.Method(http.MethodGet, "/", listnews.New(v, s.ListNews, s.ListCategories))
	newsRouter.Handle("/create", createnews.New(v, s.CreateNews, s.ListCategories))
	newsRouter.Handle("/change/{id:[0-9]+}", changenews.New(v, s.ChangeNews, s.GetNews, s.ListCategories))
	newsRouter.Method(http.MethodPost, "/delete/{id:[0-9]+}", deletenews.New(v, s.DeleteNews))
	newsRouter.Mount("/category", categoryRouter)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(deps.Metrics.Middleware)
	router.Use(v.Language)
	router.Use(auth.SetAuthTokenToContext)
	router.Use(auth.LoadUser(deps.Logger, s.GetUserBySessionToken))

	router.Method(http.MethodGet, "/", home.New(v))
	router.Handle(auth.LOG_IN_PATH, login.New(v, s.LogIn, secure))
	router.Method(http.MethodPost, "/logout", logout.New(v, s.LogOut, secure))
	router.Handle(register.PATH, register.New(v, s.RegisterUser))
	router.Handle(requestpasswordreset.PATH, requestpasswordreset.New(v, s.RequestPasswordReset))
	router.Handle(completepasswordreset.PATH, completepasswordreset.New(v, s.CompletePasswordReset))
	router.With(auth.RequireUser).Handle(profile.PATH, profile.New(v, s.ChangeProfilePassword, s.ChangeProfileMail))
	router.Mount("/admin/news", newsRouter)
	router.Method(http.MethodGet, events.PATH, events.New(deps.Logger, deps.SseServer))
	router.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	// No WriteTimeout: the news event stream is long lived.
	return &http.Server{
		Handler: router,
		Addr:    address,
	}, nil
}
