package services

import (
	"newsdesk/internal/app/deps"
	drl "newsdesk/internal/core/domain/rate_limiter"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	admincreateuser "newsdesk/internal/core/services/admin_create_user"
	adminchangeuser "newsdesk/internal/core/services/admin_change_user"
	admindeleteuser "newsdesk/internal/core/services/admin_delete_user"
	"newsdesk/internal/core/services/auth"
	changecategory "newsdesk/internal/core/services/change_category"
	changenews "newsdesk/internal/core/services/change_news"
	changeprofilemail "newsdesk/internal/core/services/change_profile_mail"
	changeprofilepassword "newsdesk/internal/core/services/change_profile_password"
	completepasswordreset "newsdesk/internal/core/services/complete_password_reset"
	createcategory "newsdesk/internal/core/services/create_category"
	createnews "newsdesk/internal/core/services/create_news"
	deletecategory "newsdesk/internal/core/services/delete_category"
	deletenews "newsdesk/internal/core/services/delete_news"
	getnews "newsdesk/internal/core/services/get_news"
	getuserbysessiontoken "newsdesk/internal/core/services/get_user_by_session_token"
	listcategories "newsdesk/internal/core/services/list_categories"
	listnews "newsdesk/internal/core/services/list_news"
	login "newsdesk/internal/core/services/log_in"
	logout "newsdesk/internal/core/services/log_out"
	ratelimiting "newsdesk/internal/core/services/rate_limiting"
	registeruser "newsdesk/internal/core/services/register_user"
	requestpasswordreset "newsdesk/internal/core/services/request_password_reset"
)

type Services struct {
	RegisterUser          services.Service[registeruser.Input, registeruser.Result]
	LogIn                 services.Service[login.Input, login.Result]
	LogOut                services.Service[logout.Input, logout.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	RequestPasswordReset  services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	CompletePasswordReset services.Service[completepasswordreset.Input, completepasswordreset.Result]
	ChangeProfilePassword services.Service[changeprofilepassword.Input, changeprofilepassword.Result]
	ChangeProfileMail     services.Service[changeprofilemail.Input, changeprofilemail.Result]

	ListCategories services.Service[listcategories.Input, listcategories.Result]
	CreateCategory services.Service[createcategory.Input, createcategory.Result]
	ChangeCategory services.Service[changecategory.Input, changecategory.Result]
	DeleteCategory services.Service[deletecategory.Input, deletecategory.Result]

	ListNews   services.Service[listnews.Input, listnews.Result]
	GetNews    services.Service[getnews.Input, getnews.Result]
	CreateNews services.Service[createnews.Input, createnews.Result]
	ChangeNews services.Service[changenews.Input, changenews.Result]
	DeleteNews services.Service[deletenews.Input, deletenews.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	resetLimit := drl.PerHour(deps.Config.PasswordResetRateLimit)

	s.RegisterUser = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.PerHour(deps.Config.LogInRateLimit),
		registeruser.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.Now,
		),
	)
	s.LogIn = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.PerHour(deps.Config.LogInRateLimit),
		login.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = auth.WithAuthentication(
		deps.SessionRepository,
		getuserbysessiontoken.New(),
	)
	s.RequestPasswordReset = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		resetLimit,
		requestpasswordreset.New(
			deps.Logger,
			deps.UserRepository,
			deps.ValidationCodeGenerator,
			deps.PasswordResetNotifier,
		),
	)
	s.CompletePasswordReset = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		resetLimit,
		completepasswordreset.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordGenerator,
			deps.PasswordHasher,
			deps.PasswordResetNotifier,
		),
	)
	s.ChangeProfilePassword = auth.WithAuthentication(
		deps.SessionRepository,
		changeprofilepassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
		),
	)
	s.ChangeProfileMail = auth.WithAuthentication(
		deps.SessionRepository,
		changeprofilemail.New(
			deps.Logger,
			deps.UserRepository,
		),
	)

	s.ListCategories = auth.WithAuthentication(
		deps.SessionRepository,
		listcategories.New(deps.Logger, deps.CategoryRepository),
		user.RoleAdmin,
	)
	s.CreateCategory = auth.WithAuthentication(
		deps.SessionRepository,
		createcategory.New(deps.Logger, deps.CategoryRepository),
		user.RoleAdmin,
	)
	s.ChangeCategory = auth.WithAuthentication(
		deps.SessionRepository,
		changecategory.New(deps.Logger, deps.CategoryRepository),
		user.RoleAdmin,
	)
	s.DeleteCategory = auth.WithAuthentication(
		deps.SessionRepository,
		deletecategory.New(deps.Logger, deps.CategoryRepository, deps.NewsRepository),
		user.RoleAdmin,
	)

	s.ListNews = auth.WithAuthentication(
		deps.SessionRepository,
		listnews.New(deps.Logger, deps.NewsRepository),
		user.RoleAdmin,
	)
	s.GetNews = auth.WithAuthentication(
		deps.SessionRepository,
		getnews.New(deps.Logger, deps.NewsRepository),
		user.RoleAdmin,
	)
	s.CreateNews = auth.WithAuthentication(
		deps.SessionRepository,
		createnews.NewWithPublishing(
			deps.Logger,
			deps.NewsPublisher,
			createnews.New(deps.Logger, deps.CategoryRepository, deps.NewsRepository, deps.Now),
		),
		user.RoleAdmin,
	)
	s.ChangeNews = auth.WithAuthentication(
		deps.SessionRepository,
		changenews.New(deps.Logger, deps.CategoryRepository, deps.NewsRepository),
		user.RoleAdmin,
	)
	s.DeleteNews = auth.WithAuthentication(
		deps.SessionRepository,
		deletenews.New(deps.Logger, deps.NewsRepository),
		user.RoleAdmin,
	)

	return s
}

// AdminServices are run by the admin CLI, outside of any session.
type AdminServices struct {
	CreateUser services.Service[admincreateuser.Input, admincreateuser.Result]
	ChangeUser services.Service[adminchangeuser.Input, adminchangeuser.Result]
	DeleteUser services.Service[admindeleteuser.Input, admindeleteuser.Result]
}

func InitAdminServices(deps *deps.Deps) *AdminServices {
	return &AdminServices{
		CreateUser: admincreateuser.New(deps.Logger, deps.UserRepository, deps.PasswordHasher, deps.Now),
		ChangeUser: adminchangeuser.New(deps.Logger, deps.UserRepository, deps.PasswordHasher),
		DeleteUser: admindeleteuser.New(deps.Logger, deps.UserRepository),
	}
}
