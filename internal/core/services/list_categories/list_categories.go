package listcategories

import (
	"context"
	"errors"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	"newsdesk/internal/core/services/auth"
)

type Input struct {
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Categories []news.Category
}

type service struct {
	log                logging.Logger
	categoryRepository news.CategoryRepository
}

func New(log logging.Logger, categoryRepository news.CategoryRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if categoryRepository == nil {
		panic(e.NewNilArgumentError("categoryRepository"))
	}
	return &service{log: log, categoryRepository: categoryRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	categories, err := s.categoryRepository.List(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not list categories.", logging.Entry("err", err))
		return result, err
	}
	return Result{Categories: categories}, nil
}
