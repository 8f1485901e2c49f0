package deletecategory

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
	ID   news.CategoryID
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

type service struct {
	log                logging.Logger
	categoryRepository news.CategoryRepository
	newsRepository     news.NewsRepository
}

func New(
	log logging.Logger,
	categoryRepository news.CategoryRepository,
	newsRepository news.NewsRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if categoryRepository == nil {
		panic(e.NewNilArgumentError("categoryRepository"))
	}
	if newsRepository == nil {
		panic(e.NewNilArgumentError("newsRepository"))
	}
	return &service{log: log, categoryRepository: categoryRepository, newsRepository: newsRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if _, err := s.categoryRepository.GetByID(ctx, input.ID); err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, news.ErrCategoryDoesNotExist) {
			s.log.Error(ctx, "Could not get category.", logging.Entry("categoryId", input.ID), logging.Entry("err", err))
		}
		return result, err
	}

	count, err := s.newsRepository.CountByCategory(ctx, input.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not count category news.", logging.Entry("categoryId", input.ID), logging.Entry("err", err))
		return result, err
	}
	if count > 0 {
		return result, news.ErrCategoryInUse
	}

	err = s.categoryRepository.Delete(ctx, input.ID)
	if errors.Is(err, context.Canceled) || errors.Is(err, news.ErrCategoryDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not delete category.", logging.Entry("categoryId", input.ID), logging.Entry("err", err))
		return result, err
	}

	s.log.Info(
		ctx,
		"Category has been deleted.",
		logging.Entry("categoryId", input.ID),
		logging.Entry("userId", input.User.ID),
	)
	return result, nil
}
