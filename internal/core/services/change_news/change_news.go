package changenews

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
	ID         news.ID
	Title      string
	Text       string
	CategoryID news.CategoryID
	User       user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	News news.News
}

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
	if _, err := s.newsRepository.GetByID(ctx, input.ID); err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, news.ErrNewsDoesNotExist) {
			s.log.Error(ctx, "Could not get news.", logging.Entry("newsId", input.ID), logging.Entry("err", err))
		}
		return result, err
	}

	if _, err := s.categoryRepository.GetByID(ctx, input.CategoryID); err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, news.ErrCategoryDoesNotExist) {
			s.log.Error(ctx, "Could not get category.", logging.Entry("categoryId", input.CategoryID), logging.Entry("err", err))
		}
		return result, err
	}

	n, err := s.newsRepository.Update(ctx, news.UpdateInput{
		ID:         input.ID,
		Title:      input.Title,
		Text:       input.Text,
		CategoryID: input.CategoryID,
	})
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, news.ErrNewsDoesNotExist) ||
		errors.Is(err, news.ErrCategoryDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not update news.", logging.Entry("newsId", input.ID), logging.Entry("err", err))
		return result, err
	}

	s.log.Info(ctx, "News has been changed.", logging.Entry("newsId", n.ID), logging.Entry("userId", input.User.ID))
	return Result{News: n}, nil
}
