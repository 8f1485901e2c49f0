package createnews

import (
	"context"
	"errors"
	"time"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	"newsdesk/internal/core/services/auth"
)

type Input struct {
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
	now                func() time.Time
}

func New(
	log logging.Logger,
	categoryRepository news.CategoryRepository,
	newsRepository news.NewsRepository,
	now func() time.Time,
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
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		categoryRepository: categoryRepository,
		newsRepository:     newsRepository,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if _, err := s.categoryRepository.GetByID(ctx, input.CategoryID); err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, news.ErrCategoryDoesNotExist) {
			s.log.Error(ctx, "Could not get category.", logging.Entry("categoryId", input.CategoryID), logging.Entry("err", err))
		}
		return result, err
	}

	n, err := s.newsRepository.Create(ctx, news.CreateInput{
		Title:      input.Title,
		Text:       input.Text,
		AuthorID:   c.NewOptional(input.User.ID, input.User.ID != 0),
		CategoryID: input.CategoryID,
		CreatedAt:  s.now(),
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, news.ErrCategoryDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not create news.", logging.Entry("err", err))
		return result, err
	}
	n.AuthorName = c.NewOptional(input.User.Username, input.User.Username != "")

	s.log.Info(ctx, "News has been created.", logging.Entry("newsId", n.ID), logging.Entry("userId", input.User.ID))
	return Result{News: n}, nil
}
