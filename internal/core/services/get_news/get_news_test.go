package getnews

import (
	"context"
	"testing"
	"time"

	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/news"

	"github.com/stretchr/testify/require"
)

func TestGetNews(t *testing.T) {
	// Setup ---
	ctx := context.Background()
	categories := news.NewFakeCategoryRepository()
	repo := news.NewFakeNewsRepository(categories)
	category, err := categories.Create(ctx, news.CreateCategoryInput{Name: "Updates"})
	require.NoError(t, err)
	item, err := repo.Create(ctx, news.CreateInput{
		Title:      "Title",
		Text:       "Text",
		CategoryID: category.ID,
		CreatedAt:  time.Now(),
	})
	require.NoError(t, err)
	logger := logging.NewFakeLogger()
	service := New(logger, repo)

	// Exercise ---
	result, err := service.Run(ctx, Input{ID: item.ID})
	_, missing := service.Run(ctx, Input{ID: item.ID + 1})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "Title", result.News.Title)
	require.Equal(t, category.ID, result.News.CategoryID)
	require.ErrorIs(t, missing, news.ErrNewsDoesNotExist)
	require.Equal(t, 0, logger.Count(logging.ERROR))
}

func TestGetNewsRepositoryFailure(t *testing.T) {
	logger := logging.NewFakeLogger()
	repo := news.NewFakeNewsRepository(news.NewFakeCategoryRepository())
	repo.ReturnError = true
	service := New(logger, repo)

	_, err := service.Run(context.Background(), Input{ID: 1})

	require.Error(t, err)
	require.Equal(t, 1, logger.Count(logging.ERROR))
}
