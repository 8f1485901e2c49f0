package createcategory

import (
	"context"
	"testing"

	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/news"

	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	// Setup ---
	repo := news.NewFakeCategoryRepository()
	service := New(logging.NewFakeLogger(), repo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Name:        "Updates",
		Description: news.OptionalText("Game updates"),
		Ico:         news.OptionalText(""),
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "Updates", result.Category.Name)
	require.True(t, result.Category.Description.IsPresent)
	require.False(t, result.Category.Ico.IsPresent)
	require.Len(t, repo.Categories, 1)
}

func TestCreateCategoryWithTakenName(t *testing.T) {
	// Setup ---
	repo := news.NewFakeCategoryRepository()
	service := New(logging.NewFakeLogger(), repo)
	_, err := service.Run(context.Background(), Input{Name: "Updates"})
	require.NoError(t, err)

	// Exercise ---
	_, err = service.Run(context.Background(), Input{Name: "Updates"})

	// Verify ---
	require.ErrorIs(t, err, news.ErrCategoryAlreadyExists)
	require.Len(t, repo.Categories, 1)
}
