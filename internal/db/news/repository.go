package news

import (
	"context"
	"errors"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/news"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormNewsRepository struct {
	db *gorm.DB
}

func NewGormNewsRepository(db *gorm.DB) *GormNewsRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &GormNewsRepository{db: db}
}

func (r *GormNewsRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Category").Preload("Author")
}

func (r *GormNewsRepository) List(ctx context.Context, input news.ListInput) ([]news.News, error) {
	query := r.preloaded(ctx).Order("created_at DESC").Order("id DESC")
	if input.CategoryID.IsPresent {
		query = query.Where("category_id = ?", int64(input.CategoryID.Value))
	}
	if input.Limit.IsPresent {
		query = query.Limit(input.Limit.Value)
	}

	var records []newsRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	items := make([]news.News, 0, len(records))
	for _, rec := range records {
		items = append(items, decodeNews(rec))
	}
	return items, nil
}

func (r *GormNewsRepository) GetByID(ctx context.Context, id news.ID) (news.News, error) {
	var rec newsRecord
	err := r.preloaded(ctx).First(&rec, int64(id)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return news.News{}, news.ErrNewsDoesNotExist
	}
	if err != nil {
		return news.News{}, err
	}
	return decodeNews(rec), nil
}

func (r *GormNewsRepository) Create(ctx context.Context, input news.CreateInput) (news.News, error) {
	rec := newsRecord{
		Title:      input.Title,
		Text:       input.Text,
		CategoryID: int64(input.CategoryID),
		CreatedAt:  input.CreatedAt,
	}
	if input.AuthorID.IsPresent {
		authorID := int64(input.AuthorID.Value)
		rec.AuthorID = &authorID
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return news.News{}, news.ErrCategoryDoesNotExist
	}
	if err != nil {
		return news.News{}, err
	}
	return r.GetByID(ctx, news.ID(rec.ID))
}

func (r *GormNewsRepository) Update(ctx context.Context, input news.UpdateInput) (news.News, error) {
	result := r.db.WithContext(ctx).
		Model(&newsRecord{ID: int64(input.ID)}).
		Omit(clause.Associations).
		Select("title", "text", "category_id").
		Updates(&newsRecord{
			Title:      input.Title,
			Text:       input.Text,
			CategoryID: int64(input.CategoryID),
		})
	if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
		return news.News{}, news.ErrCategoryDoesNotExist
	}
	if result.Error != nil {
		return news.News{}, result.Error
	}
	if result.RowsAffected == 0 {
		return news.News{}, news.ErrNewsDoesNotExist
	}
	return r.GetByID(ctx, input.ID)
}

func (r *GormNewsRepository) Delete(ctx context.Context, id news.ID) error {
	result := r.db.WithContext(ctx).Delete(&newsRecord{}, int64(id))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return news.ErrNewsDoesNotExist
	}
	return nil
}

func (r *GormNewsRepository) CountByCategory(ctx context.Context, categoryID news.CategoryID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&newsRecord{}).
		Where("category_id = ?", int64(categoryID)).
		Count(&count).Error
	return count, err
}
