package news

import (
	"context"
	"errors"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/news"

	"gorm.io/gorm"
)

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) List(ctx context.Context) ([]news.Category, error) {
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, err
	}
	categories := make([]news.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, decodeCategory(rec))
	}
	return categories, nil
}

func (r *GormCategoryRepository) GetByID(ctx context.Context, id news.CategoryID) (news.Category, error) {
	return r.first(ctx, "id = ?", int64(id))
}

func (r *GormCategoryRepository) GetByName(ctx context.Context, name string) (news.Category, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *GormCategoryRepository) Create(ctx context.Context, input news.CreateCategoryInput) (news.Category, error) {
	rec := categoryRecord{
		Name:        input.Name,
		Description: encodeOptionalString(input.Description),
		Ico:         encodeOptionalString(input.Ico),
	}
	err := r.db.WithContext(ctx).Create(&rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return news.Category{}, news.ErrCategoryAlreadyExists
	}
	if err != nil {
		return news.Category{}, err
	}
	return decodeCategory(rec), nil
}

func (r *GormCategoryRepository) Update(ctx context.Context, category news.Category) (news.Category, error) {
	rec := categoryRecord{
		ID:          int64(category.ID),
		Name:        category.Name,
		Description: encodeOptionalString(category.Description),
		Ico:         encodeOptionalString(category.Ico),
	}
	result := r.db.WithContext(ctx).
		Model(&categoryRecord{ID: rec.ID}).
		Select("name", "description", "ico").
		Updates(&rec)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return news.Category{}, news.ErrCategoryAlreadyExists
	}
	if result.Error != nil {
		return news.Category{}, result.Error
	}
	if result.RowsAffected == 0 {
		return news.Category{}, news.ErrCategoryDoesNotExist
	}
	return decodeCategory(rec), nil
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id news.CategoryID) error {
	result := r.db.WithContext(ctx).Delete(&categoryRecord{}, int64(id))
	if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
		return news.ErrCategoryInUse
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return news.ErrCategoryDoesNotExist
	}
	return nil
}

func (r *GormCategoryRepository) first(ctx context.Context, query string, args ...interface{}) (news.Category, error) {
	var rec categoryRecord
	err := r.db.WithContext(ctx).Where(query, args...).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return news.Category{}, news.ErrCategoryDoesNotExist
	}
	if err != nil {
		return news.Category{}, err
	}
	return decodeCategory(rec), nil
}
