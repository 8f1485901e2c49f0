package news

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type FakeCategoryRepository struct {
	Categories  []Category
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeCategoryRepository() *FakeCategoryRepository {
	return &FakeCategoryRepository{}
}

func (r *FakeCategoryRepository) List(ctx context.Context) ([]Category, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list categories")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	categories := append([]Category(nil), r.Categories...)
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (r *FakeCategoryRepository) GetByID(ctx context.Context, id CategoryID) (Category, error) {
	return r.find(func(cat Category) bool { return cat.ID == id })
}

func (r *FakeCategoryRepository) GetByName(ctx context.Context, name string) (Category, error) {
	return r.find(func(cat Category) bool { return cat.Name == name })
}

func (r *FakeCategoryRepository) Create(ctx context.Context, input CreateCategoryInput) (Category, error) {
	if r.ReturnError {
		return Category{}, fmt.Errorf("could not create category")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := CategoryID(0)
	for _, cat := range r.Categories {
		if cat.Name == input.Name {
			return Category{}, ErrCategoryAlreadyExists
		}
		if cat.ID > maxID {
			maxID = cat.ID
		}
	}
	cat := Category{
		ID:          maxID + 1,
		Name:        input.Name,
		Description: input.Description,
		Ico:         input.Ico,
	}
	r.Categories = append(r.Categories, cat)
	return cat, nil
}

func (r *FakeCategoryRepository) Update(ctx context.Context, category Category) (Category, error) {
	if r.ReturnError {
		return Category{}, fmt.Errorf("could not update category")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, cat := range r.Categories {
		if cat.ID != category.ID && cat.Name == category.Name {
			return Category{}, ErrCategoryAlreadyExists
		}
	}
	for ix, cat := range r.Categories {
		if cat.ID == category.ID {
			r.Categories[ix] = category
			return category, nil
		}
	}
	return Category{}, ErrCategoryDoesNotExist
}

func (r *FakeCategoryRepository) Delete(ctx context.Context, id CategoryID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete category")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, cat := range r.Categories {
		if cat.ID == id {
			r.Categories = append(r.Categories[:ix], r.Categories[ix+1:]...)
			return nil
		}
	}
	return ErrCategoryDoesNotExist
}

func (r *FakeCategoryRepository) find(match func(cat Category) bool) (Category, error) {
	if r.ReturnError {
		return Category{}, fmt.Errorf("could not get category")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, cat := range r.Categories {
		if match(cat) {
			return cat, nil
		}
	}
	return Category{}, ErrCategoryDoesNotExist
}

type FakeNewsRepository struct {
	News        []News
	Categories  *FakeCategoryRepository
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeNewsRepository(categories *FakeCategoryRepository) *FakeNewsRepository {
	return &FakeNewsRepository{Categories: categories}
}

func (r *FakeNewsRepository) List(ctx context.Context, input ListInput) ([]News, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list news")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	result := make([]News, 0, len(r.News))
	for ix := len(r.News) - 1; ix >= 0; ix-- {
		n := r.News[ix]
		if input.CategoryID.IsPresent && n.CategoryID != input.CategoryID.Value {
			continue
		}
		result = append(result, n)
		if input.Limit.IsPresent && len(result) == input.Limit.Value {
			break
		}
	}
	return result, nil
}

func (r *FakeNewsRepository) GetByID(ctx context.Context, id ID) (News, error) {
	if r.ReturnError {
		return News{}, fmt.Errorf("could not get news")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, n := range r.News {
		if n.ID == id {
			return n, nil
		}
	}
	return News{}, ErrNewsDoesNotExist
}

func (r *FakeNewsRepository) Create(ctx context.Context, input CreateInput) (News, error) {
	if r.ReturnError {
		return News{}, fmt.Errorf("could not create news")
	}
	category, err := r.Categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		return News{}, err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	n := News{
		ID:         ID(len(r.News) + 1),
		Title:      input.Title,
		Text:       input.Text,
		AuthorID:   input.AuthorID,
		CategoryID: input.CategoryID,
		Category:   category,
		CreatedAt:  input.CreatedAt,
	}
	r.News = append(r.News, n)
	return n, nil
}

func (r *FakeNewsRepository) Update(ctx context.Context, input UpdateInput) (News, error) {
	if r.ReturnError {
		return News{}, fmt.Errorf("could not update news")
	}
	category, err := r.Categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		return News{}, err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, n := range r.News {
		if n.ID == input.ID {
			n.Title = input.Title
			n.Text = input.Text
			n.CategoryID = input.CategoryID
			n.Category = category
			r.News[ix] = n
			return n, nil
		}
	}
	return News{}, ErrNewsDoesNotExist
}

func (r *FakeNewsRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete news")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, n := range r.News {
		if n.ID == id {
			r.News = append(r.News[:ix], r.News[ix+1:]...)
			return nil
		}
	}
	return ErrNewsDoesNotExist
}

func (r *FakeNewsRepository) CountByCategory(ctx context.Context, categoryID CategoryID) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not count news")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	var count int64
	for _, n := range r.News {
		if n.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type FakePublisher struct {
	Published   []News
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (p *FakePublisher) PublishCreated(ctx context.Context, n News) error {
	if p.ReturnError {
		return fmt.Errorf("could not publish news %d", n.ID)
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, n)
	return nil
}
