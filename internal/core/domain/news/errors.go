package news

import "errors"

var (
	ErrCategoryDoesNotExist  = errors.New("category does not exist")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrCategoryInUse         = errors.New("category is still referenced by news")
	ErrNewsDoesNotExist      = errors.New("news does not exist")
)
