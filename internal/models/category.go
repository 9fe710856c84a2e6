package models

// Category groups products in the catalog. Deleting a category does not
// cascade to its products; they keep the stale reference.
type Category struct {
	ID          CategoryID `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string     `json:"name" gorm:"type:varchar(100);not null"`
	Description string     `json:"description" gorm:"type:text"`
}

// NewCategory validates and constructs a category.
func NewCategory(name, description string) (*Category, error) {
	cleanName, err := NewCategoryName(name)
	if err != nil {
		return nil, err
	}
	return &Category{
		ID:          NewCategoryID(),
		Name:        cleanName,
		Description: description,
	}, nil
}

// Rename replaces the category name after validation.
func (c *Category) Rename(name string) error {
	cleanName, err := NewCategoryName(name)
	if err != nil {
		return err
	}
	c.Name = cleanName
	return nil
}
