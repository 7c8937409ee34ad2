package store

import "taskclient/internal/models"

// Categories is reference data: fetched flat, created and deleted but
// never updated in place.
type Categories struct {
	state
	categories []models.Category
}

func NewCategories() *Categories {
	return &Categories{}
}

func (c *Categories) ReplaceAll(categories []models.Category) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.settleLocked()
	c.categories = append([]models.Category(nil), categories...)
	c.notifyLocked()
}

func (c *Categories) Append(category models.Category) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.settleLocked()
	c.categories = append(c.categories, category)
	c.notifyLocked()
}

// Remove deletes by identity only. Tasks referencing the category keep
// their id field; the reference is advisory and resolves to nothing.
func (c *Categories) Remove(id string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.settleLocked()
	kept := c.categories[:0]
	for _, category := range c.categories {
		if category.ID != id {
			kept = append(kept, category)
		}
	}
	c.categories = kept
	c.notifyLocked()
}

func (c *Categories) All() []models.Category {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return append([]models.Category(nil), c.categories...)
}

// ByID is the weak-reference lookup used at render time.
func (c *Categories) ByID(id string) (models.Category, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	for _, category := range c.categories {
		if category.ID == id {
			return category, true
		}
	}
	return models.Category{}, false
}
