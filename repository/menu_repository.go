package repository

import (
	"tableside/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ListByRestaurant(restID uint, categoryID *uint) ([]entity.MenuItem, error) {
	q := r.DB.Where("restaurant_id = ?", restID)
	if categoryID != nil && *categoryID != 0 {
		q = q.Where("category_id = ?", *categoryID)
	}
	var items []entity.MenuItem
	err := q.Order("sort_order, id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindWithOptions loads an item with its option groups and choices, the
// shape order creation and the storefront menu need.
func (r *MenuRepository) FindWithOptions(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order, id") }).
		Preload("Options.Choices", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order, id") }).
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) ListWithOptionsByRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order, id") }).
		Preload("Options.Choices", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order, id") }).
		Where("restaurant_id = ? AND available = ?", restID, true).
		Order("sort_order, id").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) Reorder(categoryID uint, orderedIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for pos, id := range orderedIDs {
			if err := tx.Model(&entity.MenuItem{}).
				Where("id = ? AND category_id = ?", id, categoryID).
				Update("sort_order", pos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
