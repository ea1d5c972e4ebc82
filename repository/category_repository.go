package repository

import (
	"tableside/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) ListByRestaurant(restID uint) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("sort_order, id").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Update(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// Reorder rewrites sort_order positionally for the given restaurant's
// categories; ids not belonging to the restaurant are ignored.
func (r *CategoryRepository) Reorder(restID uint, orderedIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for pos, id := range orderedIDs {
			if err := tx.Model(&entity.Category{}).
				Where("id = ? AND restaurant_id = ?", id, restID).
				Update("sort_order", pos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
