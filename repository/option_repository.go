package repository

import (
	"tableside/entity"

	"gorm.io/gorm"
)

type OptionRepository struct {
	DB *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{DB: db}
}

// ---------------- Option groups ----------------

func (r *OptionRepository) ListByMenuItem(menuItemID uint) ([]entity.MenuItemOption, error) {
	var out []entity.MenuItemOption
	err := r.DB.Preload("Choices", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order, id") }).
		Where("menu_item_id = ?", menuItemID).
		Order("sort_order, id").Find(&out).Error
	return out, err
}

func (r *OptionRepository) FindGroup(id uint) (*entity.MenuItemOption, error) {
	var g entity.MenuItemOption
	if err := r.DB.Preload("Choices").First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *OptionRepository) CreateGroup(g *entity.MenuItemOption) error {
	return r.DB.Create(g).Error
}

func (r *OptionRepository) UpdateGroup(g *entity.MenuItemOption) error {
	return r.DB.Save(g).Error
}

// DeleteGroup removes a group and its choices together.
func (r *OptionRepository) DeleteGroup(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_option_id = ?", id).
			Delete(&entity.OptionChoice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuItemOption{}, id).Error
	})
}

// ---------------- Choices ----------------

func (r *OptionRepository) FindChoice(id uint) (*entity.OptionChoice, error) {
	var ch entity.OptionChoice
	if err := r.DB.First(&ch, id).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *OptionRepository) CreateChoice(ch *entity.OptionChoice) error {
	return r.DB.Create(ch).Error
}

func (r *OptionRepository) UpdateChoice(ch *entity.OptionChoice) error {
	return r.DB.Save(ch).Error
}

func (r *OptionRepository) DeleteChoice(id uint) error {
	return r.DB.Delete(&entity.OptionChoice{}, id).Error
}
