package repository

import (
	"tableside/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) ListByRestaurant(restID uint) ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Where("restaurant_id = ?", restID).Order("number").Find(&out).Error
	return out, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindForRestaurant resolves a table only when it belongs to the restaurant.
func (r *TableRepository) FindForRestaurant(tableID, restID uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("id = ? AND restaurant_id = ?", tableID, restID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) FindByToken(token string) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("qr_token = ?", token).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) NumberTaken(restID uint, number int, excludeID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Table{}).
		Where("restaurant_id = ? AND number = ? AND id <> ?", restID, number, excludeID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Update(t *entity.Table) error {
	return r.DB.Save(t).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}

func (r *TableRepository) UpdateStatus(tx *gorm.DB, tableID uint, status entity.TableStatus) error {
	return tx.Model(&entity.Table{}).Where("id = ?", tableID).
		Update("status", status).Error
}

// ReleaseIfIdle frees the table in one guarded statement: the status write
// and the active-order check happen atomically, so two orders finishing
// concurrently on the same table cannot disagree about the count.
func (r *TableRepository) ReleaseIfIdle(tx *gorm.DB, tableID, excludeOrderID uint) (bool, error) {
	res := tx.Exec(`
		UPDATE tables SET status = ? WHERE id = ? AND NOT EXISTS (
			SELECT 1 FROM orders
			WHERE table_id = ? AND id <> ? AND status NOT IN ? AND deleted_at IS NULL
		)`,
		entity.TableStatusAvailable, tableID,
		tableID, excludeOrderID,
		[]entity.OrderStatus{entity.OrderStatusCompleted, entity.OrderStatusCancelled},
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
