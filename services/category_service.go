package services

import (
	"errors"

	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) ListByRestaurant(restID uint) ([]entity.Category, error) {
	return s.Repo.ListByRestaurant(restID)
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	cat, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Create(cat *entity.Category) error {
	return s.Repo.Create(cat)
}

func (s *CategoryService) Update(cat *entity.Category) error {
	return s.Repo.Update(cat)
}

func (s *CategoryService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *CategoryService) Reorder(restID uint, orderedIDs []uint) error {
	return s.Repo.Reorder(restID, orderedIDs)
}
