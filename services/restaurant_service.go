package services

import (
	"errors"

	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	r, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *RestaurantService) Create(r *entity.Restaurant) error {
	return s.Repo.Create(r)
}

func (s *RestaurantService) Update(r *entity.Restaurant) error {
	return s.Repo.Update(r)
}

func (s *RestaurantService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
