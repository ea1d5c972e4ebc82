package services

import (
	"errors"

	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

type OptionService struct {
	Repo     *repository.OptionRepository
	MenuRepo *repository.MenuRepository
}

func NewOptionService(repo *repository.OptionRepository, menuRepo *repository.MenuRepository) *OptionService {
	return &OptionService{Repo: repo, MenuRepo: menuRepo}
}

func (s *OptionService) ListByMenuItem(menuItemID uint) ([]entity.MenuItemOption, error) {
	return s.Repo.ListByMenuItem(menuItemID)
}

func (s *OptionService) GetGroup(id uint) (*entity.MenuItemOption, error) {
	g, err := s.Repo.FindGroup(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *OptionService) CreateGroup(g *entity.MenuItemOption) error {
	if _, err := s.MenuRepo.FindByID(g.MenuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.CreateGroup(g)
}

func (s *OptionService) UpdateGroup(g *entity.MenuItemOption) error {
	return s.Repo.UpdateGroup(g)
}

func (s *OptionService) DeleteGroup(id uint) error {
	return s.Repo.DeleteGroup(id)
}

func (s *OptionService) GetChoice(id uint) (*entity.OptionChoice, error) {
	ch, err := s.Repo.FindChoice(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ch, nil
}

func (s *OptionService) CreateChoice(ch *entity.OptionChoice) error {
	if _, err := s.Repo.FindGroup(ch.MenuItemOptionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.CreateChoice(ch)
}

func (s *OptionService) UpdateChoice(ch *entity.OptionChoice) error {
	return s.Repo.UpdateChoice(ch)
}

func (s *OptionService) DeleteChoice(id uint) error {
	return s.Repo.DeleteChoice(id)
}
