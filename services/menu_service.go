package services

import (
	"errors"

	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

type MenuService struct {
	Repo    *repository.MenuRepository
	CatRepo *repository.CategoryRepository
}

func NewMenuService(repo *repository.MenuRepository, catRepo *repository.CategoryRepository) *MenuService {
	return &MenuService{Repo: repo, CatRepo: catRepo}
}

func (s *MenuService) ListByRestaurant(restID uint, categoryID *uint) ([]entity.MenuItem, error) {
	return s.Repo.ListByRestaurant(restID, categoryID)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindWithOptions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	cat, err := s.CatRepo.FindByID(item.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if cat.RestaurantID != item.RestaurantID {
		return ErrNotFound
	}
	return s.Repo.Create(item)
}

func (s *MenuService) Update(item *entity.MenuItem) error {
	return s.Repo.Update(item)
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *MenuService) Reorder(categoryID uint, orderedIDs []uint) error {
	return s.Repo.Reorder(categoryID, orderedIDs)
}

// StorefrontMenu is the public menu shape: categories in display order, each
// carrying its available items with option groups and choices.
type StorefrontMenu struct {
	Categories []StorefrontCategory `json:"categories"`
}

type StorefrontCategory struct {
	ID    uint              `json:"id"`
	Name  string            `json:"name"`
	Items []entity.MenuItem `json:"items"`
}

func (s *MenuService) StorefrontByRestaurant(restID uint) (*StorefrontMenu, error) {
	cats, err := s.CatRepo.ListByRestaurant(restID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.ListWithOptionsByRestaurant(restID)
	if err != nil {
		return nil, err
	}

	byCat := make(map[uint][]entity.MenuItem, len(cats))
	for _, it := range items {
		byCat[it.CategoryID] = append(byCat[it.CategoryID], it)
	}

	out := &StorefrontMenu{Categories: make([]StorefrontCategory, 0, len(cats))}
	for _, c := range cats {
		out.Categories = append(out.Categories, StorefrontCategory{
			ID:    c.ID,
			Name:  c.Name,
			Items: byCat[c.ID],
		})
	}
	return out, nil
}
