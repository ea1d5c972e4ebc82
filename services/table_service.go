package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

type TableService struct {
	Repo     *repository.TableRepository
	RestRepo *repository.RestaurantRepository
}

func NewTableService(repo *repository.TableRepository, restRepo *repository.RestaurantRepository) *TableService {
	return &TableService{Repo: repo, RestRepo: restRepo}
}

func (s *TableService) ListByRestaurant(restID uint) ([]entity.Table, error) {
	return s.Repo.ListByRestaurant(restID)
}

func (s *TableService) Get(id uint) (*entity.Table, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TableService) ResolveByToken(token string) (*entity.Table, error) {
	t, err := s.Repo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TableService) Create(restID uint, number, capacity int) (*entity.Table, error) {
	ok, err := s.RestRepo.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	taken, err := s.Repo.NumberTaken(restID, number, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTableNumberTaken
	}

	t := &entity.Table{
		Number:       number,
		Capacity:     capacity,
		Status:       entity.TableStatusAvailable,
		QRToken:      uuid.NewString(),
		RestaurantID: restID,
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

type TableUpdate struct {
	Number   *int                `json:"number"`
	Capacity *int                `json:"capacity"`
	Status   *entity.TableStatus `json:"status"`
}

func (s *TableService) Update(id uint, in *TableUpdate) (*entity.Table, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Number != nil && *in.Number != t.Number {
		taken, err := s.Repo.NumberTaken(t.RestaurantID, *in.Number, t.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrTableNumberTaken
		}
		t.Number = *in.Number
	}
	if in.Capacity != nil {
		t.Capacity = *in.Capacity
	}
	if in.Status != nil {
		t.Status = *in.Status
	}

	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TableService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

// RegenerateToken rotates the QR token; previously printed codes stop working.
func (s *TableService) RegenerateToken(id uint) (*entity.Table, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	t.QRToken = uuid.NewString()
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// QRPayload is the URL encoded into the printed QR code for a table.
func (s *TableService) QRPayload(baseURL string, t *entity.Table) string {
	return baseURL + "/t/" + t.QRToken
}
