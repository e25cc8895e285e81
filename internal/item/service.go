package item

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("item not found")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(req *CreateItemRequest) (*Item, error) {
	i := &Item{Name: req.Name}
	if err := s.repo.Create(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) GetByID(id uint) (*Item, error) {
	i, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

func (s *Service) List() ([]Item, error) {
	return s.repo.List()
}

func (s *Service) Update(id uint, req *UpdateItemRequest) (*Item, error) {
	i, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		i.Name = *req.Name
	}
	if err := s.repo.Update(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) Delete(id uint) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
