package category

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gogevgelija/gogevgelija-backend/utils"
)

var ErrNotFound = errors.New("category not found")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(req *CreateCategoryRequest) (*Category, error) {
	m := &Category{
		Name:     req.Name,
		NameEN:   req.NameEN,
		NameMK:   req.NameMK,
		Icon:     req.Icon,
		Trending: req.Trending,
	}
	if err := s.repo.Create(m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.FieldErrors{"name": "category with this name already exists"}
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) GetByID(id uint) (*Category, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) Update(id uint, req *UpdateCategoryRequest) (*Category, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.NameEN != nil {
		m.NameEN = *req.NameEN
	}
	if req.NameMK != nil {
		m.NameMK = *req.NameMK
	}
	if req.Icon != nil {
		m.Icon = *req.Icon
	}
	if req.Trending != nil {
		m.Trending = *req.Trending
	}

	if err := s.repo.Update(m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.FieldErrors{"name": "category with this name already exists"}
		}
		return nil, err
	}
	return m, nil
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
