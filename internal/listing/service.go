package listing

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gogevgelija/gogevgelija-backend/utils"
)

var ErrNotFound = errors.New("listing not found")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func validateRating(r float64) error {
	if r < RatingMin || r > RatingMax {
		return utils.FieldErrors{
			"rating": fmt.Sprintf("must be between %.1f and %.1f", RatingMin, RatingMax),
		}
	}
	return nil
}

func (s *Service) Create(req *CreateListingRequest) (*Listing, error) {
	cat, err := ParseCategory(req.Category)
	if err != nil {
		return nil, utils.FieldErrors{"category": err.Error()}
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	m := &Listing{
		Title:         req.Title,
		TitleEN:       req.TitleEN,
		TitleMK:       req.TitleMK,
		Description:   req.Description,
		DescriptionEN: req.DescriptionEN,
		DescriptionMK: req.DescriptionMK,
		Address:       req.Address,
		AddressEN:     req.AddressEN,
		AddressMK:     req.AddressMK,
		OpenTime:      req.OpenTime,
		OpenTimeEN:    req.OpenTimeEN,
		OpenTimeMK:    req.OpenTimeMK,
		Category:      cat,
		Rating:        req.Rating,
		Tags:          req.Tags,
		TagsMK:        req.TagsMK,
		Image:         req.Image,
		Phone:         req.Phone,
		Website:       req.Website,
		Featured:      req.Featured,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetByID(id uint) (*Listing, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) List() ([]Listing, error) {
	return s.repo.List(false)
}

func (s *Service) Featured() ([]Listing, error) {
	return s.repo.List(true)
}

func (s *Service) Update(id uint, req *UpdateListingRequest) (*Listing, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		cat, err := ParseCategory(*req.Category)
		if err != nil {
			return nil, utils.FieldErrors{"category": err.Error()}
		}
		m.Category = cat
	}
	if req.Rating != nil {
		if err := validateRating(*req.Rating); err != nil {
			return nil, err
		}
		m.Rating = *req.Rating
	}

	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.TitleEN != nil {
		m.TitleEN = *req.TitleEN
	}
	if req.TitleMK != nil {
		m.TitleMK = *req.TitleMK
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.DescriptionEN != nil {
		m.DescriptionEN = *req.DescriptionEN
	}
	if req.DescriptionMK != nil {
		m.DescriptionMK = *req.DescriptionMK
	}
	if req.Address != nil {
		m.Address = *req.Address
	}
	if req.AddressEN != nil {
		m.AddressEN = *req.AddressEN
	}
	if req.AddressMK != nil {
		m.AddressMK = *req.AddressMK
	}
	if req.OpenTime != nil {
		m.OpenTime = *req.OpenTime
	}
	if req.OpenTimeEN != nil {
		m.OpenTimeEN = *req.OpenTimeEN
	}
	if req.OpenTimeMK != nil {
		m.OpenTimeMK = *req.OpenTimeMK
	}
	if req.Tags != nil {
		m.Tags = *req.Tags
	}
	if req.TagsMK != nil {
		m.TagsMK = *req.TagsMK
	}
	if req.Image != nil {
		m.Image = *req.Image
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.Website != nil {
		m.Website = *req.Website
	}
	if req.Featured != nil {
		m.Featured = *req.Featured
	}

	if err := s.repo.Update(m); err != nil {
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
