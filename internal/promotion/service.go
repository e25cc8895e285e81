package promotion

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gogevgelija/gogevgelija-backend/utils"
)

var ErrNotFound = errors.New("promotion not found")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// parseValidUntil turns the wire date into a time, nil meaning no expiry.
func parseValidUntil(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, utils.FieldErrors{"valid_until": "must be a date in YYYY-MM-DD format"}
	}
	return &t, nil
}

func (s *Service) Create(req *CreatePromotionRequest) (*Promotion, error) {
	validUntil, err := parseValidUntil(req.ValidUntil)
	if err != nil {
		return nil, err
	}

	m := &Promotion{
		Title:         req.Title,
		TitleEN:       req.TitleEN,
		TitleMK:       req.TitleMK,
		Description:   req.Description,
		DescriptionEN: req.DescriptionEN,
		DescriptionMK: req.DescriptionMK,
		Address:       req.Address,
		AddressEN:     req.AddressEN,
		AddressMK:     req.AddressMK,
		DiscountCode:  req.DiscountCode,
		Tags:          req.Tags,
		TagsMK:        req.TagsMK,
		Image:         req.Image,
		ValidUntil:    validUntil,
		Featured:      req.Featured,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetByID(id uint) (*Promotion, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) List() ([]Promotion, error) {
	return s.repo.List(false)
}

func (s *Service) Featured() ([]Promotion, error) {
	return s.repo.List(true)
}

func (s *Service) Update(id uint, req *UpdatePromotionRequest) (*Promotion, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.ValidUntil != nil {
		validUntil, err := parseValidUntil(req.ValidUntil)
		if err != nil {
			return nil, err
		}
		m.ValidUntil = validUntil
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
	if req.DiscountCode != nil {
		m.DiscountCode = *req.DiscountCode
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
