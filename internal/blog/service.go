package blog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gogevgelija/gogevgelija-backend/utils"
)

var ErrNotFound = errors.New("blog not found")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func validateReadTime(minutes int) error {
	if minutes <= 0 {
		return utils.FieldErrors{"read_time_minutes": "must be greater than zero"}
	}
	return nil
}

func (s *Service) Create(req *CreateBlogRequest) (*Blog, error) {
	cat, err := ParseCategory(req.Category)
	if err != nil {
		return nil, utils.FieldErrors{"category": err.Error()}
	}
	readTime := req.ReadTimeMinutes
	if readTime == 0 {
		readTime = 5
	}
	if err := validateReadTime(readTime); err != nil {
		return nil, err
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}
	author := req.Author
	if author == "" && req.AuthorEN == "" && req.AuthorMK == "" {
		author = "GoGevgelija Team"
	}

	m := &Blog{
		Title:           req.Title,
		TitleEN:         req.TitleEN,
		TitleMK:         req.TitleMK,
		Subtitle:        req.Subtitle,
		SubtitleEN:      req.SubtitleEN,
		SubtitleMK:      req.SubtitleMK,
		Content:         req.Content,
		ContentEN:       req.ContentEN,
		ContentMK:       req.ContentMK,
		Author:          author,
		AuthorEN:        req.AuthorEN,
		AuthorMK:        req.AuthorMK,
		Category:        cat,
		Tags:            req.Tags,
		TagsMK:          req.TagsMK,
		CoverImage:      req.CoverImage,
		ReadTimeMinutes: readTime,
		Featured:        req.Featured,
		Published:       published,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetByID serves the public read path, so drafts come back as not found.
func (s *Service) GetByID(id uint) (*Blog, error) {
	m, err := s.fetch(id)
	if err != nil {
		return nil, err
	}
	if !m.Published {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *Service) fetch(id uint) (*Blog, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) List() ([]Blog, error) {
	return s.repo.List(false)
}

func (s *Service) Featured() ([]Blog, error) {
	return s.repo.List(true)
}

func (s *Service) Update(id uint, req *UpdateBlogRequest) (*Blog, error) {
	m, err := s.fetch(id)
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
	if req.ReadTimeMinutes != nil {
		if err := validateReadTime(*req.ReadTimeMinutes); err != nil {
			return nil, err
		}
		m.ReadTimeMinutes = *req.ReadTimeMinutes
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
	if req.Subtitle != nil {
		m.Subtitle = *req.Subtitle
	}
	if req.SubtitleEN != nil {
		m.SubtitleEN = *req.SubtitleEN
	}
	if req.SubtitleMK != nil {
		m.SubtitleMK = *req.SubtitleMK
	}
	if req.Content != nil {
		m.Content = *req.Content
	}
	if req.ContentEN != nil {
		m.ContentEN = *req.ContentEN
	}
	if req.ContentMK != nil {
		m.ContentMK = *req.ContentMK
	}
	if req.Author != nil {
		m.Author = *req.Author
	}
	if req.AuthorEN != nil {
		m.AuthorEN = *req.AuthorEN
	}
	if req.AuthorMK != nil {
		m.AuthorMK = *req.AuthorMK
	}
	if req.Tags != nil {
		m.Tags = *req.Tags
	}
	if req.TagsMK != nil {
		m.TagsMK = *req.TagsMK
	}
	if req.CoverImage != nil {
		m.CoverImage = *req.CoverImage
	}
	if req.Featured != nil {
		m.Featured = *req.Featured
	}
	if req.Published != nil {
		m.Published = *req.Published
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
