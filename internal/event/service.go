package event

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gogevgelija/gogevgelija-backend/internal/auditlog"
)

var (
	ErrNotFound      = errors.New("event not found")
	ErrAlreadyJoined = errors.New("you have already joined this event")
	ErrNotJoined     = errors.New("you have not joined this event")
)

type Service struct {
	repo  *Repository
	audit *auditlog.Service
}

func NewService(repo *Repository, audit *auditlog.Service) *Service {
	return &Service{repo: repo, audit: audit}
}

func (s *Service) Create(req *CreateEventRequest) (*Event, error) {
	m := &Event{
		Title:         req.Title,
		TitleEN:       req.TitleEN,
		TitleMK:       req.TitleMK,
		Description:   req.Description,
		DescriptionEN: req.DescriptionEN,
		DescriptionMK: req.DescriptionMK,
		Location:      req.Location,
		LocationEN:    req.LocationEN,
		LocationMK:    req.LocationMK,
		DateTime:      req.DateTime,
		CoverImage:    req.CoverImage,
		EntryPrice:    req.EntryPrice,
		AgeLimit:      req.AgeLimit,
		Expectations:  req.Expectations,
		Featured:      req.Featured,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetByID(id uint) (*Event, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) List() ([]Event, error) {
	return s.repo.List(false)
}

func (s *Service) Featured() ([]Event, error) {
	return s.repo.List(true)
}

func (s *Service) Update(id uint, req *UpdateEventRequest) (*Event, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
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
	if req.Location != nil {
		m.Location = *req.Location
	}
	if req.LocationEN != nil {
		m.LocationEN = *req.LocationEN
	}
	if req.LocationMK != nil {
		m.LocationMK = *req.LocationMK
	}
	if req.DateTime != nil {
		m.DateTime = *req.DateTime
	}
	if req.CoverImage != nil {
		m.CoverImage = *req.CoverImage
	}
	if req.EntryPrice != nil {
		m.EntryPrice = *req.EntryPrice
	}
	if req.AgeLimit != nil {
		m.AgeLimit = *req.AgeLimit
	}
	if req.Expectations != nil {
		m.Expectations = *req.Expectations
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

// ===========================
// 🙋 Join / Unjoin
//
// Two deliberately different modes. Authenticated callers get a join record
// and join_count is recomputed from an exact count, which keeps concurrent
// joins correct. Anonymous callers have no identity to key a record on, so
// the count is bumped blindly — a looser, pre-existing behavior the mobile
// app still depends on.

func (s *Service) Join(eventID uint, userID *uint, ip string) (*Event, error) {
	m, err := s.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	if userID != nil {
		if _, err := s.repo.FindJoin(eventID, *userID); err == nil {
			return nil, ErrAlreadyJoined
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if err := s.repo.CreateJoin(&EventJoin{EventID: eventID, UserID: *userID}); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrAlreadyJoined
			}
			return nil, err
		}

		count, err := s.repo.CountJoins(eventID)
		if err != nil {
			return nil, err
		}
		if err := s.repo.SetJoinCount(eventID, count); err != nil {
			return nil, err
		}
		m.JoinCount = count
	} else {
		m.JoinCount++
		if err := s.repo.SetJoinCount(eventID, m.JoinCount); err != nil {
			return nil, err
		}
	}

	s.audit.Log(userID, auditlog.ActionEventJoin, ip, map[string]interface{}{"event_id": eventID})
	return m, nil
}

func (s *Service) Unjoin(eventID uint, userID *uint, ip string) (*Event, error) {
	m, err := s.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	if userID != nil {
		if _, err := s.repo.FindJoin(eventID, *userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotJoined
			}
			return nil, err
		}

		if err := s.repo.DeleteJoin(eventID, *userID); err != nil {
			return nil, err
		}

		count, err := s.repo.CountJoins(eventID)
		if err != nil {
			return nil, err
		}
		if err := s.repo.SetJoinCount(eventID, count); err != nil {
			return nil, err
		}
		m.JoinCount = count
	} else if m.JoinCount > 0 {
		m.JoinCount--
		if err := s.repo.SetJoinCount(eventID, m.JoinCount); err != nil {
			return nil, err
		}
	}

	s.audit.Log(userID, auditlog.ActionEventUnjoin, ip, map[string]interface{}{"event_id": eventID})
	return m, nil
}
