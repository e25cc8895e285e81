package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gogevgelija/gogevgelija-backend/config"
	"github.com/gogevgelija/gogevgelija-backend/internal/auditlog"
	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
	"github.com/gogevgelija/gogevgelija-backend/utils"
)

const MinPasswordLength = 8

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

type Service interface {
	Register(input RegisterInput, ip string) (*TokenPair, *User, error)
	Login(input LoginInput, ip string) (*TokenPair, *User, error)
	Refresh(refreshToken string) (*TokenPair, error)
	GetUserByID(userID uint) (User, error)
	UpdateMe(userID uint, input UpdateMeInput) (*User, error)
}

type service struct {
	repo          Repository
	audit         *auditlog.Service
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	rotateRefresh bool
	defaultLang   string
}

func NewService(r Repository, audit *auditlog.Service, cfg *config.Config) Service {
	return &service{
		repo:          r,
		audit:         audit,
		accessSecret:  cfg.JWTAccessSecret,
		refreshSecret: cfg.JWTRefreshSecret,
		accessTTL:     time.Duration(cfg.JWTAccessTTLMin) * time.Minute,
		refreshTTL:    time.Duration(cfg.JWTRefreshTTLHrs) * time.Hour,
		rotateRefresh: cfg.JWTRefreshRotate,
		defaultLang:   cfg.DefaultLanguage,
	}
}

// =============================
// Register
// =============================

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (s *service) Register(in RegisterInput, ip string) (*TokenPair, *User, error) {
	fields := utils.FieldErrors{}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		fields["username"] = "this field is required"
	}
	if len(in.Password) < MinPasswordLength {
		fields["password"] = fmt.Sprintf("must be at least %d characters", MinPasswordLength)
	}
	if len(fields) > 0 {
		return nil, nil, fields
	}

	taken, err := s.repo.UsernameTaken(username, 0)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, utils.FieldErrors{"username": "a user with that username already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &User{
		Username:     username,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	profile := &Profile{Language: s.defaultLang}

	if err := s.repo.CreateWithProfile(user, profile); err != nil {
		return nil, nil, err
	}
	user.Profile = profile

	tokens, err := s.issueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	s.audit.Log(&user.ID, auditlog.ActionRegister, ip, map[string]interface{}{"username": user.Username})
	return tokens, user, nil
}

// =============================
// Login
// =============================

type LoginInput struct {
	Username string
	Password string
}

func (s *service) Login(in LoginInput, ip string) (*TokenPair, *User, error) {
	user, err := s.repo.FindByUsername(in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	s.audit.Log(&user.ID, auditlog.ActionLogin, ip, nil)
	return tokens, user, nil
}

// =============================
// Token issuing
// =============================

func (s *service) issueTokenPair(user *User) (*TokenPair, error) {
	accessToken, err := s.generateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, jti, err := s.generateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if s.rotateRefresh {
		if err := utils.SetToken(refreshKey(user.ID), jti, s.refreshTTL); err != nil {
			return nil, err
		}
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *service) generateAccessToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

func (s *service) generateRefreshToken(userID uint) (string, string, error) {
	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"user_id": userID,
		"jti":     jti,
		"exp":     time.Now().Add(s.refreshTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.refreshSecret))
	return signed, jti, err
}

func refreshKey(userID uint) string {
	return fmt.Sprintf("refresh_jti:%d", userID)
}

// =============================
// Refresh
// =============================

// Refresh exchanges a valid refresh token for a fresh access token. With
// rotation enabled the refresh token is replaced too and its predecessor's
// jti is invalidated, so a replayed old token stops working.
func (s *service) Refresh(refreshToken string) (*TokenPair, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["user_id"] == nil {
		return nil, ErrInvalidToken
	}

	userID := uint(claims["user_id"].(float64))
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !s.rotateRefresh {
		accessToken, err := s.generateAccessToken(user.ID)
		if err != nil {
			return nil, err
		}
		return &TokenPair{AccessToken: accessToken}, nil
	}

	jti, _ := claims["jti"].(string)
	current, err := utils.GetToken(refreshKey(user.ID))
	if err != nil || jti == "" || jti != current {
		return nil, ErrInvalidToken
	}

	return s.issueTokenPair(&user)
}

// =============================
// Current user
// =============================

func (s *service) GetUserByID(userID uint) (User, error) {
	return s.repo.FindByID(userID)
}

type UpdateMeInput struct {
	Username        string
	Language        string
	NewPassword     string
	CurrentPassword string
}

func (s *service) UpdateMe(userID uint, in UpdateMeInput) (*User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if in.Username != "" && in.Username != user.Username {
		taken, err := s.repo.UsernameTaken(in.Username, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, utils.FieldErrors{"username": "a user with that username already exists"}
		}
		user.Username = in.Username
	}

	if in.NewPassword != "" {
		if in.CurrentPassword != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
				return nil, ErrWrongPassword
			}
		}
		if len(in.NewPassword) < MinPasswordLength {
			return nil, utils.FieldErrors{"new_password": fmt.Sprintf("must be at least %d characters", MinPasswordLength)}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if in.Language != "" {
		if _, ok := i18n.Parse(in.Language); !ok {
			return nil, utils.FieldErrors{"language": "must be one of: en, mk"}
		}
	}

	if err := s.repo.Update(&user); err != nil {
		return nil, err
	}

	if in.Language != "" {
		if err := s.repo.UpdateLanguage(user.ID, in.Language); err != nil {
			return nil, err
		}
		if user.Profile != nil {
			user.Profile.Language = in.Language
		}
	}

	return &user, nil
}
