package services

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"omoro/internal/domain"
)

var ErrBadCreds = errors.New("invalid credentials")

// AuthService checks the single fixed admin credential pair.
type AuthService struct {
	admin domain.Admin
}

func NewAuthService(user, password string) (*AuthService, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{admin: domain.Admin{Username: user, Hash: string(h)}}, nil
}

func (s *AuthService) Login(user, password string) (*domain.Admin, error) {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.admin.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.admin.Hash), []byte(password))
	if !userOK || passErr != nil {
		return nil, ErrBadCreds
	}
	a := s.admin
	return &a, nil
}

func (s *AuthService) Username() string { return s.admin.Username }
