package subscription

import (
	"errors"
	"strings"
)

var ErrInvalidEmail = errors.New("a valid email is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Subscribe(name, email string) (Subscription, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return Subscription{}, ErrInvalidEmail
	}
	return s.repo.Create(Subscription{Name: strings.TrimSpace(name), Email: email})
}
