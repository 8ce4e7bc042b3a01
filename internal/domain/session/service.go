package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"postdeck/internal/storage"
)

var (
	ErrEmptyCompanyCode = errors.New("company code must not be empty")
	ErrUnknownRegion    = errors.New("unknown region")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Service manages the session singleton in the key/value store.
type Service struct {
	store storage.Store
	log   *slog.Logger
}

func NewService(store storage.Store, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Login validates the mock credentials and stores a fresh session,
// replacing any previous one.
func (s *Service) Login(companyCode string, region Region, email string) (*Session, error) {
	companyCode = strings.TrimSpace(companyCode)
	email = strings.TrimSpace(email)

	if companyCode == "" {
		return nil, ErrEmptyCompanyCode
	}
	if !region.Valid() {
		return nil, ErrUnknownRegion
	}
	if !looksLikeEmail(email) {
		return nil, ErrInvalidEmail
	}

	sess := &Session{
		CompanyCode: companyCode,
		Region:      region,
		Email:       email,
		LoginTime:   time.Now().UTC(),
		SessionID:   uuid.NewString(),
	}

	s.store.Set(storage.SessionKey, sess)
	s.log.Info("session created", "email", email, "region", region)

	return sess, nil
}

// Current returns the stored session, or ErrNotAuthenticated.
func (s *Service) Current() (*Session, error) {
	var sess Session
	if !s.store.Get(storage.SessionKey, &sess) {
		return nil, ErrNotAuthenticated
	}
	return &sess, nil
}

// IsAuthenticated reports whether a session exists.
func (s *Service) IsAuthenticated() bool {
	_, err := s.Current()
	return err == nil
}

// Logout destroys the session singleton.
func (s *Service) Logout() {
	s.store.Remove(storage.SessionKey)
	s.log.Info("session destroyed")
}

func looksLikeEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}
