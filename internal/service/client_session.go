package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/models"
)

// session is the account the client is logged in as, shared by the client
// services. Its profile is mirrored to the local cache on every change.
type session struct {
	mu      sync.RWMutex
	profile models.Profile

	profiles store.ProfileRepository
	logger   *logger.Logger
}

func newSession(profiles store.ProfileRepository, log *logger.Logger) *session {
	return &session{profiles: profiles, logger: log}
}

func (s *session) current() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// update applies fn to the profile and saves it. A failing cache is only
// logged: it holds nothing the server does not have.
func (s *session) update(ctx context.Context, fn func(p *models.Profile)) {
	s.mu.Lock()
	fn(&s.profile)
	profile := s.profile
	s.mu.Unlock()

	if profile.Login == "" || s.profiles == nil {
		return
	}
	if err := s.profiles.SaveProfile(ctx, profile); err != nil {
		s.logger.Warn().Err(err).Msg("profile cache not updated")
	}
}

func (s *session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = models.Profile{}
}
