// Package service composes repositories and providers into request-ready
// business logic.
package service

import (
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/apperr"
	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/provider"
	"github.com/zshield/zshield-api/internal/repository"
)

// AuthService handles wallet connection and session verification.
type AuthService struct {
	sessions *repository.SessionRepository
	zcash    *provider.ZcashProvider
	logger   logrus.FieldLogger
}

// NewAuthService creates the auth service.
func NewAuthService(sessions *repository.SessionRepository, zcash *provider.ZcashProvider, logger logrus.FieldLogger) *AuthService {
	return &AuthService{sessions: sessions, zcash: zcash, logger: logger}
}

// ConnectWallet validates the wallet address and creates a session for it.
func (s *AuthService) ConnectWallet(address, walletType string) (models.Session, error) {
	s.logger.Infof("connecting wallet: %s", address)

	validation := s.zcash.ValidateAddress(address)
	if !validation.IsValid {
		return models.Session{}, apperr.Validation("Invalid Zcash address", nil)
	}

	session := s.sessions.Create(repository.CreateSessionData{
		Address:     address,
		AddressType: validation.Type,
		IsShielded:  validation.IsShielded,
		WalletType:  walletType,
	})
	return session, nil
}

// Disconnect ends the session.
func (s *AuthService) Disconnect(sessionID string) bool {
	return s.sessions.Delete(sessionID)
}

// VerifySession resolves a session ID to a live session, failing with an
// authentication error when it is absent or expired.
func (s *AuthService) VerifySession(sessionID string) (models.Session, error) {
	session, ok := s.sessions.FindByID(sessionID)
	if !ok {
		return models.Session{}, apperr.Authentication("Session expired or invalid")
	}
	return session, nil
}
