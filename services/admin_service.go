package services

import (
	"auction-lab/auth"
	"auction-lab/domain"
	"auction-lab/errors"
	"log/slog"
	"time"
)

// AdminService fronts the privileged entitlement operations with a token
// check. An authorization failure returns before any lookup, so a bad
// credential learns nothing about which grants exist.
type AdminService struct {
	svc    IEntitlementService
	secret []byte
	log    *slog.Logger
}

func NewAdminService(svc IEntitlementService, secret []byte, log *slog.Logger) *AdminService {
	return &AdminService{svc: svc, secret: secret, log: log}
}

func (s *AdminService) authorize(token string) error {
	claims, err := auth.ValidateToken(s.secret, token)
	if err != nil || !claims.HasRole(auth.RoleAdmin) {
		s.log.Warn("rejected privileged operation")
		return errors.ErrUnauthorized
	}
	return nil
}

// MintToken issues an admin token; used by the operator bootstrap path.
func (s *AdminService) MintToken(subject string, tokenDuration time.Duration) (string, error) {
	return auth.GenerateToken(s.secret, subject, []string{auth.RoleAdmin}, tokenDuration)
}

func (s *AdminService) Create(token string, req CreateRequest) ([]domain.Grant, error) {
	if err := s.authorize(token); err != nil {
		return nil, err
	}
	return s.svc.Create(req)
}

func (s *AdminService) Extend(token, identifier string, months int) (domain.Grant, error) {
	if err := s.authorize(token); err != nil {
		return domain.Grant{}, err
	}
	return s.svc.Extend(identifier, months)
}

func (s *AdminService) Revoke(token, identifier string) (domain.Grant, error) {
	if err := s.authorize(token); err != nil {
		return domain.Grant{}, err
	}
	return s.svc.Revoke(identifier)
}

func (s *AdminService) Disable(token, identifier string) (domain.Grant, error) {
	if err := s.authorize(token); err != nil {
		return domain.Grant{}, err
	}
	return s.svc.Disable(identifier)
}

func (s *AdminService) Enable(token, identifier string) (domain.Grant, error) {
	if err := s.authorize(token); err != nil {
		return domain.Grant{}, err
	}
	return s.svc.Enable(identifier)
}

func (s *AdminService) Delete(token, identifier string) error {
	if err := s.authorize(token); err != nil {
		return err
	}
	return s.svc.Delete(identifier)
}

func (s *AdminService) SetNotes(token, identifier, notes string) (domain.Grant, error) {
	if err := s.authorize(token); err != nil {
		return domain.Grant{}, err
	}
	return s.svc.SetNotes(identifier, notes)
}

func (s *AdminService) List(token string) ([]domain.Grant, error) {
	if err := s.authorize(token); err != nil {
		return nil, err
	}
	return s.svc.List()
}

func (s *AdminService) Stats(token string) (Stats, error) {
	if err := s.authorize(token); err != nil {
		return Stats{}, err
	}
	return s.svc.Stats()
}
