//go:generate go run go.uber.org/mock/mockgen -source=entitlement_service.go -destination=../mocks/mock_entitlement_service.go -package=mocks
package services

import (
	"auction-lab/domain"
	"auction-lab/errors"
	"auction-lab/repositories"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
)

type IEntitlementService interface {
	Verify(identifier string) (VerifyResult, error)
	Create(req CreateRequest) ([]domain.Grant, error)
	Extend(identifier string, months int) (domain.Grant, error)
	Revoke(identifier string) (domain.Grant, error)
	Disable(identifier string) (domain.Grant, error)
	Enable(identifier string) (domain.Grant, error)
	Delete(identifier string) error
	SetNotes(identifier, notes string) (domain.Grant, error)
	List() ([]domain.Grant, error)
	Stats() (Stats, error)
	ExpireOverdue(now time.Time) (int, error)
}

// VerifyResult is returned on a successful verification.
type VerifyResult struct {
	Grant         domain.Grant
	Remaining     time.Duration
	DaysRemaining int
}

// CreateRequest mints Count fresh grants, each valid for Months
// commercial months (30 days). Account binds the grant to a normalized
// account identifier instead of an opaque key; it forces Count to 1.
type CreateRequest struct {
	Months  int              `validate:"min=1,max=120"`
	Count   int              `validate:"min=1,max=500"`
	Kind    domain.GrantKind `validate:"oneof=key account"`
	Account string           `validate:"required_if=Kind account"`
}

type Stats struct {
	Total    int
	ByStatus map[domain.GrantStatus]int
}

// EntitlementService implements the grant lifecycle on top of the
// repository: activation, lazy expiry, revocation, extension and audit.
// Every mutation is durably recorded before the caller sees success.
type EntitlementService struct {
	repo     repositories.IGrantRepository
	clock    clockwork.Clock
	log      *slog.Logger
	validate *validator.Validate
}

func NewEntitlementService(repo repositories.IGrantRepository, clock clockwork.Clock, log *slog.Logger) *EntitlementService {
	return &EntitlementService{
		repo:     repo,
		clock:    clock,
		log:      log,
		validate: validator.New(),
	}
}

// normalizeID trims and lowercases so "Key-ABC " and "key-abc" are the
// same grant; replay-safe lookups depend on one canonical form.
func normalizeID(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// Verify checks an identifier against its grant and records the usage.
// Status checks run before the expiry check so a revoked grant stays
// revoked even when it is also past its expiry.
func (s *EntitlementService) Verify(identifier string) (VerifyResult, error) {
	id := normalizeID(identifier)
	if id == "" {
		return VerifyResult{}, errors.ErrGrantNotFound
	}
	grant, err := s.repo.Get(id)
	if err != nil {
		return VerifyResult{}, err
	}

	switch grant.Status {
	case domain.GrantRevoked:
		return VerifyResult{}, errors.ErrGrantRevoked
	case domain.GrantDisabled:
		return VerifyResult{}, errors.ErrGrantDisabled
	case domain.GrantExpired:
		return VerifyResult{}, errors.ErrGrantExpired
	}

	now := s.clock.Now()
	if grant.ExpireIfDue(now) {
		// Persist the transition so the next verify still reports Expired.
		if err := s.repo.Put(grant); err != nil {
			return VerifyResult{}, fmt.Errorf("persist expiry of %s: %w", id, err)
		}
		return VerifyResult{}, errors.ErrGrantExpired
	}

	grant.Touch(now)
	if err := s.repo.Put(grant); err != nil {
		return VerifyResult{}, fmt.Errorf("persist usage of %s: %w", id, err)
	}

	return VerifyResult{
		Grant:         grant,
		Remaining:     grant.Remaining(now),
		DaysRemaining: grant.DaysRemaining(now),
	}, nil
}

// Create mints new grants. Key grants get opaque uuid identifiers;
// account grants carry the normalized account identifier.
func (s *EntitlementService) Create(req CreateRequest) ([]domain.Grant, error) {
	if req.Kind == "" {
		req.Kind = domain.KindKey
	}
	if req.Kind == domain.KindAccount {
		req.Count = 1
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidValue, err)
	}

	now := s.clock.Now()
	grants := make([]domain.Grant, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		id := uuid.NewString()
		if req.Kind == domain.KindAccount {
			id = normalizeID(req.Account)
		}
		grant := domain.NewGrant(id, req.Kind, now, req.Months)
		if err := s.repo.Put(grant); err != nil {
			return grants, fmt.Errorf("persist grant %s: %w", id, err)
		}
		grants = append(grants, grant)
	}
	s.log.Info("grants created", "count", len(grants), "months", req.Months, "kind", req.Kind)
	return grants, nil
}

// Extend pushes the expiry out from max(currentExpiry, now) and brings an
// expired grant back to active.
func (s *EntitlementService) Extend(identifier string, months int) (domain.Grant, error) {
	if months < 1 {
		return domain.Grant{}, fmt.Errorf("%w: months must be positive", errors.ErrInvalidValue)
	}
	grant, err := s.repo.Get(normalizeID(identifier))
	if err != nil {
		return domain.Grant{}, err
	}
	now := s.clock.Now()
	grant.ExpireIfDue(now)
	grant.Extend(now, months)
	if err := s.repo.Put(grant); err != nil {
		return domain.Grant{}, fmt.Errorf("persist extension of %s: %w", grant.ID, err)
	}
	s.log.Info("grant extended", "id", grant.ID, "expires_at", grant.ExpiresAt)
	return grant, nil
}

func (s *EntitlementService) Revoke(identifier string) (domain.Grant, error) {
	return s.setStatus(identifier, domain.GrantRevoked)
}

func (s *EntitlementService) Disable(identifier string) (domain.Grant, error) {
	return s.setStatus(identifier, domain.GrantDisabled)
}

// Enable turns a disabled or revoked grant back on. A grant already past
// its expiry cannot be enabled; extend it first.
func (s *EntitlementService) Enable(identifier string) (domain.Grant, error) {
	grant, err := s.repo.Get(normalizeID(identifier))
	if err != nil {
		return domain.Grant{}, err
	}
	if s.clock.Now().After(grant.ExpiresAt) {
		return domain.Grant{}, errors.ErrGrantStillExpired
	}
	grant.Status = domain.GrantActive
	if err := s.repo.Put(grant); err != nil {
		return domain.Grant{}, fmt.Errorf("persist enable of %s: %w", grant.ID, err)
	}
	return grant, nil
}

// Delete is permanent and administrator-only.
func (s *EntitlementService) Delete(identifier string) error {
	return s.repo.Delete(normalizeID(identifier))
}

func (s *EntitlementService) SetNotes(identifier, notes string) (domain.Grant, error) {
	grant, err := s.repo.Get(normalizeID(identifier))
	if err != nil {
		return domain.Grant{}, err
	}
	grant.Notes = notes
	if err := s.repo.Put(grant); err != nil {
		return domain.Grant{}, fmt.Errorf("persist notes of %s: %w", grant.ID, err)
	}
	return grant, nil
}

func (s *EntitlementService) List() ([]domain.Grant, error) {
	return s.repo.List()
}

func (s *EntitlementService) Stats() (Stats, error) {
	grants, err := s.repo.List()
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Total: len(grants),
		ByStatus: lo.CountValuesBy(grants, func(g domain.Grant) domain.GrantStatus {
			return g.Status
		}),
	}, nil
}

// ExpireOverdue persists the active -> expired transition for every grant
// past its expiry. Called by the periodic sweep.
func (s *EntitlementService) ExpireOverdue(now time.Time) (int, error) {
	grants, err := s.repo.List()
	if err != nil {
		return 0, err
	}
	expired := 0
	for _, grant := range grants {
		if !grant.ExpireIfDue(now) {
			continue
		}
		if err := s.repo.Put(grant); err != nil {
			return expired, fmt.Errorf("persist expiry of %s: %w", grant.ID, err)
		}
		expired++
	}
	return expired, nil
}

func (s *EntitlementService) setStatus(identifier string, status domain.GrantStatus) (domain.Grant, error) {
	grant, err := s.repo.Get(normalizeID(identifier))
	if err != nil {
		return domain.Grant{}, err
	}
	grant.Status = status
	if err := s.repo.Put(grant); err != nil {
		return domain.Grant{}, fmt.Errorf("persist status of %s: %w", grant.ID, err)
	}
	s.log.Info("grant status changed", "id", grant.ID, "status", status)
	return grant, nil
}
