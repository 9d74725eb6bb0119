package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"show-scheduler/internal/data/entity"
	"show-scheduler/internal/data/repository"
)

// OwnerCacheStore is the slice of the cache the resolver needs.
// Satisfied by cache.OwnerCache.
type OwnerCacheStore interface {
	GetOwner(ctx context.Context, ownerID uuid.UUID) (*entity.TheatreOwner, bool)
	GetOwnerByUser(ctx context.Context, userID uuid.UUID) (*entity.TheatreOwner, bool)
	SetOwner(ctx context.Context, owner *entity.TheatreOwner)
}

// OwnerService resolves the acting theatre owner through an explicit
// fallback chain: owner profile lookup, then the cached owner record,
// then the cached record keyed by user account. The store is
// authoritative; the cached steps only cover store outages and requests
// that arrive with nothing but a user id.
type OwnerService interface {
	Resolve(ctx context.Context, ownerID, userID uuid.UUID) (*entity.TheatreOwner, error)
}

type ownerService struct {
	owners repository.OwnerRepository
	cache  OwnerCacheStore
	log    *zap.Logger
}

func NewOwnerService(owners repository.OwnerRepository, ownerCache OwnerCacheStore, log *zap.Logger) OwnerService {
	return &ownerService{
		owners: owners,
		cache:  ownerCache,
		log:    log.With(zap.String("service", "owner")),
	}
}

func (s *ownerService) Resolve(ctx context.Context, ownerID, userID uuid.UUID) (*entity.TheatreOwner, error) {
	owner, profileErr := s.profileLookup(ctx, ownerID, userID)
	if owner != nil {
		s.cache.SetOwner(ctx, owner)
		return owner, nil
	}
	if profileErr != nil {
		s.log.Warn("Owner profile lookup failed, trying cache", zap.Error(profileErr))
	}

	if ownerID != uuid.Nil {
		if cached, ok := s.cache.GetOwner(ctx, ownerID); ok {
			return cached, nil
		}
	}
	if userID != uuid.Nil {
		if cached, ok := s.cache.GetOwnerByUser(ctx, userID); ok {
			return cached, nil
		}
	}

	// Every step missed: report the store failure if there was one,
	// otherwise the owner genuinely does not exist.
	if profileErr != nil {
		return nil, profileErr
	}
	return nil, nil
}

func (s *ownerService) profileLookup(ctx context.Context, ownerID, userID uuid.UUID) (*entity.TheatreOwner, error) {
	if ownerID != uuid.Nil {
		return s.owners.FindByID(ctx, ownerID)
	}
	if userID != uuid.Nil {
		return s.owners.FindByUserID(ctx, userID)
	}
	return nil, nil
}
