package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"stay_directory/internal/domain"
	"stay_directory/internal/search"
)

const catalogKey = "catalog"

func propertyKey(id string) string { return fmt.Sprintf("property:%s", id) }

// CatalogService owns the property catalog: listing, searching,
// select-for-view, and admin/owner writes. Reads go through the cache;
// every successful mutation replaces the cached document wholesale and
// drops the catalog list key (never a field-by-field merge).
type CatalogService struct {
	repo     domain.PropertyRepository
	cache    domain.Cache
	tracker  *ReviewTracker
	cacheTTL time.Duration
}

func NewCatalogService(r domain.PropertyRepository, c domain.Cache, t *ReviewTracker, ttl time.Duration) *CatalogService {
	return &CatalogService{repo: r, cache: c, tracker: t, cacheTTL: ttl}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Property, error) {
	var out []domain.Property
	if ok, _ := s.cache.Get(ctx, catalogKey, &out); ok {
		return out, nil
	}
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, catalogKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

// Search filters/sorts the full catalog with exactly one criterion.
func (s *CatalogService) Search(ctx context.Context, c domain.SearchCriteria) ([]search.Result, error) {
	catalog, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Search(catalog, c), nil
}

// GetAndTouch returns the property after bumping its view count. The
// increment is best-effort: if the persist fails, the pre-increment
// record is returned and the error is only logged.
func (s *CatalogService) GetAndTouch(ctx context.Context, id string) (domain.Property, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	touched := p
	touched.ViewCount++
	if err := s.repo.Upsert(ctx, touched); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("view count persist failed, returning stale record")
		return p, nil
	}
	s.refreshCache(ctx, touched)
	return touched, nil
}

// Upsert validates and writes a full property document. An unknown id
// inserts at the head of the catalog ordering; an existing id replaces
// the record in place. Returns the stored document.
func (s *CatalogService) Upsert(ctx context.Context, p domain.Property) (domain.Property, error) {
	if err := p.Validate(); err != nil {
		return domain.Property{}, err
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return domain.Property{}, err
	}
	saved, err := s.repo.Get(ctx, p.ID)
	if err != nil {
		return domain.Property{}, err
	}
	s.refreshCache(ctx, saved)
	return saved, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, propertyKey(id))
	_ = s.cache.Del(ctx, catalogKey)
	return nil
}

// OwnerLogin scans the catalog for matching plaintext credentials.
// Credentials are demo-grade data stored on the property document
// itself; there is no hashing on purpose.
func (s *CatalogService) OwnerLogin(ctx context.Context, username, password string) (domain.Property, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return domain.Property{}, err
	}
	for _, p := range catalog {
		if p.OwnerUsername == username && p.OwnerPassword == password {
			return p, nil
		}
	}
	return domain.Property{}, domain.ErrInvalidCredentials
}

func (s *CatalogService) MyReviewIDs(ctx context.Context, clientID string) ([]string, error) {
	return s.tracker.List(ctx, clientID)
}

// refreshCache replaces the cached document wholesale and invalidates
// the list key after a successful mutation.
func (s *CatalogService) refreshCache(ctx context.Context, p domain.Property) {
	_ = s.cache.Set(ctx, propertyKey(p.ID), p, int(s.cacheTTL.Seconds()))
	_ = s.cache.Del(ctx, catalogKey)
}
