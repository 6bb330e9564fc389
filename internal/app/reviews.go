package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stay_directory/internal/domain"
)

// AddReview appends a server-assigned review to the property, derives
// the new rating, and records the id in the caller's contributed list.
// Returns the updated property and the new review.
func (s *CatalogService) AddReview(ctx context.Context, clientID, propertyID string, r domain.Review) (domain.Property, domain.Review, error) {
	if err := r.ValidateRating(); err != nil {
		return domain.Property{}, domain.Review{}, err
	}
	r.ID = "rev-" + uuid.NewString()

	if err := s.repo.AppendReview(ctx, propertyID, r); err != nil {
		return domain.Property{}, domain.Review{}, err
	}
	p, err := s.recomputeRating(ctx, propertyID)
	if err != nil {
		return domain.Property{}, domain.Review{}, err
	}

	if err := s.tracker.Add(ctx, clientID, r.ID); err != nil {
		// local capability marker only, the review itself is persisted
		log.Warn().Err(err).Str("review", r.ID).Msg("review tracking update failed")
	}
	s.refreshCache(ctx, p)
	return p, r, nil
}

// UpdateReview replaces the review matching its id, then re-derives the
// rating. Missing property or review id is ErrNotFound.
func (s *CatalogService) UpdateReview(ctx context.Context, propertyID string, r domain.Review) (domain.Property, error) {
	if err := r.ValidateRating(); err != nil {
		return domain.Property{}, err
	}
	p, err := s.repo.Get(ctx, propertyID)
	if err != nil {
		return domain.Property{}, err
	}
	replaced := false
	for i := range p.Reviews {
		if p.Reviews[i].ID == r.ID {
			p.Reviews[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		return domain.Property{}, domain.ErrNotFound
	}
	p.Rating = AverageRating(p.Reviews)
	if err := s.repo.Upsert(ctx, p); err != nil {
		return domain.Property{}, err
	}
	s.refreshCache(ctx, p)
	return p, nil
}

// DeleteReview removes the review, re-derives the rating, and forgets
// the id in the caller's contributed list.
func (s *CatalogService) DeleteReview(ctx context.Context, clientID, propertyID, reviewID string) (domain.Property, error) {
	p, err := s.repo.Get(ctx, propertyID)
	if err != nil {
		return domain.Property{}, err
	}
	kept := make([]domain.Review, 0, len(p.Reviews))
	for _, rv := range p.Reviews {
		if rv.ID != reviewID {
			kept = append(kept, rv)
		}
	}
	if len(kept) == len(p.Reviews) {
		return domain.Property{}, domain.ErrNotFound
	}
	p.Reviews = kept
	p.Rating = AverageRating(p.Reviews)
	if err := s.repo.Upsert(ctx, p); err != nil {
		return domain.Property{}, err
	}
	if err := s.tracker.Remove(ctx, clientID, reviewID); err != nil {
		log.Warn().Err(err).Str("review", reviewID).Msg("review tracking removal failed")
	}
	s.refreshCache(ctx, p)
	return p, nil
}

// AddAnnouncement appends an announcement with a server-assigned id and
// a creation timestamp that is immutable from then on.
func (s *CatalogService) AddAnnouncement(ctx context.Context, propertyID, title, content string) (domain.Property, error) {
	a := domain.Announcement{
		ID:        "ann-" + uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AppendAnnouncement(ctx, propertyID, a); err != nil {
		return domain.Property{}, err
	}
	p, err := s.repo.Get(ctx, propertyID)
	if err != nil {
		return domain.Property{}, err
	}
	s.refreshCache(ctx, p)
	return p, nil
}

// UpdateAnnouncement replaces title/content; CreatedAt keeps its
// original value regardless of what the caller sends.
func (s *CatalogService) UpdateAnnouncement(ctx context.Context, propertyID string, a domain.Announcement) (domain.Property, error) {
	p, err := s.repo.Get(ctx, propertyID)
	if err != nil {
		return domain.Property{}, err
	}
	replaced := false
	for i := range p.Announcements {
		if p.Announcements[i].ID == a.ID {
			a.CreatedAt = p.Announcements[i].CreatedAt
			p.Announcements[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		return domain.Property{}, domain.ErrNotFound
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return domain.Property{}, err
	}
	s.refreshCache(ctx, p)
	return p, nil
}

func (s *CatalogService) DeleteAnnouncement(ctx context.Context, propertyID, announcementID string) (domain.Property, error) {
	p, err := s.repo.Get(ctx, propertyID)
	if err != nil {
		return domain.Property{}, err
	}
	kept := make([]domain.Announcement, 0, len(p.Announcements))
	for _, a := range p.Announcements {
		if a.ID != announcementID {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(p.Announcements) {
		return domain.Property{}, domain.ErrNotFound
	}
	p.Announcements = kept
	if err := s.repo.Upsert(ctx, p); err != nil {
		return domain.Property{}, err
	}
	s.refreshCache(ctx, p)
	return p, nil
}

// recomputeRating reads the property back after an append and persists
// the freshly derived rating.
func (s *CatalogService) recomputeRating(ctx context.Context, propertyID string) (domain.Property, error) {
	p, err := s.repo.Get(ctx, propertyID)
	if err != nil {
		return domain.Property{}, err
	}
	p.Rating = AverageRating(p.Reviews)
	if err := s.repo.UpdateRating(ctx, propertyID, p.Rating); err != nil {
		return domain.Property{}, err
	}
	return p, nil
}
