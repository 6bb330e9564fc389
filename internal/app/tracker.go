package app

import (
	"context"
	"fmt"

	"stay_directory/internal/domain"
)

// ReviewTracker remembers which review ids a given client created. It
// is a capability marker only (shows edit/delete controls client-side),
// not authentication: the id list lives in the session cache, keyed by
// an opaque client id.
type ReviewTracker struct {
	cache domain.Cache
}

func NewReviewTracker(c domain.Cache) *ReviewTracker { return &ReviewTracker{cache: c} }

func trackerKey(clientID string) string { return fmt.Sprintf("myreviews:%s", clientID) }

func (t *ReviewTracker) List(ctx context.Context, clientID string) ([]string, error) {
	var ids []string
	if _, err := t.cache.Get(ctx, trackerKey(clientID), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (t *ReviewTracker) Add(ctx context.Context, clientID, reviewID string) error {
	ids, err := t.List(ctx, clientID)
	if err != nil {
		return err
	}
	return t.cache.Set(ctx, trackerKey(clientID), append(ids, reviewID), 0)
}

func (t *ReviewTracker) Remove(ctx context.Context, clientID, reviewID string) error {
	ids, err := t.List(ctx, clientID)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != reviewID {
			kept = append(kept, id)
		}
	}
	return t.cache.Set(ctx, trackerKey(clientID), kept, 0)
}
