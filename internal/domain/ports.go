package domain

import "context"

// PropertyRepository is the document-store boundary. Upsert merges the
// given document into the stored one (missing fields keep their stored
// values); AppendReview/AppendAnnouncement are atomic appends to the
// embedded lists; UpdateRating writes only the derived rating field.
type PropertyRepository interface {
	List(ctx context.Context) ([]Property, error)
	Get(ctx context.Context, id string) (Property, error)
	Upsert(ctx context.Context, p Property) error
	Delete(ctx context.Context, id string) error

	AppendReview(ctx context.Context, propertyID string, r Review) error
	AppendAnnouncement(ctx context.Context, propertyID string, a Announcement) error
	UpdateRating(ctx context.Context, propertyID string, rating float64) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// DescriptionGenerator is the text-generation collaborator. Failures
// never block catalog writes; its output is an ordinary description
// edit handed to Upsert.
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, name string, propertyType PropertyType, keywords string) (string, error)
}
