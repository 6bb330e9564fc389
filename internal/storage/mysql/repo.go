package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"stay_directory/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// storageErr keeps the taxonomy intact: everything the driver throws
// surfaces as domain.ErrStorage with the operation attached.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorage, op, err)
}

// normalize keeps the stored document free of JSON nulls so that the
// merge-patch upsert never deletes a field and the embedded-list
// appends always see arrays.
func normalize(p domain.Property) domain.Property {
	if p.Photos == nil {
		p.Photos = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []domain.Amenity{}
	}
	if p.Reviews == nil {
		p.Reviews = []domain.Review{}
	}
	if p.Announcements == nil {
		p.Announcements = []domain.Announcement{}
	}
	return p
}

func (r *Repo) List(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, listPropertiesSQL)
	if err != nil {
		return nil, storageErr("list properties", err)
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, storageErr("scan property", err)
		}
		var p domain.Property
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, storageErr("decode property "+id, err)
		}
		p.ID = id
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list properties", err)
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (domain.Property, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx, getPropertySQL, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Property{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Property{}, storageErr("get property", err)
	}
	var p domain.Property
	if err := json.Unmarshal(doc, &p); err != nil {
		return domain.Property{}, storageErr("decode property "+id, err)
	}
	p.ID = id
	return p, nil
}

// Upsert inserts a new document or merge-patches the stored one. The
// application always sends full documents, so fields present in the
// payload replace and fields absent keep their stored values.
func (r *Repo) Upsert(ctx context.Context, p domain.Property) error {
	doc, err := json.Marshal(normalize(p))
	if err != nil {
		return storageErr("encode property", err)
	}
	if _, err := r.db.ExecContext(ctx, upsertPropertySQL, p.ID, string(doc)); err != nil {
		return storageErr("upsert property", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deletePropertySQL, id)
	if err != nil {
		return storageErr("delete property", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) AppendReview(ctx context.Context, propertyID string, rv domain.Review) error {
	doc, err := json.Marshal(rv)
	if err != nil {
		return storageErr("encode review", err)
	}
	res, err := r.db.ExecContext(ctx, appendReviewSQL, string(doc), propertyID)
	if err != nil {
		return storageErr("append review", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) AppendAnnouncement(ctx context.Context, propertyID string, a domain.Announcement) error {
	doc, err := json.Marshal(a)
	if err != nil {
		return storageErr("encode announcement", err)
	}
	res, err := r.db.ExecContext(ctx, appendAnnouncementSQL, string(doc), propertyID)
	if err != nil {
		return storageErr("append announcement", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateRating writes only the derived rating field. No affected-rows
// check: rewriting an identical rating reports zero changed rows and
// callers only reach here after a successful read.
func (r *Repo) UpdateRating(ctx context.Context, propertyID string, rating float64) error {
	if _, err := r.db.ExecContext(ctx, updateRatingSQL, rating, propertyID); err != nil {
		return storageErr("update rating", err)
	}
	return nil
}
