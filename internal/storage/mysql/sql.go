package mysql

// The catalog is stored document-style: one JSON doc per property.
// created_at is fixed at insert time and drives the list ordering, so a
// new id lands at the head of the catalog and an updated one keeps its
// place.

const upsertPropertySQL = `
INSERT INTO properties (id, doc)
VALUES (?, CAST(? AS JSON))
ON DUPLICATE KEY UPDATE
  doc        = JSON_MERGE_PATCH(properties.doc, VALUES(doc)),
  updated_at = CURRENT_TIMESTAMP(6)
`

const getPropertySQL = `
SELECT doc FROM properties WHERE id = ?
`

const listPropertiesSQL = `
SELECT id, doc FROM properties ORDER BY created_at DESC, id DESC
`

const deletePropertySQL = `
DELETE FROM properties WHERE id = ?
`

// Appends guard against a missing or null embedded list before the
// atomic JSON_ARRAY_APPEND.
const appendReviewSQL = `
UPDATE properties
SET doc = JSON_ARRAY_APPEND(
  JSON_SET(doc, '$.reviews', COALESCE(JSON_EXTRACT(doc, '$.reviews'), JSON_ARRAY())),
  '$.reviews', CAST(? AS JSON)),
  updated_at = CURRENT_TIMESTAMP(6)
WHERE id = ?
`

const appendAnnouncementSQL = `
UPDATE properties
SET doc = JSON_ARRAY_APPEND(
  JSON_SET(doc, '$.announcements', COALESCE(JSON_EXTRACT(doc, '$.announcements'), JSON_ARRAY())),
  '$.announcements', CAST(? AS JSON)),
  updated_at = CURRENT_TIMESTAMP(6)
WHERE id = ?
`

const updateRatingSQL = `
UPDATE properties
SET doc = JSON_SET(doc, '$.rating', ?), updated_at = CURRENT_TIMESTAMP(6)
WHERE id = ?
`
