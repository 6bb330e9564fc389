package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"stay_directory/internal/adapters/observability"
	"stay_directory/internal/app"
	"stay_directory/internal/domain"
)

type Handlers struct {
	Catalog *app.CatalogService
	Auth    *app.Auth
	Gen     domain.DescriptionGenerator // nil when no API key is configured
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/properties", h.listProperties)
	s.mux.Get("/v1/properties/{id}", h.getProperty)
	s.mux.Put("/v1/properties/{id}", h.upsertProperty)
	s.mux.Delete("/v1/properties/{id}", h.deleteProperty)

	s.mux.Post("/v1/properties/{id}/reviews", h.addReview)
	s.mux.Put("/v1/properties/{id}/reviews/{reviewID}", h.updateReview)
	s.mux.Delete("/v1/properties/{id}/reviews/{reviewID}", h.deleteReview)

	s.mux.Post("/v1/properties/{id}/announcements", h.addAnnouncement)
	s.mux.Put("/v1/properties/{id}/announcements/{announcementID}", h.updateAnnouncement)
	s.mux.Delete("/v1/properties/{id}/announcements/{announcementID}", h.deleteAnnouncement)

	s.mux.Get("/v1/my-reviews", h.myReviews)
	s.mux.Post("/v1/admin/login", h.adminLogin)
	s.mux.Post("/v1/owner/login", h.ownerLogin)
	s.mux.Post("/v1/descriptions", h.generateDescription)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps the domain taxonomy onto status codes: validation
// 400, missing id 404, bad credentials 401, storage failure 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid credentials")
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "operation failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// clientID identifies the review-tracking scope. Not authentication:
// any opaque header value works, falling back to the caller's IP.
func clientID(r *http.Request) string {
	if id := r.Header.Get("X-Client-ID"); id != "" {
		return id
	}
	return remoteIP(r)
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// ---- catalog ----

type propertyResult struct {
	domain.Property
	DistanceKM *float64 `json:"distanceKm,omitempty"`
}

// criteriaFromQuery builds the single search criterion; lat+lon beats
// region beats area beats tag, mirroring the engine's precedence.
func criteriaFromQuery(r *http.Request) (domain.SearchCriteria, error) {
	q := r.URL.Query()
	var c domain.SearchCriteria

	latS, lonS := q.Get("lat"), q.Get("lon")
	if latS != "" || lonS != "" {
		lat, err1 := strconv.ParseFloat(latS, 64)
		lon, err2 := strconv.ParseFloat(lonS, 64)
		if err1 != nil || err2 != nil {
			return c, &domain.ValidationError{Field: "lat/lon", Reason: "both must be valid numbers"}
		}
		c.Location = &domain.GeoPoint{Latitude: lat, Longitude: lon}
	}
	c.Region = q.Get("region")
	c.Area = q.Get("area")
	if tag := q.Get("tag"); tag != "" {
		t := domain.Tag(tag)
		if !t.Valid() {
			return c, &domain.ValidationError{Field: "tag", Reason: "unknown tag " + tag}
		}
		c.Tag = t
	}
	return c, nil
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	results, err := h.Catalog.Search(r.Context(), criteria)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]propertyResult, 0, len(results))
	for _, res := range results {
		out = append(out, propertyResult{Property: res.Property, DistanceKM: res.DistanceKM})
	}

	etag, body := calcETagAndBody(out)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listProperties body")
	}
}

// getProperty is select-for-view: the view count is bumped before the
// record is returned, so no ETag short-circuit here.
func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Catalog.GetAndTouch(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	observability.ObserveView(id)
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) upsertProperty(w http.ResponseWriter, r *http.Request) {
	var p domain.Property
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	// the path id wins over whatever the body carries
	p.ID = chi.URLParam(r, "id")
	saved, err := h.Catalog.Upsert(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handlers) deleteProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Catalog.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

// ---- reviews ----

func (h *Handlers) addReview(w http.ResponseWriter, r *http.Request) {
	var rv domain.Review
	if err := json.NewDecoder(r.Body).Decode(&rv); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	p, created, err := h.Catalog.AddReview(r.Context(), clientID(r), chi.URLParam(r, "id"), rv)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"updatedProperty": p, "newReview": created})
}

func (h *Handlers) updateReview(w http.ResponseWriter, r *http.Request) {
	var rv domain.Review
	if err := json.NewDecoder(r.Body).Decode(&rv); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	rv.ID = chi.URLParam(r, "reviewID")
	p, err := h.Catalog.UpdateReview(r.Context(), chi.URLParam(r, "id"), rv)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.DeleteReview(r.Context(), clientID(r), chi.URLParam(r, "id"), chi.URLParam(r, "reviewID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"updatedProperty": p})
}

func (h *Handlers) myReviews(w http.ResponseWriter, r *http.Request) {
	ids, err := h.Catalog.MyReviewIDs(r.Context(), clientID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, ids)
}

// ---- announcements ----

type announcementBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handlers) addAnnouncement(w http.ResponseWriter, r *http.Request) {
	var b announcementBody
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	p, err := h.Catalog.AddAnnouncement(r.Context(), chi.URLParam(r, "id"), b.Title, b.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handlers) updateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var b announcementBody
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	a := domain.Announcement{ID: chi.URLParam(r, "announcementID"), Title: b.Title, Content: b.Content}
	p, err := h.Catalog.UpdateAnnouncement(r.Context(), chi.URLParam(r, "id"), a)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) deleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.DeleteAnnouncement(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "announcementID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ---- auth ----

func (h *Handlers) adminLogin(w http.ResponseWriter, r *http.Request) {
	var b struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	if err := h.Auth.AdminLogin(b.Password); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ownerLogin(w http.ResponseWriter, r *http.Request) {
	var b struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	p, err := h.Catalog.OwnerLogin(r.Context(), b.Username, b.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ---- description generation ----

func (h *Handlers) generateDescription(w http.ResponseWriter, r *http.Request) {
	if h.Gen == nil {
		writeProblem(w, http.StatusServiceUnavailable, "Unavailable", "description generation is not configured")
		return
	}
	var b struct {
		Name     string              `json:"name"`
		Type     domain.PropertyType `json:"type"`
		Keywords string              `json:"keywords"`
	}
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	text, err := h.Gen.GenerateDescription(r.Context(), b.Name, b.Type, b.Keywords)
	if err != nil {
		if domain.IsValidation(err) {
			writeError(w, err)
			return
		}
		log.Error().Err(err).Msg("description generation failed")
		writeProblem(w, http.StatusBadGateway, "Generation Failed", "text generation service failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"description": text})
}
