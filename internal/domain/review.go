package domain

import "time"

// Review lives inside its owning Property's document; ids are
// server-assigned and never reused.
type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"` // 1..5
	Comment string `json:"comment"`
}

func (r Review) ValidateRating() error {
	if r.Rating < 1 || r.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	return nil
}

// Announcement is embedded in its Property. CreatedAt is stamped once at
// creation and survives updates unchanged.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
