package models

import "time"

type URL struct {
	ID        int64      `json:"id" db:"id"`
	ShortCode string     `json:"short_code" db:"short_code"`
	LongURL   string     `json:"long_url" db:"long_url"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" db:"expires_at"`
}

// Expired reports whether u has an expiry at or before now.
func (u *URL) Expired(now time.Time) bool {
	return u.ExpiresAt != nil && !now.Before(*u.ExpiresAt)
}

type ShortenRequest struct {
	URL string `json:"url"`
	// ExpiresIn is a lifetime in seconds; zero means the link never expires.
	ExpiresIn int64 `json:"expires_in,omitempty"`
}

type ShortenResponse struct {
	ShortCode string     `json:"short_code"`
	ShortURL  string     `json:"short_url"`
	LongURL   string     `json:"long_url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// EncodeRequest carries either numbers or a hex string, not both.
type EncodeRequest struct {
	Numbers []int64 `json:"numbers,omitempty"`
	Hex     string  `json:"hex,omitempty"`
}

type EncodeResponse struct {
	Hash string `json:"hash"`
}

type DecodeRequest struct {
	Hash string `json:"hash"`
	// Hex asks for the hex form produced by EncodeRequest.Hex.
	Hex bool `json:"hex,omitempty"`
}

type DecodeResponse struct {
	Numbers []int64 `json:"numbers,omitempty"`
	Hex     string  `json:"hex,omitempty"`
}
