// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Vote kinds
const (
	VoteBeen VoteKind = "been"
	VoteGood VoteKind = "good"
)

type VoteKind string

func (k VoteKind) Valid() bool {
	return k == VoteBeen || k == VoteGood
}

// Request types

type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=15"`
	Password string `json:"password" validate:"required,max=72"` // bcrypt rejects anything past 72 bytes
}

type CreateSpotRequest struct {
	Name    string   `json:"name" validate:"required,max=255"`
	Address string   `json:"address" validate:"max=255"`
	Lat     *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng     *float64 `json:"lng" validate:"omitempty,longitude"`
	Note    *string  `json:"note" validate:"omitempty,max=200"`
	Date    Date     `json:"date" validate:"required"`
}

type UpdateNoteRequest struct {
	Note *string `json:"note" validate:"omitempty,max=200"`
}

// Response types

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type UpdateNoteResponse struct {
	Note *string `json:"note"`
}

type DeleteSpotResponse struct {
	Removed string `json:"removed"`
}

type VoteResponse struct {
	UserID int64    `json:"user_id"`
	SpotID int64    `json:"spot_id"`
	Kind   VoteKind `json:"kind"`
}

// VoteStatus reports the caller's votes on one spot.
type VoteStatus struct {
	SpotID    int64 `json:"spot_id"`
	BeenHere  bool  `json:"beenHere"`
	LikedHere bool  `json:"likedHere"`
}

// UserVotes lists every spot the caller has voted on, per kind.
type UserVotes struct {
	BeenArray []int64 `json:"beenArray"`
	GoodArray []int64 `json:"goodArray"`
}

// Domain types

type User struct {
	ID           int64     `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Spot is a stored row as written by the create endpoint.
type Spot struct {
	ID      int64    `json:"spot_id"`
	Name    string   `json:"name"`
	UserID  int64    `json:"user_id"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Note    *string  `json:"note"`
	Date    Date     `json:"date"`
}

// SpotSummary is the public read projection: owner name and vote counts
// instead of the owner id.
type SpotSummary struct {
	ID            int64    `json:"spot_id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
	Note          *string  `json:"note"`
	Date          Date     `json:"date"`
	Username      string   `json:"username"`
	BeenHereCount int64    `json:"beenHereCount"`
	GoodSpotCount int64    `json:"goodSpotCount"`
}

// Date is a calendar date with no time of day. It marshals as YYYY-MM-DD
// and also accepts RFC 3339 timestamps, keeping only the date part.
type Date struct {
	time.Time
}

const DateLayout = time.DateOnly

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return NewDate(t.Date()), nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Date())
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
	case []byte:
		return d.Scan(string(v))
	case nil:
		*d = Date{}
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
