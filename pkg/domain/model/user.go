package model

import (
	"context"
	"errors"
)

var (
	ErrSourceUnavailable = errors.New("user source unavailable")
)

// User is a candidate recipient. Any field may be empty; empty means missing.
type User struct {
	Name     string `json:"name" toml:"name"`
	Email    string `json:"email" toml:"email"`
	DeviceID string `json:"device_id" toml:"device_id"`
}

// UserSource returns recipients in a stable order. Retrieval failures wrap
// ErrSourceUnavailable so they are never confused with an empty result.
type UserSource interface {
	Users(ctx context.Context) ([]User, error)
}
