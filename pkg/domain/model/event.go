package model

import "github.com/google/uuid"

type SkipReason int

const (
	SkippedNoName SkipReason = iota
	SkippedInvalid
	SkippedDuplicate
)

func (r SkipReason) String() string {
	switch r {
	case SkippedNoName:
		return "no_name"
	case SkippedInvalid:
		return "invalid"
	case SkippedDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

type NotificationSent struct {
	NotificationID uuid.UUID
	Channel        NotificationChannel
	Recipient      string
}

func (e NotificationSent) Type() string { return "NotificationSent" }

type NotificationSkipped struct {
	Channel NotificationChannel
	Reason  SkipReason
}

func (e NotificationSkipped) Type() string { return "NotificationSkipped" }

type NotificationFailed struct {
	NotificationID uuid.UUID
	Channel        NotificationChannel
	Recipient      string
	Reason         string
}

func (e NotificationFailed) Type() string { return "NotificationFailed" }
