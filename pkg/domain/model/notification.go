package model

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnknownChannel       = errors.New("unknown notification channel")
	ErrInvalidDevicePattern = errors.New("invalid device id pattern")
)

type NotificationChannel int

const (
	Email NotificationChannel = iota
	Push
)

func (c NotificationChannel) String() string {
	switch c {
	case Email:
		return "email"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// ParseNotificationChannel maps a configured channel name to its kind.
func ParseNotificationChannel(name string) (NotificationChannel, error) {
	switch name {
	case "email":
		return Email, nil
	case "push":
		return Push, nil
	default:
		return 0, ErrUnknownChannel
	}
}

type Notification struct {
	ID        uuid.UUID
	Channel   NotificationChannel
	Recipient string
	UserName  string
	Body      string
}

// NotificationSender is the output sink a channel hands rendered notifications to.
type NotificationSender interface {
	Send(notification Notification) error
}
