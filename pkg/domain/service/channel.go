package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"newsletter/pkg/domain/model"
)

const (
	EmailSentText = "Email %s has been sent to user %s"
	PushSentText  = "Push notification has been sent to user %s with device_id %s"
)

type Event interface{ Type() string }
type EventDispatcher interface{ Dispatch(event Event) error }

// Channel sends at most one notification per identity over everything its
// source returns. Repeated Send calls on the same channel only deliver to
// identities it has not seen yet.
type Channel interface {
	Kind() model.NotificationChannel
	Send(ctx context.Context) (Report, error)
	IsSent(user model.User) bool
}

// Report counts the outcome of a single Send.
type Report struct {
	Channel          model.NotificationChannel
	Sent             int
	SkippedNoName    int
	SkippedInvalid   int
	SkippedDuplicate int
	Failed           int
}

// ChannelRules is what varies between channels. Adding a channel means
// writing a validator and a constructor that fills these in.
type ChannelRules struct {
	Kind      model.NotificationChannel
	Validator Validator
	IsValid   func(user model.User) bool
	Identity  func(user model.User) string
	Render    func(user model.User) string
}

func NewEmailChannel(source model.UserSource, validator *EmailValidator, sender model.NotificationSender, dispatcher EventDispatcher) Channel {
	return NewChannel(ChannelRules{
		Kind:      model.Email,
		Validator: validator,
		IsValid:   validator.HasValidEmail,
		Identity:  func(user model.User) string { return user.Email },
		Render: func(user model.User) string {
			return fmt.Sprintf(EmailSentText, user.Email, user.Name)
		},
	}, source, sender, dispatcher)
}

func NewPushChannel(source model.UserSource, validator *PushValidator, sender model.NotificationSender, dispatcher EventDispatcher) Channel {
	return NewChannel(ChannelRules{
		Kind:      model.Push,
		Validator: validator,
		IsValid:   validator.HasValidDeviceID,
		Identity:  func(user model.User) string { return user.DeviceID },
		Render: func(user model.User) string {
			return fmt.Sprintf(PushSentText, user.Name, user.DeviceID)
		},
	}, source, sender, dispatcher)
}

// NewChannel builds a channel from its rules. A nil dispatcher discards events.
func NewChannel(rules ChannelRules, source model.UserSource, sender model.NotificationSender, dispatcher EventDispatcher) Channel {
	if dispatcher == nil {
		dispatcher = discardEvents{}
	}
	return &channel{
		rules:      rules,
		source:     source,
		sender:     sender,
		dispatcher: dispatcher,
		ledger:     NewDeliveryLedger(),
	}
}

type discardEvents struct{}

func (discardEvents) Dispatch(Event) error { return nil }

type channel struct {
	rules      ChannelRules
	source     model.UserSource
	sender     model.NotificationSender
	dispatcher EventDispatcher
	ledger     *DeliveryLedger
}

func (c *channel) Kind() model.NotificationChannel {
	return c.rules.Kind
}

func (c *channel) IsSent(user model.User) bool {
	identity := c.rules.Identity(user)
	if identity == "" {
		return false
	}
	return c.ledger.Contains(identity)
}

func (c *channel) Send(ctx context.Context) (Report, error) {
	report := Report{Channel: c.rules.Kind}

	users, err := c.source.Users(ctx)
	if err != nil {
		return report, errors.Wrapf(err, "load users for %s channel", c.rules.Kind)
	}

	for _, user := range users {
		c.deliver(user, &report)
	}

	log.WithFields(log.Fields{
		"channel":           c.rules.Kind.String(),
		"sent":              report.Sent,
		"skipped_no_name":   report.SkippedNoName,
		"skipped_invalid":   report.SkippedInvalid,
		"skipped_duplicate": report.SkippedDuplicate,
		"failed":            report.Failed,
		"ledger_size":       c.ledger.Len(),
	}).Debug("channel run finished")

	return report, nil
}

func (c *channel) deliver(user model.User, report *Report) {
	if !c.rules.Validator.HasName(user) {
		report.SkippedNoName++
		c.skip(model.SkippedNoName)
		return
	}
	if !c.rules.IsValid(user) {
		report.SkippedInvalid++
		c.skip(model.SkippedInvalid)
		return
	}
	if c.IsSent(user) {
		report.SkippedDuplicate++
		c.skip(model.SkippedDuplicate)
		return
	}

	identity := c.rules.Identity(user)
	notification := model.Notification{
		ID:        uuid.New(),
		Channel:   c.rules.Kind,
		Recipient: identity,
		UserName:  user.Name,
		Body:      c.rules.Render(user),
	}

	if err := c.sender.Send(notification); err != nil {
		report.Failed++
		log.WithError(err).WithFields(log.Fields{
			"channel":         c.rules.Kind.String(),
			"notification_id": notification.ID.String(),
		}).Warn("notification was not delivered")
		_ = c.dispatcher.Dispatch(model.NotificationFailed{
			NotificationID: notification.ID, Channel: c.rules.Kind, Recipient: identity, Reason: err.Error(),
		})
		return
	}

	c.ledger.Record(identity)
	report.Sent++
	_ = c.dispatcher.Dispatch(model.NotificationSent{
		NotificationID: notification.ID, Channel: c.rules.Kind, Recipient: identity,
	})
}

func (c *channel) skip(reason model.SkipReason) {
	_ = c.dispatcher.Dispatch(model.NotificationSkipped{Channel: c.rules.Kind, Reason: reason})
}
