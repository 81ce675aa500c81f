package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"newsletter/pkg/domain/model"
	domain "newsletter/pkg/domain/service"
)

var ErrChannelRepeated = errors.New("channel configured more than once")

type Settings struct {
	Channels        []string
	DeviceIDPattern string
}

type NewsletterService interface {
	Channels() []domain.Channel
	Run(ctx context.Context) ([]domain.Report, error)
}

// NewNewsletterService builds one channel per configured name, in order.
// Every channel reads from the same source but keeps its own ledger.
func NewNewsletterService(source model.UserSource, sender model.NotificationSender, events domain.EventDispatcher, settings Settings) (NewsletterService, error) {
	dispatcher := domain.NewDispatcher()
	seen := make(map[model.NotificationChannel]bool)

	for _, name := range settings.Channels {
		kind, err := model.ParseNotificationChannel(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return nil, errors.Wrapf(err, "%q", name)
		}
		if seen[kind] {
			return nil, errors.Wrapf(ErrChannelRepeated, "%q", name)
		}
		seen[kind] = true

		channel, err := newChannel(kind, source, sender, events, settings)
		if err != nil {
			return nil, err
		}
		dispatcher.Register(channel)
	}

	return &newsletterService{dispatcher: dispatcher}, nil
}

func newChannel(kind model.NotificationChannel, source model.UserSource, sender model.NotificationSender, events domain.EventDispatcher, settings Settings) (domain.Channel, error) {
	switch kind {
	case model.Email:
		return domain.NewEmailChannel(source, domain.NewEmailValidator(), sender, events), nil
	case model.Push:
		pattern := settings.DeviceIDPattern
		if pattern == "" {
			pattern = domain.DefaultDeviceIDPattern
		}
		validator, err := domain.NewPushValidatorWithPattern(pattern)
		if err != nil {
			return nil, err
		}
		return domain.NewPushChannel(source, validator, sender, events), nil
	default:
		return nil, model.ErrUnknownChannel
	}
}

type newsletterService struct {
	dispatcher *domain.Dispatcher
}

func (s *newsletterService) Channels() []domain.Channel {
	return s.dispatcher.Channels()
}

func (s *newsletterService) Run(ctx context.Context) ([]domain.Report, error) {
	return s.dispatcher.Run(ctx)
}
