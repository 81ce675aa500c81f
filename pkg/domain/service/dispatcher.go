package service

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Dispatcher runs its channels one after another in registration order.
// A failing channel does not prevent the following ones from running.
type Dispatcher struct {
	channels []Channel
}

func NewDispatcher(channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels}
}

func (d *Dispatcher) Register(channel Channel) {
	d.channels = append(d.channels, channel)
}

func (d *Dispatcher) Channels() []Channel {
	return d.channels
}

func (d *Dispatcher) Run(ctx context.Context) ([]Report, error) {
	var result *multierror.Error
	reports := make([]Report, 0, len(d.channels))

	for _, channel := range d.channels {
		report, err := channel.Send(ctx)
		if err != nil {
			log.WithError(err).WithField("channel", channel.Kind().String()).Error("channel send aborted")
			result = multierror.Append(result, errors.Wrapf(err, "%s channel", channel.Kind()))
			continue
		}
		reports = append(reports, report)
	}

	return reports, result.ErrorOrNil()
}
