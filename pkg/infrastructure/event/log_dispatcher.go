package event

import (
	"github.com/sirupsen/logrus"

	"newsletter/pkg/domain/model"
	"newsletter/pkg/domain/service"
)

// LogDispatcher writes domain events to a logrus logger.
// Sends are logged at info level, skips at debug.
type LogDispatcher struct {
	logger logrus.FieldLogger
}

func NewLogDispatcher(logger logrus.FieldLogger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(event service.Event) error {
	entry := d.logger.WithField("event", event.Type())

	switch e := event.(type) {
	case model.NotificationSent:
		entry.WithFields(logrus.Fields{
			"notification_id": e.NotificationID.String(),
			"channel":         e.Channel.String(),
			"recipient":       e.Recipient,
		}).Info("notification sent")
	case model.NotificationFailed:
		entry.WithFields(logrus.Fields{
			"notification_id": e.NotificationID.String(),
			"channel":         e.Channel.String(),
			"recipient":       e.Recipient,
			"reason":          e.Reason,
		}).Warn("notification failed")
	case model.NotificationSkipped:
		entry.WithFields(logrus.Fields{
			"channel": e.Channel.String(),
			"reason":  e.Reason.String(),
		}).Debug("notification skipped")
	default:
		entry.Debug("unhandled event")
	}
	return nil
}
