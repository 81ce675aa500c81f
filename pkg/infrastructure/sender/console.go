package sender

import (
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"

	"newsletter/pkg/domain/model"
)

// ConsoleSender prints every notification body on its own line.
type ConsoleSender struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleSender(out io.Writer) *ConsoleSender {
	return &ConsoleSender{out: out}
}

func (s *ConsoleSender) Send(notification model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintln(s.out, notification.Body); err != nil {
		return errors.Wrapf(err, "write %s notification %s", notification.Channel, notification.ID)
	}
	return nil
}
