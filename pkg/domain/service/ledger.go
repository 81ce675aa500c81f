package service

// DeliveryLedger remembers which identities a channel has already notified.
// It belongs to a single channel and is not safe for concurrent use.
type DeliveryLedger struct {
	sent map[string]struct{}
}

func NewDeliveryLedger() *DeliveryLedger {
	return &DeliveryLedger{sent: make(map[string]struct{})}
}

func (l *DeliveryLedger) Contains(identity string) bool {
	_, ok := l.sent[identity]
	return ok
}

// Record is idempotent.
func (l *DeliveryLedger) Record(identity string) {
	l.sent[identity] = struct{}{}
}

func (l *DeliveryLedger) Len() int {
	return len(l.sent)
}
