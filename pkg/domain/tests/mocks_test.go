package tests

import (
	"context"
	"errors"

	"newsletter/pkg/domain/model"
	"newsletter/pkg/domain/service"
)

func referenceUsers() []model.User {
	return []model.User{
		{Name: "Ivan", Email: "ivan@test.com", DeviceID: "Ks[dqweer4"},
		{Name: "Peter", Email: "peter@test.com"},
		{Name: "Mark", DeviceID: "Ks[dqweer4"},
		{Name: "Nina", Email: "..."},
		{Name: "Luke", DeviceID: "vfehlfg43g"},
		{Name: "Zerg", DeviceID: ""},
		{Email: "...", DeviceID: ""},
	}
}

type mockUserSource struct {
	users []model.User
	err   error
	calls int
}

func (m *mockUserSource) Users(_ context.Context) ([]model.User, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

type mockNotificationSender struct {
	sent    []model.Notification
	failFor map[string]bool
}

func (m *mockNotificationSender) Send(n model.Notification) error {
	if m.failFor[n.Recipient] {
		return errors.New("sink unavailable")
	}
	m.sent = append(m.sent, n)
	return nil
}

func (m *mockNotificationSender) Bodies() []string {
	bodies := make([]string, 0, len(m.sent))
	for _, n := range m.sent {
		bodies = append(bodies, n.Body)
	}
	return bodies
}

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}
func (m *mockEventDispatcher) Reset() { m.events = nil }

func (m *mockEventDispatcher) Count(eventType string) int {
	count := 0
	for _, e := range m.events {
		if e.Type() == eventType {
			count++
		}
	}
	return count
}
