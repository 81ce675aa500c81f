package source

import (
	"context"

	"newsletter/pkg/domain/model"
)

// StaticUserSource serves a fixed list of users.
type StaticUserSource struct {
	users []model.User
}

func NewStaticUserSource(users []model.User) *StaticUserSource {
	return &StaticUserSource{users: users}
}

// NewDefaultUserSource returns the built-in demo recipients.
func NewDefaultUserSource() *StaticUserSource {
	return NewStaticUserSource([]model.User{
		{Name: "Ivan", Email: "ivan@test.com", DeviceID: "Ks[dqweer4"},
		{Name: "Peter", Email: "peter@test.com"},
		{Name: "Mark", DeviceID: "Ks[dqweer4"},
		{Name: "Nina", Email: "..."},
		{Name: "Luke", DeviceID: "vfehlfg43g"},
		{Name: "Zerg", DeviceID: ""},
		{Email: "...", DeviceID: ""},
	})
}

// Users returns a copy so callers cannot mutate the source.
func (s *StaticUserSource) Users(_ context.Context) ([]model.User, error) {
	users := make([]model.User, len(s.users))
	copy(users, s.users)
	return users, nil
}
