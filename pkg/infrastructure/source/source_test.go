package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter/pkg/domain/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultUserSource(t *testing.T) {
	src := NewDefaultUserSource()

	users, err := src.Users(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 7)
	assert.Equal(t, model.User{Name: "Ivan", Email: "ivan@test.com", DeviceID: "Ks[dqweer4"}, users[0])
	assert.Equal(t, model.User{Email: "...", DeviceID: ""}, users[6])

	users[0].Name = "Changed"
	again, _ := src.Users(context.Background())
	assert.Equal(t, "Ivan", again[0].Name)
}

func TestFileUserSource(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		path := writeFile(t, "users.json", `{"users": [
			{"name": "Ivan", "email": "ivan@test.com", "device_id": "Ks[dqweer4"},
			{"name": "Peter", "email": "peter@test.com"},
			{"email": "..."}
		]}`)
		src, err := NewFileUserSource(path)
		require.NoError(t, err)

		users, err := src.Users(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []model.User{
			{Name: "Ivan", Email: "ivan@test.com", DeviceID: "Ks[dqweer4"},
			{Name: "Peter", Email: "peter@test.com"},
			{Email: "..."},
		}, users)
	})

	t.Run("TOML", func(t *testing.T) {
		path := writeFile(t, "users.toml", `
[[users]]
name = "Luke"
device_id = "vfehlfg43g"

[[users]]
name = "Zerg"
device_id = ""
`)
		src, err := NewFileUserSource(path)
		require.NoError(t, err)

		users, err := src.Users(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []model.User{
			{Name: "Luke", DeviceID: "vfehlfg43g"},
			{Name: "Zerg"},
		}, users)
	})

	t.Run("Empty file is an empty result", func(t *testing.T) {
		src, err := NewFileUserSource(writeFile(t, "users.json", `{}`))
		require.NoError(t, err)

		users, err := src.Users(context.Background())

		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("Missing file", func(t *testing.T) {
		src, err := NewFileUserSource(filepath.Join(t.TempDir(), "absent.json"))
		require.NoError(t, err)

		_, err = src.Users(context.Background())
		assert.ErrorIs(t, err, model.ErrSourceUnavailable)
	})

	t.Run("Malformed file", func(t *testing.T) {
		src, err := NewFileUserSource(writeFile(t, "users.json", `{"users": [`))
		require.NoError(t, err)

		_, err = src.Users(context.Background())
		assert.ErrorIs(t, err, model.ErrSourceUnavailable)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		_, err := NewFileUserSource("users.csv")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
