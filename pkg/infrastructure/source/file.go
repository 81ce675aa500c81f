package source

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"newsletter/pkg/domain/model"
)

var ErrUnsupportedFormat = errors.New("unsupported users file format")

type UsersFile struct {
	Users []model.User `json:"users" toml:"users"`
}

// FileUserSource reads users from a JSON or TOML file on every call.
type FileUserSource struct {
	path   string
	decode func(data []byte, v *UsersFile) error
}

func NewFileUserSource(path string) (*FileUserSource, error) {
	var decode func(data []byte, v *UsersFile) error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = func(data []byte, v *UsersFile) error { return json.Unmarshal(data, v) }
	case ".toml":
		decode = func(data []byte, v *UsersFile) error { return toml.Unmarshal(data, v) }
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}

	return &FileUserSource{path: path, decode: decode}, nil
}

func (s *FileUserSource) Users(_ context.Context) ([]model.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(model.ErrSourceUnavailable, "read %s: %v", s.path, err)
	}

	var file UsersFile
	if err := s.decode(data, &file); err != nil {
		return nil, errors.Wrapf(model.ErrSourceUnavailable, "decode %s: %v", s.path, err)
	}

	if file.Users == nil {
		return []model.User{}, nil
	}
	return file.Users, nil
}
