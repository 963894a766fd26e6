package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// codec encodes and decodes the persisted line list.
type codec struct {
	name      string
	marshal   func([]string) ([]byte, error)
	unmarshal func([]byte, *[]string) error
}

var jsonCodec = codec{
	name: BackendJSON,
	marshal: func(data []string) ([]byte, error) {
		b, err := json.MarshalIndent(data, "", "    ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	},
	unmarshal: func(b []byte, out *[]string) error { return json.Unmarshal(b, out) },
}

var yamlCodec = codec{
	name:      BackendYAML,
	marshal:   func(data []string) ([]byte, error) { return yaml.Marshal(data) },
	unmarshal: func(b []byte, out *[]string) error { return yaml.Unmarshal(b, out) },
}

// FileStorage keeps the lines in a single file.
type FileStorage struct {
	path  string
	codec codec
}

// NewJSONStorage stores the lines as an indented JSON array.
func NewJSONStorage(path string) *FileStorage {
	return &FileStorage{path: path, codec: jsonCodec}
}

// NewYAMLStorage stores the lines as a YAML sequence.
func NewYAMLStorage(path string) *FileStorage {
	return &FileStorage{path: path, codec: yamlCodec}
}

// Path returns the backing file path.
func (s *FileStorage) Path() string { return s.path }

func (s *FileStorage) Save(ctx context.Context, data []string) error {
	if data == nil {
		data = []string{}
	}
	b, err := s.codec.marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.codec.name, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
	}

	// A failed save leaves the previous file in place.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStorage) Load(ctx context.Context) ([]string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", s.path, ErrNotSaved)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var data []string
	if err := s.codec.unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if data == nil {
		data = []string{}
	}
	return data, nil
}

func (s *FileStorage) Close() error { return nil }
