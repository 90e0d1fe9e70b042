package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/penwyp/project-switch/internal/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath determines the format from the file extension.
// Anything that is not .json or .toml is treated as YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Store reads and writes the whole config document at a fixed path.
//
// The document last loaded is kept alongside the typed tree so that keys
// the tree does not model (hand-written notes, settings read by other
// tools) survive a save.
type Store struct {
	path   string
	format Format
	log    *zap.Logger
	mu     sync.Mutex

	rawYAML *yaml.Node
	rawMap  map[string]interface{}
}

// NewStore creates a store for path. A nil logger discards log output.
func NewStore(path string, log *zap.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New(errors.ErrTypeConfig, "config path cannot be empty")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		path:   path,
		format: FormatFromPath(path),
		log:    log,
	}, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Format returns the encoding used for the file.
func (s *Store) Format() Format { return s.format }

// Load reads the config file. It never fails: a missing file yields an
// empty config, and an unreadable or malformed one is logged and replaced
// by an empty config.
func (s *Store) Load() *Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rawYAML, s.rawMap = nil, nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("config file not found, starting empty", zap.String("path", s.path))
			return Empty()
		}
		s.log.Warn("Error loading config, using empty config",
			zap.String("path", s.path),
			zap.Error(err))
		return Empty()
	}

	cfg := &Config{}
	if err := decode(s.format, data, cfg); err != nil {
		s.log.Warn("Error parsing config, using empty config",
			zap.String("path", s.path),
			zap.String("format", string(s.format)),
			zap.Error(err))
		return Empty()
	}

	if err := s.keepRaw(data); err != nil {
		s.log.Debug("config kept without unknown keys", zap.Error(err))
	}

	for _, w := range cfg.Normalize() {
		s.log.Warn("Invalid config entry", zap.String("path", s.path), zap.String("detail", w))
	}
	if cfg.Projects == nil {
		cfg.Projects = []Project{}
	}

	s.log.Debug("config loaded",
		zap.String("path", s.path),
		zap.String("format", string(s.format)),
		zap.Int("projects", len(cfg.Projects)))
	return cfg
}

// Save overwrites the config file with cfg. Keys outside the typed tree
// that were present at Load are written back. A symlinked config file is
// updated in place of its target.
func (s *Store) Save(cfg *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.encode(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrTypeConfig, "failed to marshal config", err)
	}

	target := s.path
	if resolved, err := filepath.EvalSymlinks(s.path); err == nil {
		target = resolved
	}

	// Ensure directory exists
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrTypeConfig, "failed to create config directory", err)
	}

	// Write to temp file then rename so a failed write never truncates the config
	tmpFile := target + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return errors.Wrap(errors.ErrTypeConfig, "failed to write temp config file", err)
	}
	if err := os.Rename(tmpFile, target); err != nil {
		os.Remove(tmpFile)
		return errors.Wrap(errors.ErrTypeConfig, "failed to save config file", err)
	}

	s.log.Debug("config saved",
		zap.String("path", s.path),
		zap.String("target", target),
		zap.Int("bytes", len(data)))
	return nil
}

// keepRaw decodes data generically for later merging.
func (s *Store) keepRaw(data []byte) error {
	switch s.format {
	case FormatYAML:
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
			s.rawYAML = &doc
		}
		return nil
	case FormatJSON:
		m, err := decodeJSONMap(data)
		if err != nil {
			return err
		}
		s.rawMap = m
		return nil
	case FormatTOML:
		m := map[string]interface{}{}
		if err := toml.Unmarshal(data, &m); err != nil {
			return err
		}
		s.rawMap = m
		return nil
	default:
		return fmt.Errorf("unknown format: %s", s.format)
	}
}

// encode renders cfg, merged into the loaded document when there is one.
func (s *Store) encode(cfg *Config) ([]byte, error) {
	switch {
	case s.format == FormatYAML && s.rawYAML != nil:
		return s.encodeMergedYAML(cfg)
	case (s.format == FormatJSON || s.format == FormatTOML) && s.rawMap != nil:
		return s.encodeMergedMap(cfg)
	default:
		return encode(s.format, cfg)
	}
}

func (s *Store) encodeMergedYAML(cfg *Config) ([]byte, error) {
	var fresh yaml.Node
	if err := fresh.Encode(withProjects(cfg)); err != nil {
		return nil, err
	}

	doc := *s.rawYAML
	doc.Content = []*yaml.Node{mergeYAMLMapping(s.rawYAML.Content[0], &fresh, rootFields)}
	return encodeYAML(&doc)
}

func (s *Store) encodeMergedMap(cfg *Config) ([]byte, error) {
	data, err := encode(s.format, cfg)
	if err != nil {
		return nil, err
	}

	var fresh map[string]interface{}
	if s.format == FormatJSON {
		if fresh, err = decodeJSONMap(data); err != nil {
			return nil, err
		}
	} else {
		fresh = map[string]interface{}{}
		if err := toml.Unmarshal(data, &fresh); err != nil {
			return nil, err
		}
	}

	merged := mergeMap(s.rawMap, fresh, rootFields)
	if s.format == FormatJSON {
		out, err := json.MarshalIndent(merged, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(merged); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeJSONMap(data []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	m := map[string]interface{}{}
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

func decode(format Format, data []byte, cfg *Config) error {
	switch format {
	case FormatJSON:
		return json.Unmarshal(data, cfg)
	case FormatTOML:
		return toml.Unmarshal(data, cfg)
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func encode(format Format, cfg *Config) ([]byte, error) {
	out := withProjects(cfg)

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(out); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return encodeYAML(out)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// withProjects copies cfg so that an empty project list encodes as [].
func withProjects(cfg *Config) *Config {
	out := *cfg
	if out.Projects == nil {
		out.Projects = []Project{}
	}
	return &out
}

func encodeYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
