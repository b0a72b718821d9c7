// Package file stores roster snapshots in a local JSON or YAML file.
//
// The file holds an envelope with a BLAKE2b-256 checksum of the snapshot, so
// a hand-edited or truncated file is detected on load instead of silently
// producing a different roster.
package file

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/shared"
)

// Format selects the on-disk encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrChecksumMismatch is returned when the stored checksum does not match the snapshot.
var ErrChecksumMismatch = errors.New("file: snapshot checksum mismatch")

type envelope struct {
	Checksum string          `json:"checksum" yaml:"checksum"`
	Roster   roster.Snapshot `json:"roster" yaml:"roster"`
}

// Store implements roster.Repository on a single file.
type Store struct {
	path   string
	format Format
}

// NewStore creates a store for path. An unknown format falls back to JSON.
func NewStore(path string, format Format) *Store {
	if format != FormatYAML {
		format = FormatJSON
	}
	return &Store{path: path, format: format}
}

// Path returns the file the store writes to.
func (s *Store) Path() string {
	return s.path
}

// Load implements roster.Repository. A missing file yields an empty roster.
func (s *Store) Load(_ context.Context) (*roster.Roster, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return roster.New(), nil
	}
	if err != nil {
		return nil, storageError("Load", "read", s.path, err)
	}

	var env envelope
	if err := s.decode(data, &env); err != nil {
		return nil, storageError("Load", "decode", s.path, err)
	}

	sum, err := checksum(env.Roster)
	if err != nil {
		return nil, storageError("Load", "checksum", s.path, err)
	}
	if sum != env.Checksum {
		return nil, storageError("Load", "verify", s.path, ErrChecksumMismatch)
	}
	return roster.FromSnapshot(env.Roster)
}

// Save implements roster.Repository. The file is replaced atomically: the
// new content is written next to it and renamed over it.
func (s *Store) Save(_ context.Context, snap roster.Snapshot) error {
	snap = normalize(snap)
	sum, err := checksum(snap)
	if err != nil {
		return storageError("Save", "checksum", s.path, err)
	}
	data, err := s.encode(envelope{Checksum: sum, Roster: snap})
	if err != nil {
		return storageError("Save", "encode", s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return storageError("Save", "mkdir", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return storageError("Save", "write", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return storageError("Save", "rename", s.path, err)
	}
	return nil
}

func (s *Store) encode(env envelope) ([]byte, error) {
	if s.format == FormatYAML {
		return yaml.Marshal(env)
	}
	return json.MarshalIndent(env, "", "  ")
}

func (s *Store) decode(data []byte, env *envelope) error {
	if s.format == FormatYAML {
		return yaml.Unmarshal(data, env)
	}
	return json.Unmarshal(data, env)
}

// checksum hashes the canonical JSON form, so both formats agree on it.
func checksum(snap roster.Snapshot) (string, error) {
	canonical, err := json.Marshal(normalize(snap))
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// normalize replaces nil slices with empty ones so that an empty class
// hashes the same after a YAML round trip.
func normalize(snap roster.Snapshot) roster.Snapshot {
	out := roster.Snapshot{Version: snap.Version, Classes: make([]roster.ClassSnapshot, len(snap.Classes))}
	for i, c := range snap.Classes {
		if c.Students == nil {
			c.Students = []roster.StudentSnapshot{}
		}
		out.Classes[i] = c
	}
	return out
}

func storageError(op, step, path string, err error) error {
	return shared.WrapError("file", op, shared.ErrStorage, fmt.Sprintf("%s %s: %v", step, path, err), err)
}
