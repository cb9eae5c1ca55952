package board

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/observability"
)

// Store persists boards by name.
type Store interface {
	// Load returns the named board, or a NOT_FOUND error.
	Load(ctx context.Context, name string) (*Board, error)

	// Save writes b under b.Name, replacing any previous version.
	Save(ctx context.Context, b *Board) error

	// Delete removes the named board. Missing boards are not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored board names in sorted order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// StoreOptions selects and configures a store backend.
type StoreOptions struct {
	Backend     string // BackendFile (default) or BackendRedis
	Dir         string // FileStore directory; empty uses DefaultDir
	RedisAddr   string
	RedisPrefix string
}

// Open returns the store selected by opts.
func Open(ctx context.Context, opts StoreOptions) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Dir)
	case BackendRedis:
		return DialRedis(ctx, opts.RedisAddr, opts.RedisPrefix)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown store backend %q (want %s or %s)",
			opts.Backend, BackendFile, BackendRedis)
	}
}

// DefaultDir returns ~/.config/dropgrid/boards.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "get home dir")
	}
	return filepath.Join(home, ".config", "dropgrid", "boards"), nil
}

// FileStore keeps one TOML file per board in a directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based board store.
// If baseDir is empty, defaults to ~/.config/dropgrid/boards/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		baseDir = dir
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create board dir")
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) boardPath(name string) string {
	return filepath.Join(s.baseDir, name+".toml")
}

func (s *FileStore) Load(ctx context.Context, name string) (b *Board, err error) {
	start := time.Now()
	defer func() { observability.Store().OnLoad(ctx, BackendFile, name, time.Since(start), err) }()

	if err := errors.ValidateBoardName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.boardPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeNotFound, "board %q not found", name)
		}
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read board %q", name)
	}
	return Unmarshal(data, FormatTOML)
}

func (s *FileStore) Save(ctx context.Context, b *Board) (err error) {
	start := time.Now()
	size := 0
	defer func() { observability.Store().OnSave(ctx, BackendFile, b.Name, size, time.Since(start), err) }()

	if err := b.Validate(); err != nil {
		return err
	}
	data, err := Marshal(b, FormatTOML)
	if err != nil {
		return err
	}
	size = len(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write then rename so a crash never leaves a half-written board.
	path := s.boardPath(b.Name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write board %q", b.Name)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeStorage, err, "replace board %q", b.Name)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateBoardName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.boardPath(name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStorage, err, "remove board %q", name)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read board dir")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".toml"))
	}
	slices.Sort(names)
	return names, nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for board files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
