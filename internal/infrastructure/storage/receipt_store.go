package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
)

// LocalReceiptStore persists receipt uploads on the local filesystem
// under a configured root. Returned paths are relative keys scoped to
// that root; the store rejects keys that would escape it.
type LocalReceiptStore struct {
	root   string
	logger *zap.Logger
}

// NewLocalReceiptStore creates a receipt store rooted at dir.
func NewLocalReceiptStore(root string, logger *zap.Logger) (*LocalReceiptStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create receipt root: %w", err)
	}

	return &LocalReceiptStore{
		root:   root,
		logger: logger,
	}, nil
}

var _ repository.ReceiptStore = (*LocalReceiptStore)(nil)

func (s *LocalReceiptStore) Save(ctx context.Context, gymID, filename string, content io.Reader) (string, error) {
	key := filepath.Join(gymID, uuid.NewString()+"_"+sanitize(filename))

	full := filepath.Join(s.root, key)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create receipt dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create receipt file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("write receipt file: %w", err)
	}

	s.logger.Debug("Receipt stored",
		zap.String("gym_id", gymID),
		zap.String("path", key))

	return key, nil
}

func (s *LocalReceiptStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dErrors.ErrReceiptNotFound
		}
		return nil, fmt.Errorf("open receipt: %w", err)
	}

	return f, nil
}

func (s *LocalReceiptStore) Remove(ctx context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove receipt: %w", err)
	}

	return nil
}

func (s *LocalReceiptStore) resolve(path string) (string, error) {
	full := filepath.Join(s.root, filepath.Clean("/"+path))
	if !strings.HasPrefix(full, s.root) {
		return "", dErrors.ErrReceiptNotFound
	}
	return full, nil
}

func sanitize(filename string) string {
	base := filepath.Base(filename)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
