package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/solutions-kit/os-tracker/internal/domain"
	"github.com/solutions-kit/os-tracker/pkg/util"
)

// FileStore persists the collection as a single JSON document on local disk.
// It is the default backend and mirrors the original local-storage record.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore builds a store rooted at dir; the record file is named after
// the collection namespace.
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	return &FileStore{
		path:   filepath.Join(dir, Namespace+".json"),
		logger: logger,
	}
}

// Load reads the persisted collection. A missing record seeds exactly one
// bootstrap ticket and persists it before returning.
func (s *FileStore) Load(ctx context.Context) ([]domain.Ticket, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		seeded := seedCollection()
		if err := s.Save(ctx, seeded); err != nil {
			return nil, err
		}
		s.logger.Info("seeded ticket collection", zap.String("path", s.path))
		return seeded, nil
	}
	if err != nil {
		return nil, util.NewInternalError(fmt.Errorf("read %s: %w", s.path, err))
	}

	var tickets []domain.Ticket
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, util.NewCorruptState(fmt.Errorf("decode %s: %w", s.path, err))
	}
	return tickets, nil
}

// Save replaces the durable collection, writing to a temporary file and
// renaming it so readers never observe a partial record.
func (s *FileStore) Save(ctx context.Context, tickets []domain.Ticket) error {
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	raw, err := json.MarshalIndent(tickets, "", "  ")
	if err != nil {
		return util.NewInternalError(fmt.Errorf("encode collection: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return util.NewInternalError(fmt.Errorf("create data dir: %w", err))
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), Namespace+"-*.tmp")
	if err != nil {
		return util.NewInternalError(fmt.Errorf("create temp record: %w", err))
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return util.NewInternalError(fmt.Errorf("write temp record: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return util.NewInternalError(fmt.Errorf("close temp record: %w", err))
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return util.NewInternalError(fmt.Errorf("replace record: %w", err))
	}
	return nil
}
