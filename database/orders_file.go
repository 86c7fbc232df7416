package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"venue_booking/model"
)

// FileOrderStore reads orders from a JSON array on disk. The file is re-read
// on every call so edits by the mock checkout flow show up immediately.
type FileOrderStore struct {
	path string
}

func NewFileOrderStore(path string) *FileOrderStore {
	return &FileOrderStore{path: path}
}

func (s *FileOrderStore) Find(ctx context.Context, q OrderQuery) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !q.IsZero() {
		if _, ok := columnFor(q.Field); !ok {
			return nil, fmt.Errorf("unsupported order filter %q", q.Field)
		}
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read orders file: %w", err)
	}
	var orders []model.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("decode orders file %s: %w", s.path, err)
	}
	if q.IsZero() {
		return orders, nil
	}
	out := orders[:0]
	for _, o := range orders {
		if fieldValue(o, q.Field) == q.Value {
			out = append(out, o)
		}
	}
	return out, nil
}

// WriteOrdersFile replaces the file with orders, creating parent directories.
func WriteOrdersFile(path string, orders []model.Order) error {
	raw, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
