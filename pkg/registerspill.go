// Package pkg provides generic utilities for qirk.
package pkg

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// RegisterSpill stores measurement rows of type T outside main memory.
// Sampling runs with large shot counts append rows as they are produced and
// stream them back in order afterwards.
type RegisterSpill[T any] interface {
	Len() uint64
	Path() string
	Append(row T) error
	AppendBatch(rows []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, row T) error) error
	Close() error
}

type registerSpillImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// Append implements RegisterSpill.
func (r *registerSpillImpl[T]) Append(row T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.encoder.Encode(row); err != nil {
		slog.Error("failed to encode row", "path", r.path, "index", r.length, "error", err)
		return fmt.Errorf("failed to encode row: %w", err)
	}

	r.length++

	return nil
}

// Path implements RegisterSpill.
func (r *registerSpillImpl[T]) Path() string {
	return r.path
}

// AppendBatch implements RegisterSpill.
func (r *registerSpillImpl[T]) AppendBatch(rows []T) error {
	for _, row := range rows {
		if err := r.Append(row); err != nil {
			return err
		}
	}

	return nil
}

// Close implements RegisterSpill.
func (r *registerSpillImpl[T]) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file != nil {
		if err := r.file.Close(); err != nil {
			slog.Error("failed to close spill file", "path", r.path, "error", err)
			return err
		}

		slog.Debug("closed register spill", "path", r.path, "length", r.length)
	}

	return nil
}

// Get implements RegisterSpill. Rows are gob streams, so reading row i costs
// a scan over the first i rows; prefer Range for bulk access.
func (r *registerSpillImpl[T]) Get(index uint64) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T

	if index >= r.length {
		return zero, fmt.Errorf("row %d out of bounds (length %d)", index, r.length)
	}

	file, err := os.Open(r.path)
	if err != nil {
		slog.Error("failed to open spill file", "path", r.path, "error", err)
		return zero, fmt.Errorf("failed to open spill file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close spill file", "path", r.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	var row T

	for i := uint64(0); i <= index; i++ {
		if err := decoder.Decode(&row); err != nil {
			return zero, fmt.Errorf("failed to decode row %d: %w", i, err)
		}
	}

	return row, nil
}

// Len implements RegisterSpill.
func (r *registerSpillImpl[T]) Len() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.length
}

// Range implements RegisterSpill.
func (r *registerSpillImpl[T]) Range(fn func(index uint64, row T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.Open(r.path)
	if err != nil {
		slog.Error("failed to open spill file", "path", r.path, "error", err)
		return fmt.Errorf("failed to open spill file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close spill file", "path", r.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	var row T

	for i := uint64(0); i < r.length; i++ {
		if err := decoder.Decode(&row); err != nil {
			return fmt.Errorf("failed to decode row %d: %w", i, err)
		}

		if err := fn(i, row); err != nil {
			return err
		}
	}

	return nil
}

// NewRegisterSpill creates a RegisterSpill backed by a temporary gob file.
func NewRegisterSpill[T any]() (RegisterSpill[T], error) {
	tmpDir := os.TempDir()

	file, err := os.CreateTemp(tmpDir, "qirk-spill-*.gob")
	if err != nil {
		slog.Error("failed to create spill file", "dir", tmpDir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("created register spill", "path", file.Name())

	return &registerSpillImpl[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// ShotBuffer keeps measurement rows in memory up to a limit and spills the
// remainder to disk, preserving append order.
type ShotBuffer[T any] struct {
	limit int
	rows  []T
	spill RegisterSpill[T]
}

// NewShotBuffer returns a buffer that holds at most limit rows in memory. A
// non-positive limit keeps everything in memory.
func NewShotBuffer[T any](limit int) *ShotBuffer[T] {
	return &ShotBuffer[T]{limit: limit}
}

// Append adds one row, spilling once the in-memory limit is reached.
func (b *ShotBuffer[T]) Append(row T) error {
	if b.limit <= 0 || len(b.rows) < b.limit {
		b.rows = append(b.rows, row)
		return nil
	}

	if b.spill == nil {
		spill, err := NewRegisterSpill[T]()
		if err != nil {
			return err
		}

		b.spill = spill
	}

	return b.spill.Append(row)
}

// Len is the total number of rows, in memory and spilled.
func (b *ShotBuffer[T]) Len() uint64 {
	total := uint64(len(b.rows))
	if b.spill != nil {
		total += b.spill.Len()
	}

	return total
}

// Rows materializes every row in append order.
func (b *ShotBuffer[T]) Rows() ([]T, error) {
	out := append([]T{}, b.rows...)

	if b.spill != nil {
		err := b.spill.Range(func(_ uint64, row T) error {
			out = append(out, row)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Close releases the spill file if one was created.
func (b *ShotBuffer[T]) Close() error {
	if b.spill == nil {
		return nil
	}

	return b.spill.Close()
}
