// Package snapshot reads and writes warning snapshot files: the msgpack
// artifacts that carry recorded warnings between the emitting process and the
// inspection commands (show, stats, browse). The manager itself never
// persists anything; snapshots are produced explicitly by the CLI from a
// query result.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"warnkit/internal/warn"
)

// Current schema version - increment when Payload format changes
const SchemaVersion uint16 = 1

// ErrSchemaMismatch is returned when a snapshot was written by an
// incompatible version of the tool.
var ErrSchemaMismatch = errors.New("snapshot schema mismatch")

// Entry is the serialized form of one warning record. Kind travels by name so
// snapshots stay readable when the enum gains members.
type Entry struct {
	Kind    string
	Code    uint16
	Message string
	Data    map[string]any
}

// Payload is the on-disk snapshot structure.
type Payload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	// Creation time, unix seconds
	CreatedAt int64

	// Count duplicates len(Warnings) for cheap inspection by external tools
	Count uint32

	Warnings []Entry
}

// Write serializes records into a snapshot file. The write is atomic:
// content goes to a temp file in the target directory, then rename.
func Write(path string, recs []warn.Record) error {
	count, err := safecast.Conv[uint32](len(recs))
	if err != nil {
		return fmt.Errorf("record count overflow: %w", err)
	}
	payload := Payload{
		Schema:    SchemaVersion,
		CreatedAt: time.Now().Unix(),
		Count:     count,
		Warnings:  make([]Entry, 0, len(recs)),
	}
	for _, rec := range recs {
		payload.Warnings = append(payload.Warnings, Entry{
			Kind:    rec.Kind.Name(),
			Code:    uint16(rec.Code),
			Message: rec.Message,
			Data:    rec.Data,
		})
	}
	return writePayload(path, &payload)
}

func writePayload(path string, payload *Payload) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "failed to remove temp file: %v\n", rmErr)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), path)
}

// Read loads a snapshot file back into records.
func Read(path string) ([]warn.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var payload Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %q: %w", path, err)
	}
	if payload.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: file %q has schema %d, tool expects %d",
			ErrSchemaMismatch, path, payload.Schema, SchemaVersion)
	}

	recs := make([]warn.Record, 0, len(payload.Warnings))
	for _, e := range payload.Warnings {
		kind, ok := warn.ParseKind(e.Kind)
		if !ok {
			return nil, fmt.Errorf("snapshot %q: unknown warning kind %q", path, e.Kind)
		}
		recs = append(recs, warn.Record{
			Kind:    kind,
			Code:    warn.Code(e.Code),
			Message: e.Message,
			Data:    warn.Data(e.Data),
		})
	}
	return recs, nil
}
