package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"warnkit/internal/warn"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.mp")

	m := warn.NewManager()
	m.RecordMessage(warn.KindDisk, "disk low")
	m.RecordData(warn.KindDeprecation, warn.Data{"subject": "Parse"})

	if err := Write(path, m.All()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Read returned %d records, want 2", len(got))
	}
	if got[0].Kind != warn.KindDisk || got[0].Message != "disk low" || got[0].Code != warn.DiskCode {
		t.Fatalf("first record = %+v", got[0])
	}
	if got[1].Kind != warn.KindDeprecation || got[1].Message != "Parse is deprecated" {
		t.Fatalf("second record = %+v", got[1])
	}
	if got[1].Data["subject"] != "Parse" {
		t.Fatalf("payload lost: %v", got[1].Data)
	}
}

func TestReadRejectsWrongSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.mp")
	if err := writePayload(path, &Payload{Schema: SchemaVersion + 1}); err != nil {
		t.Fatalf("writePayload: %v", err)
	}
	if _, err := Read(path); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("Read error = %v, want ErrSchemaMismatch", err)
	}
}

func TestReadRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mp")
	payload := &Payload{
		Schema:   SchemaVersion,
		Count:    1,
		Warnings: []Entry{{Kind: "NoSuchWarning", Message: "x"}},
	}
	if err := writePayload(path, payload); err != nil {
		t.Fatalf("writePayload: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Fatal("Read accepted an unknown kind")
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.mp"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Read error = %v, want os.ErrNotExist", err)
	}
}
