package warnfmt

import (
	"bytes"
	"strings"
	"testing"

	"warnkit/internal/warn"
)

func rec(t *testing.T, kind warn.Kind, msg string) warn.Record {
	t.Helper()
	r, ok := warn.New(kind, msg)
	if !ok {
		t.Fatalf("warn.New(%v, %q) rejected", kind, msg)
	}
	return r
}

func TestFormatShort(t *testing.T) {
	recs := []warn.Record{
		rec(t, warn.KindDisk, "disk low"),
		rec(t, warn.KindWarning, "first line\nsecond"),
	}
	expected := "warning WRN0005 DiskWarning: disk low\n" +
		"warning WRN0001 Warning: first line second"
	if got := FormatShort(recs); got != expected {
		t.Fatalf("unexpected short output:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestPrettyPlain(t *testing.T) {
	var buf bytes.Buffer
	r, ok := warn.NewWithData(warn.KindDeprecation, "Parse is deprecated", warn.Data{
		"subject":     "Parse",
		"replacement": "ParseAll",
	})
	if !ok {
		t.Fatal("NewWithData rejected")
	}
	Pretty(&buf, []warn.Record{r}, PrettyOpts{ShowData: true})
	want := "warning WRN0008 DeprecationWarning: Parse is deprecated  // replacement=ParseAll subject=Parse\n"
	if buf.String() != want {
		t.Fatalf("pretty output:\nwant: %q\ngot:  %q", want, buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	recs := []warn.Record{
		rec(t, warn.KindMemory, "memory tight"),
		rec(t, warn.KindWarning, "slow"),
	}
	if err := WriteJSON(&buf, recs, JSONOpts{Max: 1}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"count": 2`) {
		t.Fatalf("count should reflect the full collection:\n%s", out)
	}
	if strings.Contains(out, "slow") {
		t.Fatalf("Max=1 should trim rendered entries:\n%s", out)
	}
	if !strings.Contains(out, `"code": "WRN0006"`) {
		t.Fatalf("missing memory warning code:\n%s", out)
	}
}

func TestConsoleObserver(t *testing.T) {
	var out, errw bytes.Buffer
	obs := NewConsoleObserver(&out, &errw, PrettyOpts{})

	m := warn.NewManager()
	m.Subscribe(obs)
	m.RecordMessage(warn.KindConnection, "connection reset")

	if got := out.String(); got != "warning WRN0004 ConnectionWarning: connection reset\n" {
		t.Fatalf("console output = %q", got)
	}
	if errw.Len() != 0 {
		t.Fatalf("error stream written during ordinary recording: %q", errw.String())
	}
}
