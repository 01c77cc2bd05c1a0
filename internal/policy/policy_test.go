package policy

import (
	"os"
	"path/filepath"
	"testing"

	"warnkit/internal/warn"
)

func collector(seen *[]string) warn.Observer {
	return warn.ObserverFunc{OnNext: func(rec warn.Record) {
		*seen = append(*seen, rec.Message)
	}}
}

func TestDropRuleMatchesDescendants(t *testing.T) {
	f, err := New([]Rule{{Kind: "OSWarning", Action: ActionDrop}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var seen []string
	m := warn.NewManager()
	m.Subscribe(f.Wrap(collector(&seen)))

	m.RecordMessage(warn.KindDisk, "disk low")
	m.RecordMessage(warn.KindWarning, "slow")

	if len(seen) != 1 || seen[0] != "slow" {
		t.Fatalf("delivered %v, want [slow]", seen)
	}
	if m.Len() != 2 {
		t.Fatalf("policy must not affect recording: Len() = %d", m.Len())
	}
}

func TestOnceRule(t *testing.T) {
	f, err := New([]Rule{{Match: "deprecated", Action: ActionOnce}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var seen []string
	m := warn.NewManager()
	m.Subscribe(f.Wrap(collector(&seen)))

	m.RecordMessage(warn.KindDeprecation, "Parse is deprecated")
	m.RecordMessage(warn.KindDeprecation, "Parse is deprecated")
	m.RecordMessage(warn.KindDeprecation, "Render is deprecated")

	want := []string{"Parse is deprecated", "Render is deprecated"}
	if len(seen) != len(want) || seen[0] != want[0] || seen[1] != want[1] {
		t.Fatalf("delivered %v, want %v", seen, want)
	}
}

func TestFirstMatchingRuleWins(t *testing.T) {
	f, err := New([]Rule{
		{Kind: "DiskWarning", Action: ActionKeep},
		{Kind: "OSWarning", Action: ActionDrop},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var seen []string
	m := warn.NewManager()
	m.Subscribe(f.Wrap(collector(&seen)))

	m.RecordMessage(warn.KindDisk, "disk low")
	m.RecordMessage(warn.KindMemory, "memory tight")

	if len(seen) != 1 || seen[0] != "disk low" {
		t.Fatalf("delivered %v, want [disk low]", seen)
	}
}

func TestNilFilterForwardsEverything(t *testing.T) {
	var f *Filter
	var seen []string
	m := warn.NewManager()
	m.Subscribe(f.Wrap(collector(&seen)))
	m.RecordMessage(warn.KindWarning, "plain")
	if len(seen) != 1 {
		t.Fatalf("delivered %v, want one record", seen)
	}
}

func TestNewRejectsBadRules(t *testing.T) {
	if _, err := New([]Rule{{Kind: "NoSuchWarning"}}); err == nil {
		t.Fatal("unknown kind accepted")
	}
	if _, err := New([]Rule{{Action: "explode"}}); err == nil {
		t.Fatal("unknown action accepted")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warnkit.toml")
	content := "[[rule]]\nkind = \"deprecation\"\nmatch = \"legacy\"\naction = \"drop\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write policy: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var seen []string
	m := warn.NewManager()
	m.Subscribe(f.Wrap(collector(&seen)))
	m.RecordMessage(warn.KindDeprecation, "legacy API used")
	m.RecordMessage(warn.KindDeprecation, "new-style API going away")

	if len(seen) != 1 || seen[0] != "new-style API going away" {
		t.Fatalf("delivered %v", seen)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("Load accepted a missing file")
	}
}
