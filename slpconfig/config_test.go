package slpconfig

import (
	"strings"
	"testing"
)

func TestLoadFromDefaultsWhenFieldsOmitted(t *testing.T) {
	cfg, err := LoadFrom(strings.NewReader("strict: true\n"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if !cfg.Strict {
		t.Error("Strict should be true from the document")
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want default 4", cfg.Workers)
	}
	if cfg.Sink != SinkNone {
		t.Errorf("Sink = %v, want default SinkNone", cfg.Sink)
	}
}

func TestLoadFromOverridesSink(t *testing.T) {
	cfg, err := LoadFrom(strings.NewReader("sink: sqlite\nsqlite_path: /tmp/x.db\n"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Sink != SinkSQLite {
		t.Errorf("Sink = %v, want SinkSQLite", cfg.Sink)
	}
	if cfg.SQLitePath != "/tmp/x.db" {
		t.Errorf("SQLitePath = %q, want /tmp/x.db", cfg.SQLitePath)
	}
}
