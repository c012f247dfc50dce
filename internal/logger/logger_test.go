package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := Component(New(&buf, false), "host")
	l.Info().Str("cmd", "load_wordserver_from_path").Msg("invoked")

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if event["component"] != "host" || event["cmd"] != "load_wordserver_from_path" {
		t.Fatalf("unexpected event: %v", event)
	}
	if event["message"] != "invoked" {
		t.Fatalf("unexpected message: %v", event["message"])
	}
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	quiet := New(&buf, false)
	quiet.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug event to be dropped, got %s", buf.String())
	}
	verbose := New(&buf, true)
	verbose.Debug().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected debug event, got %q", buf.String())
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wordserver.log")
	l, closeFn, err := NewFile(path, false)
	if err != nil {
		t.Fatalf("new file logger: %v", err)
	}
	l.Info().Msg("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("expected log line, got %q", data)
	}
}
