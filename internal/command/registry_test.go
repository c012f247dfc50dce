package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestInvokeLoadWordserver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("cat\n\n  dog  \nfish"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	reg := Default(WithDialogOutput(&bytes.Buffer{}))
	args, _ := json.Marshal(map[string]string{"path": path})

	out, err := reg.Invoke(context.Background(), LoadWordserverName, args)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if !reflect.DeepEqual(out, []string{"cat", "dog", "fish"}) {
		t.Fatalf("unexpected words: %#v", out)
	}
}

func TestInvokeLoadWordserverMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	reg := Default(WithDialogOutput(&bytes.Buffer{}))
	args, _ := json.Marshal(map[string]string{"path": path})

	out, err := reg.Invoke(context.Background(), LoadWordserverName, args)
	if err == nil {
		t.Fatalf("expected error, got %v", out)
	}
	resp := Respond("7", out, err)
	if resp.ID != "7" || resp.Ok != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !strings.Contains(resp.Error, path) {
		t.Fatalf("expected error string to mention %s, got %q", path, resp.Error)
	}
}

func TestInvokeLoadWordserverDefaultPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "wordserver.txt"), []byte(" pear \n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	t.Chdir(dir)
	reg := Default(WithDialogOutput(&bytes.Buffer{}))

	for _, args := range []string{"", "null", "{}", `{"path":null}`} {
		out, err := reg.Invoke(context.Background(), LoadWordserverName, json.RawMessage(args))
		if err != nil {
			t.Fatalf("invoke with %q: %v", args, err)
		}
		if !reflect.DeepEqual(out, []string{"pear"}) {
			t.Fatalf("args %q: unexpected words %#v", args, out)
		}
	}
}

func TestInvokeUnknownCommand(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Invoke(context.Background(), "missing", nil)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Fatalf("expected name in error, got %v", err)
	}
}

func TestInvokeBadArgs(t *testing.T) {
	reg := Default(WithDialogOutput(&bytes.Buffer{}))
	_, err := reg.Invoke(context.Background(), LoadWordserverName, json.RawMessage(`{"path": 12}`))
	if !errors.Is(err, ErrBadArgs) {
		t.Fatalf("expected ErrBadArgs, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reg := NewRegistry()
	reg.Register("x", LoadWordserverFromPath)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate name")
		}
	}()
	reg.Register("x", LoadWordserverFromPath)
}

func TestDefaultNamesAndCapabilities(t *testing.T) {
	reg := Default(WithDialogOutput(&bytes.Buffer{}))
	wantNames := []string{LoadWordserverName, "plugin:dialog|message", "plugin:opener|open_url"}
	if !reflect.DeepEqual(reg.Names(), wantNames) {
		t.Fatalf("unexpected names: %v", reg.Names())
	}
	if !reflect.DeepEqual(reg.Capabilities(), []string{"dialog", "opener"}) {
		t.Fatalf("unexpected capabilities: %v", reg.Capabilities())
	}
}

func TestRespondOk(t *testing.T) {
	resp := Respond("1", []string{"a"}, nil)
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"id":"1","ok":["a"]}` {
		t.Fatalf("unexpected json: %s", data)
	}
}
