// Package command dispatches named commands invoked by front ends.
package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownCommand is returned when no handler is registered under a name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrBadArgs is returned when command arguments cannot be decoded.
	ErrBadArgs = errors.New("invalid arguments")
)

// Handler runs one command with its raw JSON arguments.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Registry maps command names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	plugins  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: map[string]Handler{}}
}

// Register adds a handler. Empty or duplicate names are programmer error.
func (r *Registry) Register(name string, h Handler) {
	if name == "" {
		panic("command needs a name")
	}
	if h == nil {
		panic("command " + name + " needs a handler")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[name]; ok {
		panic("command " + name + " registered twice")
	}
	r.handlers[name] = h
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Capabilities returns the names of installed plugins, sorted.
func (r *Registry) Capabilities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]string(nil), r.plugins...)
	sort.Strings(out)
	return out
}

// Invoke runs the named command.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return h(ctx, args)
}

func (r *Registry) addPlugin(name string) {
	r.mu.Lock()
	r.plugins = append(r.plugins, name)
	r.mu.Unlock()
}

// DecodeArgs unmarshals args into v. Empty or null args leave v untouched.
func DecodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	return nil
}
