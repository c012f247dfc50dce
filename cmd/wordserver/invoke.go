package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/verte-zerg/wordserver/internal/command"
)

// invokeLoad runs the word list command the same way a front end would.
func invokeLoad(ctx context.Context, reg *command.Registry, path string) ([]string, error) {
	var p *string
	if path != "" {
		p = &path
	}
	args, err := json.Marshal(struct {
		Path *string `json:"path"`
	}{Path: p})
	if err != nil {
		return nil, err
	}
	out, err := reg.Invoke(ctx, command.LoadWordserverName, args)
	if err != nil {
		return nil, err
	}
	words, ok := out.([]string)
	if !ok {
		return nil, fmt.Errorf("unexpected result %T", out)
	}
	return words, nil
}
