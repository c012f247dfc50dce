package command

import (
	"context"
	"encoding/json"

	"github.com/verte-zerg/wordserver/internal/wordlist"
)

// LoadWordserverName is the command front ends invoke to fetch the word list.
const LoadWordserverName = "load_wordserver_from_path"

type loadArgs struct {
	Path *string `json:"path"`
}

// LoadWordserverFromPath reads the word list named by the optional "path" argument.
func LoadWordserverFromPath(_ context.Context, args json.RawMessage) (any, error) {
	var in loadArgs
	if err := DecodeArgs(args, &in); err != nil {
		return nil, err
	}
	words, err := wordlist.LoadFromPath(in.Path)
	if err != nil {
		return nil, err
	}
	return words, nil
}

// Default builds the application registry: both capabilities and the word list command.
func Default(opts ...Option) *Registry {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return NewBuilder().
		Plugin(NewDialog(o.dialogOut)).
		Plugin(NewOpener(o.launch)).
		Handler(LoadWordserverName, LoadWordserverFromPath).
		Build()
}
