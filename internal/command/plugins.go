package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher opens a URL with the platform handler.
type Launcher func(ctx context.Context, target string) error

// Option customizes Default.
type Option func(*options)

type options struct {
	dialogOut io.Writer
	launch    Launcher
}

// WithDialogOutput sends dialog messages to w.
func WithDialogOutput(w io.Writer) Option {
	return func(o *options) { o.dialogOut = w }
}

// WithLauncher replaces the platform URL opener.
func WithLauncher(l Launcher) Option {
	return func(o *options) { o.launch = l }
}

// Opener provides the "opener" capability.
type Opener struct {
	launch Launcher
}

// NewOpener returns an Opener using l, or the system opener when l is nil.
func NewOpener(l Launcher) *Opener {
	if l == nil {
		l = SystemLauncher
	}
	return &Opener{launch: l}
}

// Name implements Plugin.
func (o *Opener) Name() string { return "opener" }

// Register implements Plugin.
func (o *Opener) Register(r *Registry) {
	r.Register("plugin:opener|open_url", o.openURL)
}

func (o *Opener) openURL(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		URL string `json:"url"`
	}
	if err := DecodeArgs(args, &in); err != nil {
		return nil, err
	}
	target := strings.TrimSpace(in.URL)
	u, err := url.Parse(target)
	if err != nil || target == "" {
		return nil, fmt.Errorf("%w: url %q", ErrBadArgs, in.URL)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "mailto":
	default:
		return nil, fmt.Errorf("%w: scheme %q not allowed", ErrBadArgs, u.Scheme)
	}
	if err := o.launch(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", target, err)
	}
	return true, nil
}

// SystemLauncher opens target with xdg-open, open or rundll32 depending on the OS.
// The launch outlives ctx; the opener is reaped in the background.
func SystemLauncher(_ context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		// Exit status of the opener is not reported back to the caller.
		_ = cmd.Wait()
	}()
	return nil
}

// Dialog provides the "dialog" capability. Headless hosts print messages instead of
// opening native windows.
type Dialog struct {
	out io.Writer
}

// NewDialog returns a Dialog writing to w, or stderr when w is nil.
func NewDialog(w io.Writer) *Dialog {
	if w == nil {
		w = os.Stderr
	}
	return &Dialog{out: w}
}

// Name implements Plugin.
func (d *Dialog) Name() string { return "dialog" }

// Register implements Plugin.
func (d *Dialog) Register(r *Registry) {
	r.Register("plugin:dialog|message", d.message)
}

func (d *Dialog) message(_ context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := DecodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Message == "" {
		return nil, fmt.Errorf("%w: message is empty", ErrBadArgs)
	}
	line := in.Message
	if in.Title != "" {
		line = in.Title + ": " + in.Message
	}
	if _, err := fmt.Fprintln(d.out, line); err != nil {
		return nil, fmt.Errorf("failed to show dialog: %w", err)
	}
	return true, nil
}
