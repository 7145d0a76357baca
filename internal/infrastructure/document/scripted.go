package document

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/dimmer/internal/application/port"
)

// ScriptRunner evaluates JavaScript in a live page.
type ScriptRunner interface {
	RunScript(ctx context.Context, script string) error
}

// Scripted drives a live page by translating each operation into a small,
// self-contained script.
type Scripted struct {
	runner ScriptRunner
}

var _ port.Document = (*Scripted)(nil)

// NewScripted creates a document backed by runner.
func NewScripted(runner ScriptRunner) *Scripted {
	return &Scripted{runner: runner}
}

const upsertStyleJS = `(function () {
	var id = %s, css = %s;
	var el = document.getElementById(id);
	if (!el) {
		el = document.createElement("style");
		el.id = id;
		(document.head || document.documentElement).appendChild(el);
	}
	el.textContent = css;
})();`

const removeStyleJS = `(function () {
	var el = document.getElementById(%s);
	if (el && el.parentNode) {
		el.parentNode.removeChild(el);
	}
})();`

const classJS = `(function () {
	if (document.body) {
		document.body.classList.%s(%s);
	}
})();`

func (d *Scripted) UpsertStyleSheet(ctx context.Context, id, css string) error {
	return d.run(ctx, upsertStyleJS, jsString(id), jsString(css))
}

func (d *Scripted) RemoveStyleSheet(ctx context.Context, id string) error {
	return d.run(ctx, removeStyleJS, jsString(id))
}

func (d *Scripted) AddClass(ctx context.Context, class string) error {
	return d.run(ctx, classJS, "add", jsString(class))
}

func (d *Scripted) RemoveClass(ctx context.Context, class string) error {
	return d.run(ctx, classJS, "remove", jsString(class))
}

func (d *Scripted) run(ctx context.Context, format string, args ...any) error {
	if err := d.runner.RunScript(ctx, fmt.Sprintf(format, args...)); err != nil {
		return fmt.Errorf("failed to run page script: %w", err)
	}
	return nil
}

// jsString quotes s as a JavaScript string literal. JSON strings are valid JS
// literals, and the encoder escapes U+2028/U+2029.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// WriterRunner "runs" scripts by writing them out, one per line group.
type WriterRunner struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterRunner creates a runner that writes scripts to w.
func NewWriterRunner(w io.Writer) *WriterRunner {
	return &WriterRunner{w: w}
}

func (r *WriterRunner) RunScript(_ context.Context, script string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintln(r.w, script)
	return err
}
