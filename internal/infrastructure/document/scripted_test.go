package document_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/stylesheet"
	"github.com/bnema/dimmer/internal/infrastructure/document"
)

// domShim is the small slice of the DOM the page scripts touch.
const domShim = `
function Elem(tag) {
	this.tagName = tag.toUpperCase();
	this.id = '';
	this.textContent = '';
	this.children = [];
	this.parentNode = null;
	this.classList = {
		_c: [],
		add: function (c) { if (this._c.indexOf(c) < 0) this._c.push(c); },
		remove: function (c) { var i = this._c.indexOf(c); if (i >= 0) this._c.splice(i, 1); },
		contains: function (c) { return this._c.indexOf(c) >= 0; }
	};
}
Elem.prototype.appendChild = function (c) { c.parentNode = this; this.children.push(c); return c; };
Elem.prototype.removeChild = function (c) {
	var i = this.children.indexOf(c);
	if (i >= 0) { this.children.splice(i, 1); c.parentNode = null; }
	return c;
};
var document = {
	documentElement: new Elem('html'),
	head: new Elem('head'),
	body: new Elem('body'),
	createElement: function (t) { return new Elem(t); },
	getElementById: function (id) {
		function walk(n) {
			if (n.id === id) return n;
			for (var i = 0; i < n.children.length; i++) {
				var r = walk(n.children[i]);
				if (r) return r;
			}
			return null;
		}
		return walk(this.documentElement);
	}
};
document.documentElement.appendChild(document.head);
document.documentElement.appendChild(document.body);
function countById(id) {
	var n = 0;
	function walk(e) { if (e.id === id) n++; for (var i = 0; i < e.children.length; i++) walk(e.children[i]); }
	walk(document.documentElement);
	return n;
}
`

type vmRunner struct {
	vm *sobek.Runtime
}

func newVMRunner(t *testing.T) *vmRunner {
	t.Helper()
	vm := sobek.New()
	_, err := vm.RunString(domShim)
	require.NoError(t, err)
	return &vmRunner{vm: vm}
}

func (r *vmRunner) RunScript(_ context.Context, script string) error {
	_, err := r.vm.RunString(script)
	return err
}

func (r *vmRunner) eval(t *testing.T, expr string) any {
	t.Helper()
	v, err := r.vm.RunString(expr)
	require.NoError(t, err)
	return v.Export()
}

func TestScripted_ApplyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	runner := newVMRunner(t)
	doc := document.NewScripted(runner)
	styles := usecase.NewStyleApplicator()

	require.NoError(t, styles.Apply(ctx, doc, entity.IntensityMedium))
	require.NoError(t, styles.Apply(ctx, doc, entity.IntensityMedium))

	assert.EqualValues(t, 1, runner.eval(t, `countById("`+stylesheet.StyleID+`")`))
	assert.Equal(t, true, runner.eval(t, `document.body.classList.contains("dark-mode")`))
	assert.EqualValues(t, 1, runner.eval(t, `document.body.classList._c.length`))
	assert.Equal(t, stylesheet.DarkModeCSS(entity.IntensityMedium),
		runner.eval(t, `document.getElementById("`+stylesheet.StyleID+`").textContent`))
}

func TestScripted_ApplyThenRemove(t *testing.T) {
	ctx := context.Background()
	runner := newVMRunner(t)
	doc := document.NewScripted(runner)
	styles := usecase.NewStyleApplicator()

	require.NoError(t, styles.Apply(ctx, doc, entity.IntensityDeep))
	require.NoError(t, styles.Remove(ctx, doc))
	require.NoError(t, styles.Remove(ctx, doc))

	assert.EqualValues(t, 0, runner.eval(t, `countById("`+stylesheet.StyleID+`")`))
	assert.Equal(t, false, runner.eval(t, `document.body.classList.contains("dark-mode")`))
}

func TestScripted_QuotesHostileInput(t *testing.T) {
	ctx := context.Background()
	runner := newVMRunner(t)
	doc := document.NewScripted(runner)

	css := "a::after { content: \"</style>'\\\" \" }"
	require.NoError(t, doc.UpsertStyleSheet(ctx, `x"y`, css))
	assert.Equal(t, css, runner.eval(t, `document.getElementById('x"y').textContent`))
}

type failingRunner struct{}

func (failingRunner) RunScript(context.Context, string) error { return errors.New("page gone") }

func TestScripted_RunnerErrorIsWrapped(t *testing.T) {
	doc := document.NewScripted(failingRunner{})
	err := doc.AddClass(context.Background(), "dark-mode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page gone")
}

func TestWriterRunner_WritesScripts(t *testing.T) {
	var buf bytes.Buffer
	doc := document.NewScripted(document.NewWriterRunner(&buf))

	require.NoError(t, usecase.NewStyleApplicator().ApplyAggressive(context.Background(), doc))
	assert.Contains(t, buf.String(), `"aggressive-dark-mode"`)
	assert.Contains(t, buf.String(), "document.getElementById")
}
