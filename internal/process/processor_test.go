package process

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/ngdoctags/internal/config"
	"git.home.luguber.info/inful/ngdoctags/internal/dictionary"
	"git.home.luguber.info/inful/ngdoctags/internal/doclet"
	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
	"git.home.luguber.info/inful/ngdoctags/internal/metrics"
	"git.home.luguber.info/inful/ngdoctags/internal/ngdoc"
)

const clickComment = `/**
 * Evaluates an expression on click.
 *
 * @ngdoc directive
 * @name ngClick
 * @restrict A
 * @priority 0
 * @param {expression} ngClick Expression to evaluate
 *   upon click.
 * @param [untyped] ignored
 * @returns {$q<Event>} the click promise
 */`

type tagCount struct {
	tag    string
	result metrics.ResultLabel
}

type fakeRecorder struct {
	metrics.NoopRecorder
	tags     map[tagCount]int
	entities int
	observed int
}

func newFakeRecorder() *fakeRecorder { return &fakeRecorder{tags: map[tagCount]int{}} }

func (f *fakeRecorder) IncTagResult(tag string, result metrics.ResultLabel) {
	f.tags[tagCount{tag, result}]++
}
func (f *fakeRecorder) IncEntities(n int)                    { f.entities += n }
func (f *fakeRecorder) ObserveProcessDuration(time.Duration) { f.observed++ }

func newProcessor(t *testing.T, opts ...Option) *Processor {
	t.Helper()
	dict := dictionary.New()
	require.NoError(t, ngdoc.New().DefineTags(dict))
	return New(dict, opts...)
}

func TestProcess_Directive(t *testing.T) {
	rec := newFakeRecorder()
	p := newProcessor(t, WithRecorder(rec))

	res, err := p.Process(context.Background(), &Document{Entities: []Entity{{Name: "ngClick", Comment: clickComment}}})
	require.NoError(t, err)
	require.Len(t, res.Doclets, 1)

	d := res.Doclets[0]
	assert.Equal(t, doclet.New("ngClick", "").ID, d.ID)
	assert.Equal(t, "Evaluates an expression on click.", d.Description)
	assert.Equal(t, doclet.KindClass, d.Kind)
	assert.Equal(t, "directive", d.NgDoc)
	assert.Equal(t, []string{"Attribute"}, d.Restrict)
	assert.Equal(t, "0", d.Priority)

	require.Len(t, d.Params, 1, "the untyped param leaves the collection as it was")
	assert.Equal(t, "ngClick", d.Params[0].Name)
	assert.Equal(t, "Expression to evaluate\nupon click.", d.Params[0].Description)
	assert.Equal(t, "expression", d.Params[0].TypeDefinitionURL)

	require.Len(t, d.Returns, 1)
	assert.Equal(t, "$q<Event>", d.Returns[0].TypeDefinition)
	assert.Equal(t, `$q&lt;<a href="Event.html">Event</a>>`, d.Returns[0].TypeDefinitionURL)

	require.Len(t, d.Tags, 1)
	assert.Equal(t, "name", d.Tags[0].Title)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, Warning{Entity: "ngClick", Tag: "name", Message: "unknown tag"}, res.Warnings[0])

	assert.Equal(t, 2, rec.tags[tagCount{ngdoc.TagParam, metrics.ResultHandled}])
	assert.Equal(t, 1, rec.tags[tagCount{otherTag, metrics.ResultUnknown}])
	assert.Equal(t, 1, rec.tags[tagCount{ngdoc.TagReturns, metrics.ResultHandled}])
	assert.Equal(t, 1, rec.entities)
	assert.Equal(t, 1, rec.observed)
}

func TestProcess_InvalidTagIsWarning(t *testing.T) {
	rec := newFakeRecorder()
	p := newProcessor(t, WithRecorder(rec))

	res, err := p.Process(context.Background(), &Document{Entities: []Entity{
		{Name: "a", Comment: "@restrict\n@scope"},
	}})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "restrict", res.Warnings[0].Tag)
	assert.Equal(t, "tag requires a value", res.Warnings[0].Message)
	assert.Equal(t, ngdoc.ScopeNew, res.Doclets[0].DirectiveScope)
	assert.Equal(t, 1, rec.tags[tagCount{ngdoc.TagRestrict, metrics.ResultInvalid}])
}

func TestProcess_KeepsInputOrder(t *testing.T) {
	p := newProcessor(t)
	res, err := p.Process(context.Background(), &Document{Entities: []Entity{
		{Name: "b", Comment: "@ngdoc method"},
		{Name: "a", Comment: "@ngdoc service"},
	}})
	require.NoError(t, err)
	require.Len(t, res.Doclets, 2)
	assert.Equal(t, "b", res.Doclets[0].Name)
	assert.Equal(t, doclet.KindFunction, res.Doclets[0].Kind)
	assert.Equal(t, "a", res.Doclets[1].Name)
	assert.Empty(t, res.Doclets[1].Kind)
}

func TestProcess_Errors(t *testing.T) {
	p := newProcessor(t)

	_, err := p.Process(context.Background(), nil)
	assert.True(t, errors.HasCategory(err, errors.CategoryInternal))

	_, err = p.Process(context.Background(), &Document{Entities: []Entity{{Comment: "@ngdoc method"}}})
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Process(ctx, &Document{Entities: []Entity{{Name: "x"}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResult_Encode(t *testing.T) {
	p := newProcessor(t)
	res, err := p.Process(context.Background(), &Document{Entities: []Entity{
		{Name: "fn", Comment: "@ngdoc method\n@param {Foo|string} x the x"},
	}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.Encode(&buf, config.OutputFormatJSON))
	assert.Contains(t, buf.String(), `"typeDefinitionUrl": "<a href=\"Foo.html\">Foo</a> | string"`)

	var decoded Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Doclets, 1)
	assert.Equal(t, "Foo | string", decoded.Doclets[0].Params[0].TypeDefinition)

	buf.Reset()
	require.NoError(t, res.Encode(&buf, config.OutputFormatYAML))
	assert.Contains(t, buf.String(), "doclets:")
	assert.Contains(t, buf.String(), "typeDefinition: Foo | string")

	err = res.Encode(&buf, config.OutputFormat("xml"))
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}
