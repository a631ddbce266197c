// Package process runs documented entities through a tag dictionary and
// collects the resulting doclets.
package process

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/ngdoctags/internal/dictionary"
	"git.home.luguber.info/inful/ngdoctags/internal/doclet"
	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
	"git.home.luguber.info/inful/ngdoctags/internal/logfields"
	"git.home.luguber.info/inful/ngdoctags/internal/metrics"
)

// otherTag labels metrics for titles no definition claimed.
const otherTag = "other"

// Warning is a tag problem that did not stop processing.
type Warning struct {
	Entity  string `json:"entity" yaml:"entity"`
	Tag     string `json:"tag" yaml:"tag"`
	Message string `json:"message" yaml:"message"`
}

// Result holds the processed doclets in input order.
type Result struct {
	Doclets  []*doclet.Doclet `json:"doclets" yaml:"doclets"`
	Warnings []Warning        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Processor applies comment tags to doclets.
type Processor struct {
	dict     *dictionary.Registry
	recorder metrics.Recorder
}

// Option configures a Processor.
type Option func(*Processor)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(p *Processor) {
		if r != nil {
			p.recorder = r
		}
	}
}

// New creates a processor over dict, which must already carry its tag definitions.
func New(dict *dictionary.Registry, opts ...Option) *Processor {
	p := &Processor{dict: dict, recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process builds one doclet per entity. Tags are applied strictly in comment
// order, each callback running to completion before the next tag is parsed.
// ctx is only consulted between entities.
func (p *Processor) Process(ctx context.Context, doc *Document) (*Result, error) {
	if doc == nil {
		return nil, errors.InternalError("nil document").Build()
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{Doclets: make([]*doclet.Doclet, 0, len(doc.Entities))}
	for _, entity := range doc.Entities {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapError(err, errors.CategoryInternal, "processing cancelled").
				WithContext(logfields.KeyEntity, entity.Name).
				Build()
		}
		res.Doclets = append(res.Doclets, p.processEntity(entity, res))
	}

	elapsed := time.Since(start)
	p.recorder.IncEntities(len(res.Doclets))
	p.recorder.ObserveProcessDuration(elapsed)
	slog.Debug("Processed entities",
		logfields.EntityCount(len(res.Doclets)),
		slog.Int("warnings", len(res.Warnings)),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return res, nil
}

func (p *Processor) processEntity(entity Entity, res *Result) *doclet.Doclet {
	d := doclet.New(entity.Name, entity.Comment)
	description, tags := dictionary.ParseComment(entity.Comment)
	d.Description = description

	for _, tag := range tags {
		err := p.dict.Apply(d, tag.Title, tag.Text)
		label := p.dict.Normalize(tag.Title)

		switch {
		case err == nil:
			p.recorder.IncTagResult(label, metrics.ResultHandled)
			continue
		case stderrors.Is(err, dictionary.ErrUnknownTag):
			p.recorder.IncTagResult(otherTag, metrics.ResultUnknown)
		default:
			p.recorder.IncTagResult(label, metrics.ResultInvalid)
		}

		slog.Debug("Tag not applied",
			logfields.Entity(entity.Name),
			logfields.DocletID(d.ID),
			logfields.Tag(tag.Title),
			logfields.Error(err))
		res.Warnings = append(res.Warnings, Warning{
			Entity:  entity.Name,
			Tag:     tag.Title,
			Message: message(err),
		})
	}
	return d
}

func message(err error) string {
	if ce, ok := errors.AsClassified(err); ok {
		return ce.Message()
	}
	return err.Error()
}
