// Package dictionary is the host-side tag dictionary plugins register their
// tag definitions with. It resolves synonyms, derives structured tag values
// from raw tag text and dispatches each tag to its definition's callback.
package dictionary

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"git.home.luguber.info/inful/ngdoctags/internal/doclet"
	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
	"git.home.luguber.info/inful/ngdoctags/internal/logfields"
)

// OnTaggedFunc handles one tag for the doclet being built.
type OnTaggedFunc func(d *doclet.Doclet, tag *doclet.Tag)

// Definition declares how a tag is parsed and handled.
type Definition struct {
	// MustHaveValue rejects tags with empty text.
	MustHaveValue bool
	// CanHaveType parses a leading {type} expression into the tag value.
	CanHaveType bool
	// CanHaveName parses a name, optionally [name=default], after the type.
	CanHaveName bool
	OnTagged    OnTaggedFunc
}

// Dictionary is the registration surface handed to plugins.
type Dictionary interface {
	DefineTag(title string, def Definition) *Entry
}

// Entry is a registered tag definition. Synonym chains off DefineTag.
type Entry struct {
	Title string
	Definition

	registry *Registry
}

// Synonym registers alias as another title for the entry's tag.
func (e *Entry) Synonym(alias string) *Entry {
	e.registry.addSynonym(alias, e.Title)
	return e
}

// ErrUnknownTag marks a tag no definition claimed. It is a warning: the tag is
// kept on the doclet and processing continues.
var ErrUnknownTag = errors.ValidationError("unknown tag").Warning().Build()

// ErrMissingValue marks a tag whose definition requires a value but got none.
var ErrMissingValue = errors.ValidationError("tag requires a value").Build()

// Registry is an in-memory Dictionary. Titles are case-insensitive.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]*Entry
	synonyms map[string]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries:  make(map[string]*Entry),
		synonyms: make(map[string]string),
	}
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// DefineTag registers def under title, replacing an earlier definition.
func (r *Registry) DefineTag(title string, def Definition) *Entry {
	canonical := normalizeTitle(title)
	entry := &Entry{Title: canonical, Definition: def, registry: r}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[canonical]; exists {
		slog.Debug("Replacing tag definition", logfields.Tag(canonical))
	}
	r.entries[canonical] = entry
	return entry
}

func (r *Registry) addSynonym(alias, canonical string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.synonyms[normalizeTitle(alias)] = canonical
}

// Normalize resolves title to its canonical form.
func (r *Registry) Normalize(title string) string {
	t := normalizeTitle(title)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if canonical, ok := r.synonyms[t]; ok {
		return canonical
	}
	return t
}

// Lookup returns the definition for title or one of its synonyms.
func (r *Registry) Lookup(title string) (*Entry, bool) {
	canonical := r.Normalize(title)
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[canonical]
	return entry, ok
}

// Titles returns the canonical titles in sorted order.
func (r *Registry) Titles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	titles := make([]string, 0, len(r.entries))
	for t := range r.entries {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles
}

// SynonymsOf returns the sorted aliases registered for a canonical title.
func (r *Registry) SynonymsOf(title string) []string {
	canonical := normalizeTitle(title)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var aliases []string
	for alias, target := range r.synonyms {
		if target == canonical {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}

// NewTag builds a tag from its title and raw text, parsing the value the way
// the title's definition asks for. Unknown titles get a plain value.
func (r *Registry) NewTag(title, text string) (*doclet.Tag, *Entry, error) {
	tag := &doclet.Tag{
		Title:         r.Normalize(title),
		OriginalTitle: title,
		Text:          strings.TrimSpace(text),
	}

	entry, ok := r.Lookup(title)
	if !ok {
		return tag, nil, tagError(ErrUnknownTag, title)
	}

	if entry.MustHaveValue && tag.Text == "" {
		return tag, entry, tagError(ErrMissingValue, title)
	}

	if entry.CanHaveType || entry.CanHaveName {
		tag.Value = ParseTagText(tag.Text, entry.CanHaveType, entry.CanHaveName)
	}
	return tag, entry, nil
}

// tagError copies sentinel and attaches the offending title.
func tagError(sentinel *errors.ClassifiedError, title string) error {
	return errors.NewError(sentinel.Category(), sentinel.Message()).
		WithSeverity(sentinel.Severity()).
		WithContext(logfields.KeyTag, title).
		Build()
}

// Apply parses one tag and runs its callback against d. Unknown tags are
// recorded on the doclet and reported with ErrUnknownTag semantics.
func (r *Registry) Apply(d *doclet.Doclet, title, text string) error {
	tag, entry, err := r.NewTag(title, text)
	if entry == nil {
		d.AddUnknownTag(*tag)
		return err
	}
	if err != nil {
		return err
	}
	if entry.OnTagged != nil {
		entry.OnTagged(d, tag)
	}
	return nil
}
