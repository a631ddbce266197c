// Package doclet holds the in-memory record accumulated for one documented
// code entity while its comment tags are processed.
package doclet

import (
	"github.com/google/uuid"
)

// Kinds assigned by the ngdoc tag.
const (
	KindFunction = "function"
	KindClass    = "class"
)

// idNamespace scopes doclet IDs so that the same entity name always maps to the same ID.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("ngdoctags:doclet"))

// ParsedParameter is one documented parameter, property, attribute or return value.
type ParsedParameter struct {
	// Name is the display name; optional entries are wrapped as [name] or [name=default].
	Name string `json:"name" yaml:"name"`

	Description  string `json:"description" yaml:"description"`
	Optional     bool   `json:"optional" yaml:"optional"`
	DefaultValue string `json:"default,omitempty" yaml:"default,omitempty"`

	// TypeDefinition is the pipe separated human readable union and
	// TypeDefinitionURL the same union with non built-in names wrapped in anchors.
	TypeDefinition    string `json:"typeDefinition" yaml:"typeDefinition"`
	TypeDefinitionURL string `json:"typeDefinitionUrl" yaml:"typeDefinitionUrl"`
}

// Doclet accumulates all metadata for one documented entity.
type Doclet struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Comment string `json:"comment" yaml:"comment"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	NgDoc   string `json:"ngdoc,omitempty" yaml:"ngdoc,omitempty"`

	// Description is the comment text preceding the first tag.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Attributes []ParsedParameter `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Params     []ParsedParameter `json:"params,omitempty" yaml:"params,omitempty"`
	Properties []ParsedParameter `json:"properties,omitempty" yaml:"properties,omitempty"`
	Returns    []ParsedParameter `json:"returns,omitempty" yaml:"returns,omitempty"`

	Restrict       []string `json:"restrict,omitempty" yaml:"restrict,omitempty"`
	Priority       string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	EventType      string   `json:"eventType,omitempty" yaml:"eventType,omitempty"`
	Animations     string   `json:"animations,omitempty" yaml:"animations,omitempty"`
	DirectiveScope string   `json:"directiveScope,omitempty" yaml:"directiveScope,omitempty"`

	// Tags collects tags no definition claimed, in comment order.
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// New creates a doclet for the named entity with its raw comment body.
func New(name, comment string) *Doclet {
	return &Doclet{
		ID:      uuid.NewSHA1(idNamespace, []byte(name)).String(),
		Name:    name,
		Comment: comment,
	}
}

// SetKind records the entity kind.
func (d *Doclet) SetKind(kind string) {
	d.Kind = kind
}

// AddUnknownTag keeps a tag that no definition handled.
func (d *Doclet) AddUnknownTag(tag Tag) {
	d.Tags = append(d.Tags, tag)
}
