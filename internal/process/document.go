package process

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
	"git.home.luguber.info/inful/ngdoctags/internal/logfields"
)

// Entity is one documented code entity: its name and the raw doc comment attached to it.
type Entity struct {
	Name    string `json:"name" yaml:"name"`
	Comment string `json:"comment" yaml:"comment"`
}

// Document is the input handed to Process.
type Document struct {
	Entities []Entity `json:"entities" yaml:"entities"`
}

// LoadDocument reads an input document. JSON input is accepted as the YAML subset it is.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		cat := errors.CategoryFileSystem
		if os.IsNotExist(err) {
			cat = errors.CategoryNotFound
		}
		return nil, errors.WrapError(err, cat, "failed to read input").
			WithContext(logfields.KeyInput, path).
			Build()
	}

	return decodeDocument(bytes.NewReader(data), path)
}

// DecodeDocument decodes and validates a document from r.
func DecodeDocument(r io.Reader) (*Document, error) {
	return decodeDocument(r, "")
}

func decodeDocument(r io.Reader, source string) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.WrapError(err, errors.CategoryParse, "failed to decode input document").
			WithContext(logfields.KeyInput, source).
			Build()
	}
	if err := doc.validate(source); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks that every entity is named.
func (d *Document) Validate() error {
	return d.validate("")
}

func (d *Document) validate(source string) error {
	for i, e := range d.Entities {
		if e.Name == "" {
			return errors.ValidationError("entity has no name").
				WithContext(logfields.KeyInput, source).
				WithContext("index", i).
				Build()
		}
	}
	return nil
}
