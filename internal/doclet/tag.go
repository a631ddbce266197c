package doclet

// TagValue is the structured value the dictionary derives from a tag's text.
type TagValue struct {
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Type         string `json:"type,omitempty" yaml:"type,omitempty"`
	Optional     bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
	DefaultValue string `json:"defaultvalue,omitempty" yaml:"defaultvalue,omitempty"`
}

// Tag is one `@title text` entry of a comment.
type Tag struct {
	// Title is the canonical title after synonym resolution and
	// OriginalTitle the title as written in the comment.
	Title         string `json:"title" yaml:"title"`
	OriginalTitle string `json:"originalTitle,omitempty" yaml:"originalTitle,omitempty"`

	// Text is the trimmed tag text following the title.
	Text  string   `json:"text,omitempty" yaml:"text,omitempty"`
	Value TagValue `json:"value" yaml:"value"`
}

// Literal returns the value of a tag that has no type or name.
func (t *Tag) Literal() string {
	return t.Text
}
