package dictionary

import (
	"strings"
	"unicode"

	"git.home.luguber.info/inful/ngdoctags/internal/doclet"
)

// ParseTagText splits tag text of the form `{type} name description` or
// `{type} [name=default] description` into a tag value. The type is read only
// when canHaveType is set and the name only when canHaveName is set; whatever
// is left becomes the description, minus a leading "- " separator.
// Closure-compiler optional markers are not interpreted: in `{string=} x` the
// type stays "string=" and the name is not marked optional.
func ParseTagText(text string, canHaveType, canHaveName bool) doclet.TagValue {
	var v doclet.TagValue
	rest := strings.TrimSpace(text)

	if canHaveType && strings.HasPrefix(rest, "{") {
		if end := matchingClose(rest, '{', '}'); end > 0 {
			v.Type = strings.TrimSpace(rest[1:end])
			rest = strings.TrimSpace(rest[end+1:])
		}
	}

	if canHaveName && rest != "" {
		var token string
		token, rest = splitName(rest)
		applyName(&v, token)
	}

	rest = strings.TrimPrefix(rest, "- ")
	if rest == "-" {
		rest = ""
	}
	v.Description = strings.TrimSpace(rest)
	return v
}

// matchingClose returns the index of the bracket closing s[0], or -1.
func matchingClose(s string, open, close byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func splitName(s string) (token, rest string) {
	if strings.HasPrefix(s, "[") {
		if end := matchingClose(s, '[', ']'); end > 0 {
			return s[:end+1], strings.TrimSpace(s[end+1:])
		}
	}
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i], strings.TrimSpace(s[i:])
	}
	return s, ""
}

func applyName(v *doclet.TagValue, token string) {
	if len(token) >= 2 && token[0] == '[' && token[len(token)-1] == ']' {
		v.Optional = true
		inner := token[1 : len(token)-1]
		if i := strings.Index(inner, "="); i >= 0 {
			v.Name = strings.TrimSpace(inner[:i])
			v.DefaultValue = strings.TrimSpace(inner[i+1:])
			return
		}
		v.Name = strings.TrimSpace(inner)
		return
	}
	v.Name = token
}

// RawTag is one `@title text` pair split out of a comment body.
type RawTag struct {
	Title string
	Text  string
}

// ParseComment splits a doc comment into its leading description and its tags.
// Comment delimiters and leading `*` decoration are removed; a line starting
// with `@` opens a new tag and following lines continue it.
func ParseComment(comment string) (string, []RawTag) {
	var (
		description []string
		tags        []RawTag
		current     *RawTag
	)

	for _, line := range strings.Split(comment, "\n") {
		line = cleanCommentLine(line)
		if strings.HasPrefix(line, "@") {
			title, text := line[1:], ""
			if i := strings.IndexFunc(title, unicode.IsSpace); i >= 0 {
				title, text = title[:i], title[i:]
			}
			tags = append(tags, RawTag{Title: title, Text: strings.TrimSpace(text)})
			current = &tags[len(tags)-1]
			continue
		}
		if current == nil {
			description = append(description, line)
			continue
		}
		if current.Text == "" {
			current.Text = line
		} else {
			current.Text += "\n" + line
		}
	}

	for i := range tags {
		tags[i].Text = strings.TrimSpace(tags[i].Text)
	}
	return strings.TrimSpace(strings.Join(description, "\n")), tags
}

func cleanCommentLine(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "/**")
	line = strings.TrimPrefix(line, "/*")
	line = strings.TrimSuffix(line, "*/")
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "*") {
		line = strings.TrimSpace(line[1:])
	}
	return line
}
