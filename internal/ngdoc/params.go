package ngdoc

import (
	"git.home.luguber.info/inful/ngdoctags/internal/doclet"
	"git.home.luguber.info/inful/ngdoctags/internal/typeexpr"
)

// Wildcard is the type definition of a tag without a {type} expression.
const Wildcard = "*"

// paramParser turns parameter-like tags into ParsedParameter records.
type paramParser struct {
	cache *typeexpr.Cache
	// dropped receives the wildcard record of an untyped tag, if set.
	dropped func(title string, rec doclet.ParsedParameter)
}

// ParseParamTypes parses tag into a record and appends it to params.
//
// When tag.Text has no {type} expression the wildcard record is built but
// dropped: ParseParamTypes returns (nil, false) and the caller keeps its
// collection as it was.
func ParseParamTypes(params []doclet.ParsedParameter, tag *doclet.Tag) ([]doclet.ParsedParameter, bool) {
	return paramParser{}.parse(params, tag)
}

func (p paramParser) parse(params []doclet.ParsedParameter, tag *doclet.Tag) ([]doclet.ParsedParameter, bool) {
	result := doclet.ParsedParameter{
		Name:        WrapDefaultNotation(tag.Value),
		Description: tag.Value.Description,
		Optional:    tag.Value.Optional,
	}
	if tag.Value.Optional {
		result.DefaultValue = tag.Value.DefaultValue
	}

	expr, ok := typeexpr.Extract(tag.Text)
	if !ok {
		result.TypeDefinition = Wildcard
		if p.dropped != nil {
			p.dropped(tag.Title, result)
		}
		return nil, false
	}

	union := p.cache.ParseUnion(expr)
	result.TypeDefinition = union.Definition()
	result.TypeDefinitionURL = union.DefinitionURL()

	return append(params, result), true
}

// WrapDefaultNotation returns the display name of a tag value: `[name]` or
// `[name=default]` when optional, the bare name otherwise.
func WrapDefaultNotation(v doclet.TagValue) string {
	if !v.Optional {
		return v.Name
	}
	name := "[" + v.Name
	if v.DefaultValue != "" {
		name += "=" + v.DefaultValue
	}
	return name + "]"
}
