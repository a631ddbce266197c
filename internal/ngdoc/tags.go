package ngdoc

import (
	"regexp"

	"git.home.luguber.info/inful/ngdoctags/internal/dictionary"
	"git.home.luguber.info/inful/ngdoctags/internal/doclet"
)

// Tag titles defined by the plugin.
const (
	TagNgDoc      = "ngdoc"
	TagAttribute  = "attribute"
	TagParam      = "param"
	TagProperty   = "property"
	TagReturns    = "returns"
	TagRestrict   = "restrict"
	TagPriority   = "priority"
	TagEventType  = "eventType"
	TagAnimations = "animations"
	TagScope      = "scope"
)

// Titles lists every tag the plugin defines, in registration order.
var Titles = []string{
	TagNgDoc, TagAttribute, TagParam, TagProperty, TagReturns,
	TagRestrict, TagPriority, TagEventType, TagAnimations, TagScope,
}

var returnsPattern = regexp.MustCompile(`@returns? (\{.*\}.*)`)

// defineTags registers every ngdoc tag on dict.
func defineTags(dict dictionary.Dictionary, params paramParser) {
	dict.DefineTag(TagNgDoc, dictionary.Definition{
		MustHaveValue: true,
		OnTagged: func(d *doclet.Doclet, tag *doclet.Tag) {
			if tag.Literal() == "method" {
				d.SetKind(doclet.KindFunction)
			} else {
				d.SetKind(doclet.KindClass)
			}
			d.NgDoc = tag.Literal()
		},
	})

	dict.DefineTag(TagAttribute, dictionary.Definition{
		MustHaveValue: true,
		CanHaveType:   true,
		CanHaveName:   true,
		OnTagged: func(d *doclet.Doclet, tag *doclet.Tag) {
			if attrs, ok := params.parse(d.Attributes, tag); ok {
				d.Attributes = attrs
			}
		},
	}).Synonym("attr")

	dict.DefineTag(TagParam, dictionary.Definition{
		MustHaveValue: true,
		CanHaveType:   true,
		CanHaveName:   true,
		OnTagged: func(d *doclet.Doclet, tag *doclet.Tag) {
			if ps, ok := params.parse(d.Params, tag); ok {
				d.Params = ps
			}
		},
	})

	dict.DefineTag(TagProperty, dictionary.Definition{
		MustHaveValue: true,
		CanHaveType:   true,
		CanHaveName:   true,
		OnTagged: func(d *doclet.Doclet, tag *doclet.Tag) {
			if props, ok := params.parse(d.Properties, tag); ok {
				d.Properties = props
			}
		},
	})

	// The tag text may have lost its type expression, so it is read back
	// from the raw comment.
	dict.DefineTag(TagReturns, dictionary.Definition{
		CanHaveType: true,
		OnTagged: func(d *doclet.Doclet, tag *doclet.Tag) {
			m := returnsPattern.FindStringSubmatch(d.Comment)
			if m == nil {
				return
			}
			tag.Text = m[1]
			if rets, ok := params.parse(d.Returns, tag); ok {
				d.Returns = rets
			}
		},
	}).Synonym("return")

	dict.DefineTag(TagRestrict, dictionary.Definition{
		MustHaveValue: true,
		OnTagged: func(d *doclet.Doclet, tag *doclet.Tag) {
			d.Restrict = Restrictions(tag.Literal())
		},
	})

	dict.DefineTag(TagPriority, dictionary.Definition{
		MustHaveValue: true,
		OnTagged: func(d *doclet.Doclet, tag *doclet.Tag) {
			d.Priority = tag.Literal()
		},
	})

	dict.DefineTag(TagEventType, dictionary.Definition{
		MustHaveValue: true,
		OnTagged: func(d *doclet.Doclet, tag *doclet.Tag) {
			d.EventType = tag.Literal()
		},
	})

	dict.DefineTag(TagAnimations, dictionary.Definition{
		MustHaveValue: true,
		OnTagged: func(d *doclet.Doclet, tag *doclet.Tag) {
			d.Animations = tag.Literal()
		},
	})

	dict.DefineTag(TagScope, dictionary.Definition{
		OnTagged: func(d *doclet.Doclet, tag *doclet.Tag) {
			d.DirectiveScope = DirectiveScope(tag.Literal())
		},
	})
}
