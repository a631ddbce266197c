package doclet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DeterministicID(t *testing.T) {
	a := New("ngModel", "/** @ngdoc directive */")
	b := New("ngModel", "")
	c := New("ngBind", "")

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)

	parsed, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())

	assert.Equal(t, "ngModel", a.Name)
	assert.Equal(t, "/** @ngdoc directive */", a.Comment)
}

func TestDoclet_Mutators(t *testing.T) {
	d := New("x", "")
	d.SetKind(KindFunction)
	assert.Equal(t, "function", d.Kind)

	d.AddUnknownTag(Tag{Title: "since", Text: "1.2"})
	d.AddUnknownTag(Tag{Title: "see", Text: "y"})
	require.Len(t, d.Tags, 2)
	assert.Equal(t, "since", d.Tags[0].Title)

	tag := Tag{Text: "E"}
	assert.Equal(t, "E", tag.Literal())
}
