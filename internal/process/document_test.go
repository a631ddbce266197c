package process

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
)

func TestLoadDocument(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "in.yaml", "entities:\n  - name: ngClick\n    comment: \"@ngdoc directive\"\n"},
		{"json", "in.json", `{"entities": [{"name": "ngClick", "comment": "@ngdoc directive"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			doc, err := LoadDocument(path)
			require.NoError(t, err)
			assert.Equal(t, []Entity{{Name: "ngClick", Comment: "@ngdoc directive"}}, doc.Entities)
		})
	}
}

func TestLoadDocument_Errors(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))

	_, err = DecodeDocument(strings.NewReader("entities: [\n"))
	assert.True(t, errors.HasCategory(err, errors.CategoryParse))

	_, err = DecodeDocument(strings.NewReader("entitys: []\n"))
	assert.True(t, errors.HasCategory(err, errors.CategoryParse))

	_, err = DecodeDocument(strings.NewReader("entities:\n  - comment: x\n"))
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestDecodeDocument_Empty(t *testing.T) {
	doc, err := DecodeDocument(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Entities)
}
