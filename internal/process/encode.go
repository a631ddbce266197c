package process

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/ngdoctags/internal/config"
	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
)

// Encode writes r to w in the given format.
func (r *Result) Encode(w io.Writer, format config.OutputFormat) error {
	switch format {
	case config.OutputFormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(r); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "failed to encode JSON output").Build()
		}
	case config.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "failed to encode YAML output").Build()
		}
		if err := enc.Close(); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "failed to flush YAML output").Build()
		}
	default:
		return errors.ValidationError("unsupported output format").
			WithContext("format", string(format)).
			Build()
	}
	return nil
}
