package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyTag         = "tag"
	KeyEntity      = "entity"
	KeyDocletID    = "doclet_id"
	KeyPlugin      = "plugin"
	KeyInput       = "input"
	KeyOutput      = "output"
	KeyFormat      = "format"
	KeyEntityCount = "entity_count"
	KeyDurationMS  = "duration_ms"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Tag(title string) slog.Attr      { return slog.String(KeyTag, title) }
func Entity(name string) slog.Attr    { return slog.String(KeyEntity, name) }
func DocletID(id string) slog.Attr    { return slog.String(KeyDocletID, id) }
func Plugin(name string) slog.Attr    { return slog.String(KeyPlugin, name) }
func Input(path string) slog.Attr     { return slog.String(KeyInput, path) }
func Output(path string) slog.Attr    { return slog.String(KeyOutput, path) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func EntityCount(n int) slog.Attr     { return slog.Int(KeyEntityCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
