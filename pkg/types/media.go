package types

import (
	"fmt"
	"strings"
)

// Allowed media formats.
const (
	FormatCD    = "CD"
	FormatVinyl = "Vinyl"
	FormatTape  = "Tape"
)

// Formats lists the allowed format values in documentation order.
var Formats = []string{FormatCD, FormatVinyl, FormatTape}

// validFormats is the set of recognized format values.
var validFormats = map[string]bool{
	FormatCD:    true,
	FormatVinyl: true,
	FormatTape:  true,
}

// ValidFormat reports whether s is an allowed media format.
func ValidFormat(s string) bool {
	return validFormats[s]
}

// MediaItem represents a single catalog record for a piece of physical media.
// ID is assigned by the store on creation and never changes afterwards.
type MediaItem struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Location string `json:"location"`
	Format   string `json:"format"`
}

// FieldError describes a single validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a MediaItem, not just the
// first one, so clients get per-field messages in one round trip.
type ValidationError struct {
	Fields []FieldError
}

// Error returns a summary of all field violations.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// FieldMap returns the violations keyed by field name.
func (e *ValidationError) FieldMap() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Message
	}
	return m
}

// Validate checks the required fields and the format enum. It returns a
// *ValidationError listing every violation, or nil when the item is valid.
// The ID field is ignored; the store owns ID assignment.
func (m MediaItem) Validate() error {
	var fields []FieldError

	if strings.TrimSpace(m.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(m.Artist) == "" {
		fields = append(fields, FieldError{Field: "artist", Message: "artist is required"})
	}
	if strings.TrimSpace(m.Location) == "" {
		fields = append(fields, FieldError{Field: "location", Message: "location is required"})
	}
	if !ValidFormat(m.Format) {
		fields = append(fields, FieldError{
			Field:   "format",
			Message: fmt.Sprintf("format must be one of: %s", strings.Join(Formats, ", ")),
		})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
