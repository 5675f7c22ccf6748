// export_test.go exports private functions for white-box testing.
package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// Message returns the message of an error entry.
func (e errorEntry) Message() string { return e.message }

// Metadata returns the metadata of an error entry.
func (e errorEntry) Metadata() map[string]any { return e.metadata }
