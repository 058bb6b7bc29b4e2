package configstore

import "fmt"

const (
	unsupportedFormatMessageTemplateConstant = "unsupported configuration format %q"
	malformedKeyMessageTemplateConstant      = "configuration key %q must include a section, e.g. %q"
	malformedKeySuggestionTemplateConstant   = "db.%s"
	storeIOMessageTemplateConstant           = "configuration %s failed for %q: %v"
)

// UnsupportedFormatError reports a backend format name with no registered implementation.
type UnsupportedFormatError struct {
	FormatName string
}

// Error describes the unsupported format request.
func (unsupportedError *UnsupportedFormatError) Error() string {
	return fmt.Sprintf(unsupportedFormatMessageTemplateConstant, unsupportedError.FormatName)
}

// MalformedKeyError reports a configuration key that lacks a section separator.
type MalformedKeyError struct {
	Key string
}

// Error describes the malformed key and suggests the expected form.
func (malformedError *MalformedKeyError) Error() string {
	suggestedKey := fmt.Sprintf(malformedKeySuggestionTemplateConstant, malformedError.Key)
	return fmt.Sprintf(malformedKeyMessageTemplateConstant, malformedError.Key, suggestedKey)
}

// StoreIOError reports a failed load or save against a configuration file.
type StoreIOError struct {
	Path      string
	Operation string
	Err       error
}

// Error describes the failing operation and file path.
func (storeError *StoreIOError) Error() string {
	return fmt.Sprintf(storeIOMessageTemplateConstant, storeError.Operation, storeError.Path, storeError.Err)
}

// Unwrap exposes the underlying I/O failure.
func (storeError *StoreIOError) Unwrap() error {
	return storeError.Err
}
