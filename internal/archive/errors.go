package archive

import (
	"errors"
	"fmt"
)

const (
	buildErrorMessageTemplateConstant              = "fatal error writing zip file %q: %s: %v"
	missingSourceDirectoryMessageTemplateConstant  = "zip source directory %q does not exist"
	invalidExclusionPatternMessageTemplateConstant = "invalid exclusion pattern %q: %v"
	manifestNotFoundMessageTemplateConstant        = "archive %q has no %s entry"
	archiveNotOpenedMessageConstant                = "archive has not been opened"
)

// ErrArchiveNotOpened is reported when entries are added before Open.
var ErrArchiveNotOpened = errors.New(archiveNotOpenedMessageConstant)

// BuildError reports a failed archive operation together with the archive path.
type BuildError struct {
	ArchivePath string
	Operation   string
	Err         error
}

// Error describes the archive path and the failing operation.
func (buildError *BuildError) Error() string {
	return fmt.Sprintf(buildErrorMessageTemplateConstant, buildError.ArchivePath, buildError.Operation, buildError.Err)
}

// Unwrap exposes the underlying I/O failure.
func (buildError *BuildError) Unwrap() error {
	return buildError.Err
}

// MissingSourceDirectoryError reports an archive source directory that does not exist.
type MissingSourceDirectoryError struct {
	SourceDirectory string
}

// Error names the missing source directory.
func (missingError *MissingSourceDirectoryError) Error() string {
	return fmt.Sprintf(missingSourceDirectoryMessageTemplateConstant, missingError.SourceDirectory)
}

// InvalidExclusionPatternError reports an exclusion pattern that fails to compile.
type InvalidExclusionPatternError struct {
	Pattern string
	Err     error
}

// Error names the offending pattern and the compilation failure.
func (patternError *InvalidExclusionPatternError) Error() string {
	return fmt.Sprintf(invalidExclusionPatternMessageTemplateConstant, patternError.Pattern, patternError.Err)
}

// Unwrap exposes the underlying compilation failure.
func (patternError *InvalidExclusionPatternError) Unwrap() error {
	return patternError.Err
}

// ManifestNotFoundError reports an archive without a manifest entry.
type ManifestNotFoundError struct {
	ArchivePath string
}

// Error names the archive lacking a manifest.
func (manifestError *ManifestNotFoundError) Error() string {
	return fmt.Sprintf(manifestNotFoundMessageTemplateConstant, manifestError.ArchivePath, ManifestEntryName)
}
