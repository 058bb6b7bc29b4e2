package archive

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const (
	// ManifestEntryName is the archive entry listing every written destination path.
	ManifestEntryName = "MANIFEST"

	manifestLineSeparatorConstant = "\n"

	operationOpenConstant       = "open"
	operationWriteEntryConstant = "write entry"
	operationReadSourceConstant = "read source"
	operationWalkSourceConstant = "walk source"
	operationCloseConstant      = "close"

	archiveOpenedMessageConstant       = "archive opened"
	archiveDryRunOpenMessageConstant   = "dry-run: archive would be created"
	entryAddedMessageConstant          = "entry added"
	entryDryRunMessageConstant         = "dry-run: entry would be added"
	entryExcludedMessageConstant       = "entry excluded"
	archiveClosedMessageConstant       = "archive closed"
	archivePathLogFieldConstant        = "archive_path"
	sourcePathLogFieldConstant         = "source_path"
	destinationPathLogFieldConstant    = "destination_path"
	exclusionPatternLogFieldConstant   = "exclusion_pattern"
	manifestEntryCountLogFieldConstant = "manifest_entries"
)

// BuilderOptions configures a zip archive builder at construction time.
type BuilderOptions struct {
	Logger            *zap.Logger
	DryRun            bool
	ExclusionPatterns []string
}

// Builder accumulates files and literal strings into a zip archive while
// recording every written destination path in an ordered manifest. Source
// paths matching an exclusion pattern are skipped. Under dry-run no file is
// created and add operations only log the intended action.
type Builder struct {
	logger               *zap.Logger
	dryRun               bool
	exclusionExpressions []*regexp.Regexp
	archivePath          string
	archiveFile          *os.File
	zipWriter            *zip.Writer
	manifestEntries      []string
}

// NewBuilder compiles the configured exclusion patterns and returns a builder.
func NewBuilder(options BuilderOptions) (*Builder, error) {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	exclusionExpressions, compileError := compileExclusionPatterns(options.ExclusionPatterns)
	if compileError != nil {
		return nil, compileError
	}

	return &Builder{
		logger:               logger,
		dryRun:               options.DryRun,
		exclusionExpressions: exclusionExpressions,
	}, nil
}

// Open creates the zip archive for writing. Under dry-run no file is created.
func (builder *Builder) Open(outputPath string) error {
	builder.archivePath = outputPath

	if builder.dryRun {
		builder.logger.Info(archiveDryRunOpenMessageConstant, zap.String(archivePathLogFieldConstant, outputPath))
		return nil
	}

	archiveFile, createError := os.Create(outputPath)
	if createError != nil {
		return &BuildError{ArchivePath: outputPath, Operation: operationOpenConstant, Err: createError}
	}

	builder.archiveFile = archiveFile
	builder.zipWriter = zip.NewWriter(archiveFile)
	builder.logger.Debug(archiveOpenedMessageConstant, zap.String(archivePathLogFieldConstant, outputPath))
	return nil
}

// AddFile copies the source file into the archive under the destination path
// and appends the destination to the manifest. Sources matching an exclusion
// pattern are skipped silently apart from a debug log.
func (builder *Builder) AddFile(sourcePath string, destinationPath string) error {
	return builder.addFileFiltered(sourcePath, destinationPath, nil)
}

// AddString writes literal content as an archive entry under the destination
// path. String entries are never subject to exclusion filtering.
func (builder *Builder) AddString(content string, destinationPath string) error {
	if builder.dryRun {
		builder.logger.Info(entryDryRunMessageConstant, zap.String(destinationPathLogFieldConstant, destinationPath))
		return nil
	}

	if writeError := builder.writeEntry(destinationPath, strings.NewReader(content)); writeError != nil {
		return writeError
	}

	builder.manifestEntries = append(builder.manifestEntries, destinationPath)
	builder.logger.Debug(entryAddedMessageConstant, zap.String(destinationPathLogFieldConstant, destinationPath))
	return nil
}

// AddDirectory recursively walks the source directory, mapping each regular
// file to destinationPrefix/<relative path> with AddFile semantics. The
// per-call exclusion patterns apply in addition to the builder's own.
func (builder *Builder) AddDirectory(sourceDirectory string, destinationPrefix string, extraExclusionPatterns ...string) error {
	directoryInfo, statError := os.Stat(sourceDirectory)
	if statError != nil || !directoryInfo.IsDir() {
		return &MissingSourceDirectoryError{SourceDirectory: sourceDirectory}
	}

	extraExclusionExpressions, compileError := compileExclusionPatterns(extraExclusionPatterns)
	if compileError != nil {
		return compileError
	}

	walkError := filepath.WalkDir(sourceDirectory, func(currentPath string, directoryEntry fs.DirEntry, entryError error) error {
		if entryError != nil {
			return entryError
		}
		if !directoryEntry.Type().IsRegular() {
			return nil
		}

		relativePath, relativeError := filepath.Rel(sourceDirectory, currentPath)
		if relativeError != nil {
			return relativeError
		}

		destinationPath := path.Join(destinationPrefix, filepath.ToSlash(relativePath))
		return builder.addFileFiltered(currentPath, destinationPath, extraExclusionExpressions)
	})
	if walkError != nil {
		if buildError, isBuildError := walkError.(*BuildError); isBuildError {
			return buildError
		}
		return &BuildError{ArchivePath: builder.archivePath, Operation: operationWalkSourceConstant, Err: walkError}
	}
	return nil
}

// Close writes the accumulated manifest as the final archive entry and
// finalizes the zip. Closing a never-opened (dry-run) builder is a no-op.
func (builder *Builder) Close() error {
	if builder.zipWriter == nil {
		return nil
	}

	manifestContent := strings.Join(builder.manifestEntries, manifestLineSeparatorConstant) + manifestLineSeparatorConstant
	if writeError := builder.writeEntry(ManifestEntryName, strings.NewReader(manifestContent)); writeError != nil {
		return writeError
	}

	if closeError := builder.zipWriter.Close(); closeError != nil {
		return &BuildError{ArchivePath: builder.archivePath, Operation: operationCloseConstant, Err: closeError}
	}
	if closeError := builder.archiveFile.Close(); closeError != nil {
		return &BuildError{ArchivePath: builder.archivePath, Operation: operationCloseConstant, Err: closeError}
	}

	builder.logger.Info(
		archiveClosedMessageConstant,
		zap.String(archivePathLogFieldConstant, builder.archivePath),
		zap.Int(manifestEntryCountLogFieldConstant, len(builder.manifestEntries)),
	)

	builder.zipWriter = nil
	builder.archiveFile = nil
	return nil
}

// ManifestEntries reports the destination paths written so far in call order.
func (builder *Builder) ManifestEntries() []string {
	duplicatedEntries := make([]string, len(builder.manifestEntries))
	copy(duplicatedEntries, builder.manifestEntries)
	return duplicatedEntries
}

func (builder *Builder) addFileFiltered(sourcePath string, destinationPath string, extraExclusionExpressions []*regexp.Regexp) error {
	resolvedSourcePath := resolveSourcePath(sourcePath)
	if matchedPattern, excluded := builder.matchExclusion(resolvedSourcePath, extraExclusionExpressions); excluded {
		builder.logger.Debug(
			entryExcludedMessageConstant,
			zap.String(sourcePathLogFieldConstant, resolvedSourcePath),
			zap.String(exclusionPatternLogFieldConstant, matchedPattern),
		)
		return nil
	}

	if builder.dryRun {
		builder.logger.Info(
			entryDryRunMessageConstant,
			zap.String(sourcePathLogFieldConstant, resolvedSourcePath),
			zap.String(destinationPathLogFieldConstant, destinationPath),
		)
		return nil
	}

	sourceFile, openError := os.Open(sourcePath)
	if openError != nil {
		return &BuildError{ArchivePath: builder.archivePath, Operation: operationReadSourceConstant, Err: openError}
	}
	defer sourceFile.Close()

	if writeError := builder.writeEntry(destinationPath, sourceFile); writeError != nil {
		return writeError
	}

	builder.manifestEntries = append(builder.manifestEntries, destinationPath)
	builder.logger.Debug(
		entryAddedMessageConstant,
		zap.String(sourcePathLogFieldConstant, resolvedSourcePath),
		zap.String(destinationPathLogFieldConstant, destinationPath),
	)
	return nil
}

func (builder *Builder) writeEntry(destinationPath string, contentReader io.Reader) error {
	if builder.zipWriter == nil {
		return &BuildError{ArchivePath: builder.archivePath, Operation: operationWriteEntryConstant, Err: ErrArchiveNotOpened}
	}

	entryWriter, createError := builder.zipWriter.Create(destinationPath)
	if createError != nil {
		return &BuildError{ArchivePath: builder.archivePath, Operation: operationWriteEntryConstant, Err: createError}
	}
	if _, copyError := io.Copy(entryWriter, contentReader); copyError != nil {
		return &BuildError{ArchivePath: builder.archivePath, Operation: operationWriteEntryConstant, Err: copyError}
	}
	return nil
}

func (builder *Builder) matchExclusion(resolvedSourcePath string, extraExclusionExpressions []*regexp.Regexp) (string, bool) {
	for _, exclusionExpression := range builder.exclusionExpressions {
		if exclusionExpression.MatchString(resolvedSourcePath) {
			return exclusionExpression.String(), true
		}
	}
	for _, exclusionExpression := range extraExclusionExpressions {
		if exclusionExpression.MatchString(resolvedSourcePath) {
			return exclusionExpression.String(), true
		}
	}
	return "", false
}

func compileExclusionPatterns(exclusionPatterns []string) ([]*regexp.Regexp, error) {
	exclusionExpressions := make([]*regexp.Regexp, 0, len(exclusionPatterns))
	for _, exclusionPattern := range exclusionPatterns {
		trimmedPattern := strings.TrimSpace(exclusionPattern)
		if len(trimmedPattern) == 0 {
			continue
		}
		compiledExpression, compileError := regexp.Compile(trimmedPattern)
		if compileError != nil {
			return nil, &InvalidExclusionPatternError{Pattern: trimmedPattern, Err: compileError}
		}
		exclusionExpressions = append(exclusionExpressions, compiledExpression)
	}
	return exclusionExpressions, nil
}

func resolveSourcePath(sourcePath string) string {
	absolutePath, absoluteError := filepath.Abs(sourcePath)
	if absoluteError != nil {
		return filepath.Clean(sourcePath)
	}
	return absolutePath
}
