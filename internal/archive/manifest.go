package archive

import (
	"archive/zip"
	"io"
	"strings"
)

const (
	operationReadManifestConstant = "read manifest"
)

// ReadManifest opens a built archive and returns its MANIFEST entry lines in
// write order, letting companion tooling enumerate archive contents without a
// full directory scan.
func ReadManifest(archivePath string) ([]string, error) {
	zipReader, openError := zip.OpenReader(archivePath)
	if openError != nil {
		return nil, &BuildError{ArchivePath: archivePath, Operation: operationReadManifestConstant, Err: openError}
	}
	defer zipReader.Close()

	for _, archivedFile := range zipReader.File {
		if archivedFile.Name != ManifestEntryName {
			continue
		}

		manifestReader, entryOpenError := archivedFile.Open()
		if entryOpenError != nil {
			return nil, &BuildError{ArchivePath: archivePath, Operation: operationReadManifestConstant, Err: entryOpenError}
		}
		manifestBytes, readError := io.ReadAll(manifestReader)
		manifestReader.Close()
		if readError != nil {
			return nil, &BuildError{ArchivePath: archivePath, Operation: operationReadManifestConstant, Err: readError}
		}

		return splitManifestLines(string(manifestBytes)), nil
	}

	return nil, &ManifestNotFoundError{ArchivePath: archivePath}
}

func splitManifestLines(manifestContent string) []string {
	manifestEntries := []string{}
	for _, manifestLine := range strings.Split(manifestContent, manifestLineSeparatorConstant) {
		trimmedLine := strings.TrimSpace(manifestLine)
		if len(trimmedLine) == 0 {
			continue
		}
		manifestEntries = append(manifestEntries, trimmedLine)
	}
	return manifestEntries
}
