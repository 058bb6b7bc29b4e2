// Package archive accumulates files and literal strings into zip archives
// with exclusion filtering, dry-run previews, and an ordered MANIFEST entry.
package archive
