// Package pack exposes the archive packing command and its manifest
// inspection companion.
package pack
