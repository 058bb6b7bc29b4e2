// Package configstore persists flat section.name configuration maps across
// permanent and local tiers backed by pluggable on-disk formats.
package configstore
