// Package config exposes the config command group for inspecting and editing
// the two-tier persistent configuration store, covering merged reads, tiered
// writes with interactive tier selection, and table or line-oriented listings.
package config
