package configstore

import (
	"sort"
	"strings"
)

// Pair is one key/value configuration entry in deterministic display order.
type Pair struct {
	Key   string
	Value string
}

// PersistentConfig merges a permanent and a local configuration tier into one
// logical namespace. Reads prefer the local tier; writes target one tier
// explicitly and persist it immediately.
type PersistentConfig struct {
	backend       Backend
	permanentPath string
	localPath     string
	permanent     ConfigMap
	local         ConfigMap
}

// NewPersistentConfig resolves the backend for the requested format and eagerly
// loads both tiers. Tiers whose files do not exist yet start empty.
func NewPersistentConfig(formatName string, permanentPath string, localPath string) (*PersistentConfig, error) {
	backend, backendError := NewBackend(formatName)
	if backendError != nil {
		return nil, backendError
	}

	permanentConfiguration, permanentLoadError := backend.Load(permanentPath)
	if permanentLoadError != nil {
		return nil, permanentLoadError
	}
	localConfiguration, localLoadError := backend.Load(localPath)
	if localLoadError != nil {
		return nil, localLoadError
	}

	return &PersistentConfig{
		backend:       backend,
		permanentPath: permanentPath,
		localPath:     localPath,
		permanent:     permanentConfiguration,
		local:         localConfiguration,
	}, nil
}

// Get returns the merged value for a key with the local tier winning collisions.
func (persistentConfiguration *PersistentConfig) Get(configurationKey string) (string, bool) {
	if localValue, localPresent := persistentConfiguration.local[configurationKey]; localPresent {
		return localValue, true
	}
	permanentValue, permanentPresent := persistentConfiguration.permanent[configurationKey]
	return permanentValue, permanentPresent
}

// SetPermanent stores a key/value pair in the permanent tier and saves that tier.
func (persistentConfiguration *PersistentConfig) SetPermanent(configurationKey string, configurationValue string) error {
	persistentConfiguration.permanent[configurationKey] = configurationValue
	return persistentConfiguration.backend.Save(persistentConfiguration.permanentPath, persistentConfiguration.permanent)
}

// SetLocal stores a key/value pair in the local tier and saves that tier.
func (persistentConfiguration *PersistentConfig) SetLocal(configurationKey string, configurationValue string) error {
	persistentConfiguration.local[configurationKey] = configurationValue
	return persistentConfiguration.backend.Save(persistentConfiguration.localPath, persistentConfiguration.local)
}

// Query returns the merged keyed union of both tiers restricted to keys with
// the literal prefix. The empty prefix selects every key.
func (persistentConfiguration *PersistentConfig) Query(filterPrefix string) ConfigMap {
	mergedConfiguration := ConfigMap{}
	for configurationKey, configurationValue := range persistentConfiguration.permanent {
		if strings.HasPrefix(configurationKey, filterPrefix) {
			mergedConfiguration[configurationKey] = configurationValue
		}
	}
	for configurationKey, configurationValue := range persistentConfiguration.local {
		if strings.HasPrefix(configurationKey, filterPrefix) {
			mergedConfiguration[configurationKey] = configurationValue
		}
	}
	return mergedConfiguration
}

// QueryPairs returns the merged selection as key-sorted pairs for display.
func (persistentConfiguration *PersistentConfig) QueryPairs(filterPrefix string) []Pair {
	mergedConfiguration := persistentConfiguration.Query(filterPrefix)
	sortedKeys := make([]string, 0, len(mergedConfiguration))
	for configurationKey := range mergedConfiguration {
		sortedKeys = append(sortedKeys, configurationKey)
	}
	sort.Strings(sortedKeys)

	orderedPairs := make([]Pair, 0, len(sortedKeys))
	for _, configurationKey := range sortedKeys {
		orderedPairs = append(orderedPairs, Pair{Key: configurationKey, Value: mergedConfiguration[configurationKey]})
	}
	return orderedPairs
}

// PermanentPath reports the file bound to the permanent tier.
func (persistentConfiguration *PersistentConfig) PermanentPath() string {
	return persistentConfiguration.permanentPath
}

// LocalPath reports the file bound to the local tier.
func (persistentConfiguration *PersistentConfig) LocalPath() string {
	return persistentConfiguration.localPath
}
