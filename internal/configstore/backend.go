package configstore

import (
	"sort"
	"strings"
)

const (
	// FormatINI selects the INI configuration backend.
	FormatINI = "ini"
	// FormatXML selects the XML configuration backend.
	FormatXML = "xml"

	configurationKeySeparatorConstant  = "."
	storeOperationLoadConstant         = "load"
	storeOperationSaveConstant         = "save"
	configurationKeySplitLimitConstant = 2
)

// ConfigMap holds flattened section.name configuration entries.
type ConfigMap map[string]string

// Backend loads and saves flattened configuration maps for one on-disk format.
type Backend interface {
	Load(configurationPath string) (ConfigMap, error)
	Save(configurationPath string, configuration ConfigMap) error
}

// NewBackend resolves a backend implementation by case-insensitive format name.
func NewBackend(formatName string) (Backend, error) {
	switch strings.ToLower(formatName) {
	case FormatINI:
		return NewINIBackend(), nil
	case FormatXML:
		return NewXMLBackend(), nil
	default:
		return nil, &UnsupportedFormatError{FormatName: formatName}
	}
}

// sortedConfigurationKeys validates every key carries a section and returns the keys sorted.
func sortedConfigurationKeys(configuration ConfigMap) ([]string, error) {
	sortedKeys := make([]string, 0, len(configuration))
	for configurationKey := range configuration {
		if !strings.Contains(configurationKey, configurationKeySeparatorConstant) {
			return nil, &MalformedKeyError{Key: configurationKey}
		}
		sortedKeys = append(sortedKeys, configurationKey)
	}
	sort.Strings(sortedKeys)
	return sortedKeys, nil
}

// splitConfigurationKey separates a validated key into section and option names at the first separator.
func splitConfigurationKey(configurationKey string) (string, string) {
	keyParts := strings.SplitN(configurationKey, configurationKeySeparatorConstant, configurationKeySplitLimitConstant)
	return keyParts[0], keyParts[1]
}
