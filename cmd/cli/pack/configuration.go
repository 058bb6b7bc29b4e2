package pack

import "strings"

const (
	excludesConfigurationKeySuffix = ".excludes"
)

// Configuration stores archive packing settings shared across invocations.
type Configuration struct {
	Excludes []string `mapstructure:"excludes"`
}

// DefaultConfiguration supplies baseline values for archive packing.
func DefaultConfiguration() Configuration {
	return Configuration{}
}

// DefaultConfigurationValues maps the packing defaults onto dotted configuration keys.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	return map[string]any{
		configurationKeyPrefix + excludesConfigurationKeySuffix: []string{},
	}
}

// Sanitize trims configured exclusion patterns and removes empty entries.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitizedExcludes := make([]string, 0, len(configuration.Excludes))
	for _, exclusionPattern := range configuration.Excludes {
		trimmedPattern := strings.TrimSpace(exclusionPattern)
		if len(trimmedPattern) == 0 {
			continue
		}
		sanitizedExcludes = append(sanitizedExcludes, trimmedPattern)
	}
	if len(sanitizedExcludes) == 0 {
		sanitized.Excludes = nil
		return sanitized
	}
	sanitized.Excludes = sanitizedExcludes
	return sanitized
}
