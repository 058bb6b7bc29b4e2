package sql

import "strings"

const (
	hostConfigurationKeySuffix        = ".host"
	portConfigurationKeySuffix        = ".port"
	javaOptionsConfigurationKeySuffix = ".java_options"

	defaultServerHostConstant = "localhost"
	defaultServerPortConstant = 21212
)

// Configuration stores SQL console launch settings.
type Configuration struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	JavaOptions []string `mapstructure:"java_options"`
}

// DefaultConfiguration supplies baseline values for the SQL console.
func DefaultConfiguration() Configuration {
	return Configuration{
		Host: defaultServerHostConstant,
		Port: defaultServerPortConstant,
	}
}

// DefaultConfigurationValues maps the console defaults onto dotted configuration keys.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		configurationKeyPrefix + hostConfigurationKeySuffix:        defaults.Host,
		configurationKeyPrefix + portConfigurationKeySuffix:        defaults.Port,
		configurationKeyPrefix + javaOptionsConfigurationKeySuffix: []string{},
	}
}

// Sanitize trims configured values and fills defaults.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.Host = strings.TrimSpace(configuration.Host)
	if len(sanitized.Host) == 0 {
		sanitized.Host = defaultServerHostConstant
	}
	if sanitized.Port <= 0 {
		sanitized.Port = defaultServerPortConstant
	}

	sanitizedOptions := make([]string, 0, len(configuration.JavaOptions))
	for _, javaOption := range configuration.JavaOptions {
		trimmedOption := strings.TrimSpace(javaOption)
		if len(trimmedOption) == 0 {
			continue
		}
		sanitizedOptions = append(sanitizedOptions, trimmedOption)
	}
	if len(sanitizedOptions) == 0 {
		sanitized.JavaOptions = nil
		return sanitized
	}
	sanitized.JavaOptions = sanitizedOptions
	return sanitized
}
