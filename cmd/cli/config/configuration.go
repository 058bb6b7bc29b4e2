package config

import (
	"strings"

	"github.com/temirov/dbctl/internal/configstore"
	pathutils "github.com/temirov/dbctl/internal/utils/path"
)

var configurationHomeDirectoryExpander = pathutils.NewHomeExpander()

const (
	defaultStoreFormatConstant      = configstore.FormatINI
	defaultPermanentPathConstant    = "~/.dbctl/dbctl.cfg"
	defaultLocalPathConstant        = "dbctl.local.cfg"
	formatConfigurationKeySuffix    = ".format"
	permanentConfigurationKeySuffix = ".permanent_path"
	localPathConfigurationKeySuffix = ".local_path"
)

// Configuration stores the persistent configuration store settings.
type Configuration struct {
	Format        string `mapstructure:"format"`
	PermanentPath string `mapstructure:"permanent_path"`
	LocalPath     string `mapstructure:"local_path"`
}

// DefaultConfiguration supplies baseline values for the configuration store.
func DefaultConfiguration() Configuration {
	return Configuration{
		Format:        defaultStoreFormatConstant,
		PermanentPath: defaultPermanentPathConstant,
		LocalPath:     defaultLocalPathConstant,
	}
}

// DefaultConfigurationValues maps the store defaults onto dotted configuration keys.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		configurationKeyPrefix + formatConfigurationKeySuffix:    defaults.Format,
		configurationKeyPrefix + permanentConfigurationKeySuffix: defaults.PermanentPath,
		configurationKeyPrefix + localPathConfigurationKeySuffix: defaults.LocalPath,
	}
}

// Sanitize trims configured values, expands home-relative paths, and fills defaults.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.Format = strings.ToLower(strings.TrimSpace(configuration.Format))
	if len(sanitized.Format) == 0 {
		sanitized.Format = defaultStoreFormatConstant
	}

	sanitized.PermanentPath = sanitizeStorePath(configuration.PermanentPath, defaultPermanentPathConstant)
	sanitized.LocalPath = sanitizeStorePath(configuration.LocalPath, defaultLocalPathConstant)
	return sanitized
}

func sanitizeStorePath(candidatePath string, fallbackPath string) string {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		trimmedPath = fallbackPath
	}
	return configurationHomeDirectoryExpander.Expand(trimmedPath)
}
