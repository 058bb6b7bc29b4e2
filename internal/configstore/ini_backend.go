package configstore

import (
	"os"

	ini "gopkg.in/ini.v1"
)

// INIBackend persists configuration maps as INI files with one section per key prefix.
type INIBackend struct{}

// NewINIBackend constructs the INI configuration backend.
func NewINIBackend() INIBackend {
	return INIBackend{}
}

// Load reads an INI file and flattens its sections into section.name keys.
// Missing or unreadable files yield an empty map so first runs start clean.
func (backend INIBackend) Load(configurationPath string) (ConfigMap, error) {
	contentBytes, readError := os.ReadFile(configurationPath)
	if readError != nil {
		return ConfigMap{}, nil
	}

	iniFile, parseError := ini.Load(contentBytes)
	if parseError != nil {
		return nil, &StoreIOError{Path: configurationPath, Operation: storeOperationLoadConstant, Err: parseError}
	}

	configuration := ConfigMap{}
	for _, section := range iniFile.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		for _, sectionKey := range section.Keys() {
			configuration[section.Name()+configurationKeySeparatorConstant+sectionKey.Name()] = sectionKey.Value()
		}
	}
	return configuration, nil
}

// Save rewrites the INI file in full with sections and keys in sorted key order.
func (backend INIBackend) Save(configurationPath string, configuration ConfigMap) error {
	sortedKeys, validationError := sortedConfigurationKeys(configuration)
	if validationError != nil {
		return validationError
	}

	iniFile := ini.Empty()
	for _, configurationKey := range sortedKeys {
		sectionName, optionName := splitConfigurationKey(configurationKey)
		iniFile.Section(sectionName).Key(optionName).SetValue(configuration[configurationKey])
	}

	if saveError := iniFile.SaveTo(configurationPath); saveError != nil {
		return &StoreIOError{Path: configurationPath, Operation: storeOperationSaveConstant, Err: saveError}
	}
	return nil
}
