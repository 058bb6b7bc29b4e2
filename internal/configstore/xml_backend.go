package configstore

import (
	"os"

	"github.com/beevik/etree"
)

const (
	xmlProcessingInstructionTargetConstant = "xml"
	xmlProcessingInstructionDataConstant   = `version="1.0" encoding="UTF-8"`
	xmlRootElementNameConstant             = "configuration"
	xmlSectionElementNameConstant          = "section"
	xmlEntryElementNameConstant            = "entry"
	xmlNameAttributeConstant               = "name"
	xmlIndentSpacesConstant                = 2
)

// XMLBackend persists configuration maps as structured XML documents.
type XMLBackend struct{}

// NewXMLBackend constructs the XML configuration backend.
func NewXMLBackend() XMLBackend {
	return XMLBackend{}
}

// Load reads an XML document and flattens section entries into section.name keys.
// Missing or unreadable files yield an empty map so first runs start clean.
func (backend XMLBackend) Load(configurationPath string) (ConfigMap, error) {
	contentBytes, readError := os.ReadFile(configurationPath)
	if readError != nil {
		return ConfigMap{}, nil
	}

	document := etree.NewDocument()
	if parseError := document.ReadFromBytes(contentBytes); parseError != nil {
		return nil, &StoreIOError{Path: configurationPath, Operation: storeOperationLoadConstant, Err: parseError}
	}

	configuration := ConfigMap{}
	rootElement := document.SelectElement(xmlRootElementNameConstant)
	if rootElement == nil {
		return configuration, nil
	}
	for _, sectionElement := range rootElement.SelectElements(xmlSectionElementNameConstant) {
		sectionName := sectionElement.SelectAttrValue(xmlNameAttributeConstant, "")
		if len(sectionName) == 0 {
			continue
		}
		for _, entryElement := range sectionElement.SelectElements(xmlEntryElementNameConstant) {
			entryName := entryElement.SelectAttrValue(xmlNameAttributeConstant, "")
			if len(entryName) == 0 {
				continue
			}
			configuration[sectionName+configurationKeySeparatorConstant+entryName] = entryElement.Text()
		}
	}
	return configuration, nil
}

// Save rewrites the XML document in full with sections and entries in sorted key order.
func (backend XMLBackend) Save(configurationPath string, configuration ConfigMap) error {
	sortedKeys, validationError := sortedConfigurationKeys(configuration)
	if validationError != nil {
		return validationError
	}

	document := etree.NewDocument()
	document.CreateProcInst(xmlProcessingInstructionTargetConstant, xmlProcessingInstructionDataConstant)
	rootElement := document.CreateElement(xmlRootElementNameConstant)

	var currentSectionElement *etree.Element
	currentSectionName := ""
	for _, configurationKey := range sortedKeys {
		sectionName, entryName := splitConfigurationKey(configurationKey)
		if currentSectionElement == nil || sectionName != currentSectionName {
			currentSectionElement = rootElement.CreateElement(xmlSectionElementNameConstant)
			currentSectionElement.CreateAttr(xmlNameAttributeConstant, sectionName)
			currentSectionName = sectionName
		}
		entryElement := currentSectionElement.CreateElement(xmlEntryElementNameConstant)
		entryElement.CreateAttr(xmlNameAttributeConstant, entryName)
		entryElement.SetText(configuration[configurationKey])
	}

	document.Indent(xmlIndentSpacesConstant)
	if saveError := document.WriteToFile(configurationPath); saveError != nil {
		return &StoreIOError{Path: configurationPath, Operation: storeOperationSaveConstant, Err: saveError}
	}
	return nil
}
