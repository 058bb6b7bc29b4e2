package configstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/dbctl/internal/configstore"
)

const (
	testXMLFileNameConstant         = "dbctl.xml"
	testMissingXMLFileNameConstant  = "missing.xml"
	testXMLSectionMarkerConstant    = `<section name="db">`
	testXMLEntryMarkerConstant      = `<entry name="port">21212</entry>`
	testMalformedXMLContentConstant = "<configuration><section"
)

func TestXMLBackendSaveRoundTripsConfiguration(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testXMLFileNameConstant)
	savedConfiguration := configstore.ConfigMap{
		testPortKeyConstant:        testPortValueConstant,
		testHostKeyConstant:        testHostValueConstant,
		testSpacedValueKeyConstant: testSpacedValueConstant,
	}

	backend := configstore.NewXMLBackend()
	saveError := backend.Save(configurationPath, savedConfiguration)
	require.NoError(testInstance, saveError)

	writtenBytes, readError := os.ReadFile(configurationPath)
	require.NoError(testInstance, readError)
	require.Contains(testInstance, string(writtenBytes), testXMLSectionMarkerConstant)
	require.Contains(testInstance, string(writtenBytes), testXMLEntryMarkerConstant)

	reloadedConfiguration, loadError := backend.Load(configurationPath)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, savedConfiguration, reloadedConfiguration)
}

func TestXMLBackendLoadMissingFileYieldsEmptyMap(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testMissingXMLFileNameConstant)

	loadedConfiguration, loadError := configstore.NewXMLBackend().Load(configurationPath)
	require.NoError(testInstance, loadError)
	require.Empty(testInstance, loadedConfiguration)
}

func TestXMLBackendLoadRejectsMalformedDocuments(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testXMLFileNameConstant)
	writeError := os.WriteFile(configurationPath, []byte(testMalformedXMLContentConstant), 0o600)
	require.NoError(testInstance, writeError)

	_, loadError := configstore.NewXMLBackend().Load(configurationPath)
	require.Error(testInstance, loadError)

	var storeError *configstore.StoreIOError
	require.ErrorAs(testInstance, loadError, &storeError)
	require.Equal(testInstance, configurationPath, storeError.Path)
}

func TestXMLBackendSaveRejectsSectionlessKeys(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testXMLFileNameConstant)
	invalidConfiguration := configstore.ConfigMap{testSectionlessKeyConstant: testHostValueConstant}

	saveError := configstore.NewXMLBackend().Save(configurationPath, invalidConfiguration)
	require.Error(testInstance, saveError)

	var malformedError *configstore.MalformedKeyError
	require.ErrorAs(testInstance, saveError, &malformedError)

	_, statError := os.Stat(configurationPath)
	require.True(testInstance, os.IsNotExist(statError))
}
