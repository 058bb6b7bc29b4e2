package configstore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/dbctl/internal/configstore"
)

const (
	testINIFileNameConstant         = "dbctl.cfg"
	testMissingINIFileNameConstant  = "missing.cfg"
	testSectionHeaderConstant       = "[db]"
	testSecondSectionHeaderConstant = "[sql]"
	testSectionlessKeyConstant      = "orphan"
	testSeededINIContentConstant    = "[db]\nport = 21212\nhost = node0\n"
	testPortKeyConstant             = "db.port"
	testHostKeyConstant             = "db.host"
	testPortValueConstant           = "21212"
	testHostValueConstant           = "node0"
	testSpacedValueConstant         = "two words"
	testSpacedValueKeyConstant      = "sql.banner"
	testJavaHeapKeyConstant         = "sql.java_heap"
	testJavaHeapValueConstant       = "2g"
)

func TestINIBackendLoadFlattensSections(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testINIFileNameConstant)
	writeError := os.WriteFile(configurationPath, []byte(testSeededINIContentConstant), 0o600)
	require.NoError(testInstance, writeError)

	loadedConfiguration, loadError := configstore.NewINIBackend().Load(configurationPath)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, configstore.ConfigMap{
		testPortKeyConstant: testPortValueConstant,
		testHostKeyConstant: testHostValueConstant,
	}, loadedConfiguration)
}

func TestINIBackendLoadMissingFileYieldsEmptyMap(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testMissingINIFileNameConstant)

	loadedConfiguration, loadError := configstore.NewINIBackend().Load(configurationPath)
	require.NoError(testInstance, loadError)
	require.Empty(testInstance, loadedConfiguration)
}

func TestINIBackendSaveRoundTripsConfiguration(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testINIFileNameConstant)
	savedConfiguration := configstore.ConfigMap{
		testPortKeyConstant:        testPortValueConstant,
		testHostKeyConstant:        testHostValueConstant,
		testSpacedValueKeyConstant: testSpacedValueConstant,
		testJavaHeapKeyConstant:    testJavaHeapValueConstant,
	}

	backend := configstore.NewINIBackend()
	saveError := backend.Save(configurationPath, savedConfiguration)
	require.NoError(testInstance, saveError)

	writtenBytes, readError := os.ReadFile(configurationPath)
	require.NoError(testInstance, readError)
	writtenContent := string(writtenBytes)
	require.Contains(testInstance, writtenContent, testSectionHeaderConstant)
	require.Contains(testInstance, writtenContent, testSecondSectionHeaderConstant)
	require.Less(testInstance, strings.Index(writtenContent, testSectionHeaderConstant), strings.Index(writtenContent, testSecondSectionHeaderConstant))

	reloadedConfiguration, loadError := backend.Load(configurationPath)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, savedConfiguration, reloadedConfiguration)
}

func TestINIBackendSaveRejectsSectionlessKeys(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testINIFileNameConstant)
	invalidConfiguration := configstore.ConfigMap{testSectionlessKeyConstant: testPortValueConstant}

	saveError := configstore.NewINIBackend().Save(configurationPath, invalidConfiguration)
	require.Error(testInstance, saveError)

	var malformedError *configstore.MalformedKeyError
	require.ErrorAs(testInstance, saveError, &malformedError)
	require.Equal(testInstance, testSectionlessKeyConstant, malformedError.Key)
	require.Contains(testInstance, saveError.Error(), "db."+testSectionlessKeyConstant)

	_, statError := os.Stat(configurationPath)
	require.True(testInstance, os.IsNotExist(statError))
}
