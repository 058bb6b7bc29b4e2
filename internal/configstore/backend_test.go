package configstore_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/dbctl/internal/configstore"
)

const (
	testCaseLowercaseINIConstant       = "lowercase_ini"
	testCaseUppercaseINIConstant       = "uppercase_ini"
	testCaseMixedCaseXMLConstant       = "mixed_case_xml"
	testCaseUnknownFormatConstant      = "unknown_format"
	testUnknownFormatNameConstant      = "toml"
	backendSubtestNameTemplateConstant = "%d_%s"
)

func TestNewBackendResolvesFormats(testInstance *testing.T) {
	testCases := []struct {
		name          string
		formatName    string
		expectINI     bool
		expectXML     bool
		expectFailure bool
	}{
		{name: testCaseLowercaseINIConstant, formatName: configstore.FormatINI, expectINI: true},
		{name: testCaseUppercaseINIConstant, formatName: "INI", expectINI: true},
		{name: testCaseMixedCaseXMLConstant, formatName: "Xml", expectXML: true},
		{name: testCaseUnknownFormatConstant, formatName: testUnknownFormatNameConstant, expectFailure: true},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(backendSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			resolvedBackend, resolveError := configstore.NewBackend(testCase.formatName)

			if testCase.expectFailure {
				require.Error(testInstance, resolveError)
				var unsupportedError *configstore.UnsupportedFormatError
				require.ErrorAs(testInstance, resolveError, &unsupportedError)
				require.Equal(testInstance, testCase.formatName, unsupportedError.FormatName)
				require.Contains(testInstance, resolveError.Error(), testCase.formatName)
				return
			}

			require.NoError(testInstance, resolveError)
			if testCase.expectINI {
				require.IsType(testInstance, configstore.INIBackend{}, resolvedBackend)
			}
			if testCase.expectXML {
				require.IsType(testInstance, configstore.XMLBackend{}, resolvedBackend)
			}
		})
	}
}
