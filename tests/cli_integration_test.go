package tests

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	integrationCommandTimeout              = 60 * time.Second
	integrationRunDirective                = "run"
	integrationModuleReference             = "."
	integrationInfoMessageConstant         = "dbctl CLI executed"
	integrationDebugMessageConstant        = "dbctl CLI diagnostics"
	integrationLogLevelEnvKeyConstant      = "DBCTL_COMMON_LOG_LEVEL"
	integrationEnvAssignmentTemplate       = "%s=%s"
	integrationSubtestNameTemplateConstant = "%d_%s"
	integrationHelpUsagePrefixConstant     = "Usage:"
	integrationDebugLevelConstant          = "debug"
	integrationErrorLevelConstant          = "error"
)

func TestCLIIntegrationLogLevels(testInstance *testing.T) {
	testCases := []struct {
		name                 string
		environmentLevel     string
		expectedInfoVisible  bool
		expectedDebugVisible bool
	}{
		{
			name:                 "default_info",
			environmentLevel:     "",
			expectedInfoVisible:  true,
			expectedDebugVisible: false,
		},
		{
			name:                 "environment_debug",
			environmentLevel:     integrationDebugLevelConstant,
			expectedInfoVisible:  true,
			expectedDebugVisible: true,
		},
		{
			name:                 "environment_error",
			environmentLevel:     integrationErrorLevelConstant,
			expectedInfoVisible:  false,
			expectedDebugVisible: false,
		},
	}

	repositoryRootDirectory := repositoryRoot(testInstance)

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(integrationSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			environment := []string{}
			if len(testCase.environmentLevel) > 0 {
				environment = append(environment, fmt.Sprintf(integrationEnvAssignmentTemplate, integrationLogLevelEnvKeyConstant, testCase.environmentLevel))
			}

			output, runError := runIntegrationCommand(
				testInstance,
				repositoryRootDirectory,
				environment,
				integrationCommandTimeout,
				[]string{integrationRunDirective, integrationModuleReference},
			)
			requireNoError(testInstance, runError, output)

			require.Equal(testInstance, testCase.expectedInfoVisible, containsMessage(output, integrationInfoMessageConstant))
			require.Equal(testInstance, testCase.expectedDebugVisible, containsMessage(output, integrationDebugMessageConstant))
			require.Contains(testInstance, output, integrationHelpUsagePrefixConstant)
		})
	}
}
