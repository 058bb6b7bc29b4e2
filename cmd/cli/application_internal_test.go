package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/dbctl/internal/utils"
)

const (
	testDebugLogLevelConstant     = "debug"
	testOverriddenSQLHostConstant = "cluster.internal"
)

func TestNewApplicationRegistersSubcommands(testInstance *testing.T) {
	application := NewApplication()

	registeredCommandNames := map[string]bool{}
	for _, registeredCommand := range application.rootCommand.Commands() {
		registeredCommandNames[registeredCommand.Name()] = true
	}

	for _, expectedCommandName := range []string{"config", "pack", "manifest", "sql"} {
		require.True(testInstance, registeredCommandNames[expectedCommandName], expectedCommandName)
	}
}

func TestInitializeConfigurationAppliesEmbeddedDefaults(testInstance *testing.T) {
	testInstance.Chdir(testInstance.TempDir())

	application := NewApplication()
	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, string(utils.LogLevelInfo), application.configuration.Common.LogLevel)
	require.Equal(testInstance, "ini", application.configuration.Tools.Config.Format)
	require.Equal(testInstance, "localhost", application.configuration.Tools.SQL.Host)
	require.Equal(testInstance, 21212, application.configuration.Tools.SQL.Port)
}

func TestPersistentLogLevelFlagOverridesConfiguration(testInstance *testing.T) {
	testInstance.Chdir(testInstance.TempDir())

	application := NewApplication()
	require.NoError(testInstance, application.rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, testDebugLogLevelConstant))
	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, testDebugLogLevelConstant, application.configuration.Common.LogLevel)
}

func TestEnvironmentOverridesEmbeddedDefaults(testInstance *testing.T) {
	testInstance.Chdir(testInstance.TempDir())
	testInstance.Setenv("DBCTL_TOOLS_SQL_HOST", testOverriddenSQLHostConstant)

	application := NewApplication()
	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, testOverriddenSQLHostConstant, application.configuration.Tools.SQL.Host)
}
