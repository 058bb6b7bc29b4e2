package sql

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/dbctl/internal/execshell"
	"github.com/temirov/dbctl/internal/ui"
	"github.com/temirov/dbctl/internal/utils"
	"github.com/temirov/dbctl/internal/utils/flags"
	"github.com/temirov/dbctl/internal/utils/hostport"
)

const (
	sqlCommandUseConstant              = "sql [statement]"
	sqlCommandShortDescriptionConstant = "Run a SQL statement or open an interactive SQL console"
	sqlCommandLongDescriptionConstant  = "sql launches the sqlcmd console against the configured servers, running a single statement when one is provided."

	sqlCommandMaximumArgumentsConstant = 1
	minimumServerCountConstant         = 1

	javaExecutableNameConstant = "java"

	serversArgumentFlagConstant   = "--servers"
	queryArgumentFlagConstant     = "--query"
	serverListJoinSeparatorConst  = ","
	javaOptionsEnvironmentNameVar = "JAVA_OPTS"
	javaOptionsJoinSeparatorConst = " "

	javaLookupErrorTemplateConstant   = "java runtime unavailable: %w"
	serverParseErrorTemplateConstant  = "invalid server list: %w"
	consoleLaunchErrorTemplateConst   = "sql console failed: %w"
	consoleLaunchedMessageConstant    = "launching sql console"
	logFieldServerListConstant        = "servers"
	logFieldStatementProvidedConstant = "statement_provided"
	logFieldJavaOptionCountConstant   = "java_option_count"
	logFieldJavaExecutableConstant    = "java_executable"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current SQL console configuration.
type ConfigurationProvider func() Configuration

// RunnerProvider supplies the command runner used to spawn the console process.
type RunnerProvider func() execshell.CommandRunner

// CommandBuilder assembles the sql command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	RunnerProvider        RunnerProvider
	ExecutableResolver    execshell.ExecutableResolver
}

// Build constructs the sql command with server, JVM option, and dry-run flags.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	sqlCommand := &cobra.Command{
		Use:   sqlCommandUseConstant,
		Short: sqlCommandShortDescriptionConstant,
		Long:  sqlCommandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(sqlCommandMaximumArgumentsConstant),
		RunE:  builder.runSQL,
	}

	sqlCommand.Flags().String(flags.ServersFlagName, "", flags.ServersFlagUsage)
	sqlCommand.Flags().StringArray(flags.JavaOptionFlagName, nil, flags.JavaOptionFlagUsage)
	flags.BindExecutionFlags(sqlCommand, flags.ExecutionDefaults{}, flags.ExecutionFlagDefinitions{
		DryRun: flags.ExecutionFlagDefinition{Name: flags.DryRunFlagName, Usage: flags.DryRunFlagUsage, Enabled: true},
	})

	return sqlCommand, nil
}

func (builder *CommandBuilder) runSQL(command *cobra.Command, arguments []string) error {
	logger := builder.resolveLogger()
	executionFlags := flags.ResolveExecutionFlags(command)
	configuration := builder.resolveConfiguration()

	javaExecutablePath, javaLookupError := builder.resolveExecutable(javaExecutableNameConstant)
	if javaLookupError != nil {
		return fmt.Errorf(javaLookupErrorTemplateConstant, javaLookupError)
	}

	serverHosts, serverParseError := builder.resolveServers(command, configuration)
	if serverParseError != nil {
		return fmt.Errorf(serverParseErrorTemplateConstant, serverParseError)
	}

	javaOptionFlagValues, javaOptionFlagError := command.Flags().GetStringArray(flags.JavaOptionFlagName)
	if javaOptionFlagError != nil {
		return javaOptionFlagError
	}
	mergedJavaOptions := execshell.MergeJavaOptions(configuration.JavaOptions, javaOptionFlagValues)

	serverListValue := formatServerList(serverHosts)
	commandArguments := []string{serversArgumentFlagConstant, serverListValue}
	statementProvided := len(arguments) > 0
	if statementProvided {
		commandArguments = append(commandArguments, queryArgumentFlagConstant, arguments[0])
	}

	environmentVariables := map[string]string{}
	if len(mergedJavaOptions) > 0 {
		environmentVariables[javaOptionsEnvironmentNameVar] = strings.Join(mergedJavaOptions, javaOptionsJoinSeparatorConst)
	}

	logger.Info(
		consoleLaunchedMessageConstant,
		zap.String(logFieldServerListConstant, serverListValue),
		zap.Bool(logFieldStatementProvidedConstant, statementProvided),
		zap.Int(logFieldJavaOptionCountConstant, len(mergedJavaOptions)),
		zap.String(logFieldJavaExecutableConstant, javaExecutablePath),
	)

	shellExecutor, executorError := execshell.NewShellExecutorWithOptions(
		logger,
		builder.resolveRunner(),
		execshell.ExecutorOptions{
			EventObserver: ui.NewConsoleCommandEventLogger(logger),
			DryRun:        executionFlags.DryRun,
		},
	)
	if executorError != nil {
		return executorError
	}

	consoleCommand := execshell.ShellCommand{
		Name: execshell.CommandSQLCmd,
		Details: execshell.CommandDetails{
			Arguments:            commandArguments,
			EnvironmentVariables: environmentVariables,
		},
	}

	consoleOutputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	streamingError := shellExecutor.ExecuteStreaming(command.Context(), consoleCommand, func(outputLine string) {
		fmt.Fprintln(consoleOutputWriter, outputLine)
	})
	if streamingError != nil {
		return fmt.Errorf(consoleLaunchErrorTemplateConst, streamingError)
	}

	return nil
}

func (builder *CommandBuilder) resolveServers(command *cobra.Command, configuration Configuration) ([]hostport.Host, error) {
	serversFlagValue, serversFlagError := command.Flags().GetString(flags.ServersFlagName)
	if serversFlagError != nil {
		return nil, serversFlagError
	}

	serverListValue := strings.TrimSpace(serversFlagValue)
	if len(serverListValue) == 0 {
		serverListValue = configuration.Host
	}

	return hostport.Parse(serverListValue, hostport.ParseOptions{
		DefaultPort:  configuration.Port,
		MinimumCount: minimumServerCountConstant,
	})
}

func (builder *CommandBuilder) resolveExecutable(executableName string) (string, error) {
	executableResolver := builder.ExecutableResolver
	if executableResolver == nil {
		executableResolver = execshell.ResolveExecutable
	}
	return executableResolver(executableName)
}

func (builder *CommandBuilder) resolveRunner() execshell.CommandRunner {
	if builder.RunnerProvider != nil {
		if providedRunner := builder.RunnerProvider(); providedRunner != nil {
			return providedRunner
		}
	}
	return execshell.NewOSCommandRunner()
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	return configuration.Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func formatServerList(serverHosts []hostport.Host) string {
	hostLabels := make([]string, 0, len(serverHosts))
	for _, serverHost := range serverHosts {
		hostLabels = append(hostLabels, serverHost.String())
	}
	return strings.Join(hostLabels, serverListJoinSeparatorConst)
}
