package execshell

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

const (
	javaCommandNameConstant   = "java"
	sqlcmdCommandNameConstant = "sqlcmd"

	loggerNotConfiguredMessageConstant        = "shell executor requires a logger"
	commandRunnerNotConfiguredMessageConstant = "shell executor requires a command runner"
	commandLogFieldNameConstant               = "command_name"
	argumentsLogFieldNameConstant             = "arguments"
	exitCodeLogFieldNameConstant              = "exit_code"
	dryRunLogFieldNameConstant                = "dry_run"
	dryRunSkippedMessageTemplateConstant      = "Skipped (dry-run): %s"
)

// Sentinel errors reported when the executor is constructed without collaborators.
var (
	ErrLoggerNotConfigured        = errors.New(loggerNotConfiguredMessageConstant)
	ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)
)

// CommandName identifies a supported external executable.
type CommandName string

// Supported command enumerations.
const (
	CommandJava   CommandName = CommandName(javaCommandNameConstant)
	CommandSQLCmd CommandName = CommandName(sqlcmdCommandNameConstant)
)

// CommandDetails describes one external command invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand combines a CommandName with invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outputs of a finished command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner represents the ability to run shell commands.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// ExecutorOptions adjusts optional ShellExecutor behavior.
type ExecutorOptions struct {
	EventObserver CommandEventObserver
	DryRun        bool
}

// ShellExecutor coordinates command execution with structured logging and lifecycle events.
type ShellExecutor struct {
	logger           *zap.Logger
	commandRunner    CommandRunner
	eventObserver    CommandEventObserver
	messageFormatter CommandMessageFormatter
	dryRun           bool
}

// NewShellExecutor constructs a ShellExecutor with default options.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner) (*ShellExecutor, error) {
	return NewShellExecutorWithOptions(logger, commandRunner, ExecutorOptions{})
}

// NewShellExecutorWithOptions constructs a ShellExecutor honoring the supplied options.
func NewShellExecutorWithOptions(logger *zap.Logger, commandRunner CommandRunner, options ExecutorOptions) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if commandRunner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	eventObserver := options.EventObserver
	if eventObserver == nil {
		eventObserver = noopCommandEventObserver{}
	}

	return &ShellExecutor{
		logger:           logger,
		commandRunner:    commandRunner,
		eventObserver:    eventObserver,
		messageFormatter: CommandMessageFormatter{},
		dryRun:           options.DryRun,
	}, nil
}

// ExecuteJava runs the java executable with the provided details.
func (executor *ShellExecutor) ExecuteJava(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandJava, Details: details})
}

// ExecuteSQLCmd runs the sqlcmd executable with the provided details.
func (executor *ShellExecutor) ExecuteSQLCmd(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandSQLCmd, Details: details})
}

// Execute runs an arbitrary shell command, logging lifecycle messages and
// notifying the configured event observer. Under dry-run the runner is never
// invoked and an empty success result is returned.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.eventObserver.CommandStarted(command)
	executor.logger.Info(
		executor.messageFormatter.BuildStartedMessage(command),
		zap.String(commandLogFieldNameConstant, string(command.Name)),
		zap.Strings(argumentsLogFieldNameConstant, command.Details.Arguments),
	)

	if executor.dryRun {
		executor.logger.Info(
			executor.messageFormatter.BuildDryRunMessage(command),
			zap.Bool(dryRunLogFieldNameConstant, true),
		)
		return ExecutionResult{}, nil
	}

	executionResult, runError := executor.commandRunner.Run(executionContext, command)
	if runError != nil {
		executor.eventObserver.CommandExecutionFailed(command, runError)
		executor.logger.Error(executor.messageFormatter.BuildExecutionFailureMessage(command, runError))
		return ExecutionResult{}, CommandExecutionError{Command: command, Err: runError}
	}

	executor.eventObserver.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		executor.logger.Warn(
			executor.messageFormatter.BuildFailureMessage(command, executionResult),
			zap.Int(exitCodeLogFieldNameConstant, executionResult.ExitCode),
		)
		return executionResult, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Info(executor.messageFormatter.BuildSuccessMessage(command))
	return executionResult, nil
}
