package execshell

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	streamedLineCarriageReturnConstant = "\r"
	outputLineSplitSeparatorConstant   = "\n"
)

// LineHandler receives one trimmed output line at a time while a command runs.
type LineHandler func(outputLine string)

// StreamingCommandRunner represents runners able to deliver output incrementally.
type StreamingCommandRunner interface {
	RunStreaming(executionContext context.Context, command ShellCommand, lineHandler LineHandler) (ExecutionResult, error)
}

// ExecuteStreaming runs the command and delivers each output line (standard
// error folded into the stream) to the handler as it arrives. Runners without
// streaming support fall back to buffered execution with the captured output
// replayed line by line.
func (executor *ShellExecutor) ExecuteStreaming(executionContext context.Context, command ShellCommand, lineHandler LineHandler) error {
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
		return nil
	}

	executionResult, runError := executor.runWithStreaming(executionContext, command, lineHandler)
	if runError != nil {
		executor.eventObserver.CommandExecutionFailed(command, runError)
		executor.logger.Error(executor.messageFormatter.BuildExecutionFailureMessage(command, runError))
		return CommandExecutionError{Command: command, Err: runError}
	}

	executor.eventObserver.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		executor.logger.Warn(
			executor.messageFormatter.BuildFailureMessage(command, executionResult),
			zap.Int(exitCodeLogFieldNameConstant, executionResult.ExitCode),
		)
		return CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Info(executor.messageFormatter.BuildSuccessMessage(command))
	return nil
}

func (executor *ShellExecutor) runWithStreaming(executionContext context.Context, command ShellCommand, lineHandler LineHandler) (ExecutionResult, error) {
	if streamingRunner, streamingSupported := executor.commandRunner.(StreamingCommandRunner); streamingSupported {
		return streamingRunner.RunStreaming(executionContext, command, lineHandler)
	}

	executionResult, runError := executor.commandRunner.Run(executionContext, command)
	if runError != nil {
		return ExecutionResult{}, runError
	}

	replayBufferedOutput(executionResult.StandardOutput, lineHandler)
	replayBufferedOutput(executionResult.StandardError, lineHandler)
	return executionResult, nil
}

func replayBufferedOutput(bufferedOutput string, lineHandler LineHandler) {
	if lineHandler == nil {
		return
	}
	for _, outputLine := range strings.Split(bufferedOutput, outputLineSplitSeparatorConstant) {
		trimmedLine := strings.TrimSuffix(outputLine, streamedLineCarriageReturnConstant)
		if len(trimmedLine) == 0 {
			continue
		}
		lineHandler(trimmedLine)
	}
}
