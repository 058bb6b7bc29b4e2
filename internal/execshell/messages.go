package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	genericDryRunTemplateConstant           = "Would run %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	javaJarFlagConstant       = "-jar"
	javaClassPathFlagConstant = "-cp"
	javaVersionFlagConstant   = "-version"
)

const (
	javaApplicationStartTemplateConstant            = "Launching %s"
	javaApplicationSuccessTemplateConstant          = "%s finished"
	javaApplicationFailureTemplateConstant          = "%s exited with code %d%s"
	javaApplicationExecutionFailureTemplateConstant = "Unable to launch %s: %s"
	javaVersionStartTemplateConstant                = "Checking Java runtime version"
	javaVersionSuccessTemplateConstant              = "Java runtime version confirmed"
	javaVersionFailureTemplateConstant              = "Java runtime version check failed (exit code %d%s)"
	javaVersionExecutionFailureTemplateConstant     = "Unable to check Java runtime version: %s"
)

const (
	sqlcmdServerFlagConstant         = "--servers"
	sqlcmdQueryFlagConstant          = "--query"
	sqlcmdDefaultServerLabelConstant = "the default server"
)

const (
	sqlcmdStatementStartTemplateConstant            = "Running SQL statement on %s"
	sqlcmdStatementSuccessTemplateConstant          = "SQL statement on %s completed"
	sqlcmdStatementFailureTemplateConstant          = "SQL statement on %s failed (exit code %d%s)"
	sqlcmdStatementExecutionFailureTemplateConstant = "Unable to run SQL statement on %s: %s"
	sqlcmdConsoleStartTemplateConstant              = "Opening SQL console against %s"
	sqlcmdConsoleSuccessTemplateConstant            = "SQL console session against %s ended"
	sqlcmdConsoleFailureTemplateConstant            = "SQL console against %s failed (exit code %d%s)"
	sqlcmdConsoleExecutionFailureTemplateConstant   = "Unable to open SQL console against %s: %s"
)

// CommandMessageFormatter builds human-readable messages describing command execution.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message logged before a command runs.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message logged after a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message logged after a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message logged when the command could not run.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

// BuildDryRunMessage formats the preview message logged instead of running a command.
func (formatter CommandMessageFormatter) BuildDryRunMessage(command ShellCommand) string {
	return fmt.Sprintf(genericDryRunTemplateConstant, formatter.formatCommandLabel(command))
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch command.Name {
	case CommandJava:
		return formatter.describeJavaMessage(command, result, failure, stage)
	case CommandSQLCmd:
		return formatter.describeSQLCmdMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeJavaMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments

	if containsArgument(arguments, javaVersionFlagConstant) {
		switch stage {
		case messageStageStart:
			return javaVersionStartTemplateConstant
		case messageStageSuccess:
			return javaVersionSuccessTemplateConstant
		case messageStageFailure:
			return fmt.Sprintf(javaVersionFailureTemplateConstant, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(javaVersionExecutionFailureTemplateConstant, formatter.describeFailure(failure))
		}
	}

	applicationLabel := formatter.describeJavaApplication(arguments)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(javaApplicationStartTemplateConstant, applicationLabel)
	case messageStageSuccess:
		return fmt.Sprintf(javaApplicationSuccessTemplateConstant, applicationLabel)
	case messageStageFailure:
		return fmt.Sprintf(javaApplicationFailureTemplateConstant, applicationLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(javaApplicationExecutionFailureTemplateConstant, applicationLabel, formatter.describeFailure(failure))
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeSQLCmdMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	serverLabel := formatter.describeSQLServers(arguments)

	if len(findFlagValue(arguments, sqlcmdQueryFlagConstant)) > 0 {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(sqlcmdStatementStartTemplateConstant, serverLabel)
		case messageStageSuccess:
			return fmt.Sprintf(sqlcmdStatementSuccessTemplateConstant, serverLabel)
		case messageStageFailure:
			return fmt.Sprintf(sqlcmdStatementFailureTemplateConstant, serverLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(sqlcmdStatementExecutionFailureTemplateConstant, serverLabel, formatter.describeFailure(failure))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(sqlcmdConsoleStartTemplateConstant, serverLabel)
	case messageStageSuccess:
		return fmt.Sprintf(sqlcmdConsoleSuccessTemplateConstant, serverLabel)
	case messageStageFailure:
		return fmt.Sprintf(sqlcmdConsoleFailureTemplateConstant, serverLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(sqlcmdConsoleExecutionFailureTemplateConstant, serverLabel, formatter.describeFailure(failure))
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeJavaApplication(arguments []string) string {
	jarPath := findFlagValue(arguments, javaJarFlagConstant)
	if len(jarPath) > 0 {
		return jarPath
	}

	skipNext := false
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if skipNext {
			skipNext = false
			continue
		}
		if trimmed == javaClassPathFlagConstant {
			skipNext = true
			continue
		}
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, "-") {
			continue
		}
		return trimmed
	}
	return fallbackUnknownValueLabelConstant
}

func (formatter CommandMessageFormatter) describeSQLServers(arguments []string) string {
	serverList := findFlagValue(arguments, sqlcmdServerFlagConstant)
	if len(serverList) == 0 {
		return sqlcmdDefaultServerLabelConstant
	}
	return serverList
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	commandLabel := strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(command))
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}

func findFlagValue(arguments []string, flag string) string {
	for index := 0; index < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == flag && index+1 < len(arguments) {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return emptyStringConstant
}
