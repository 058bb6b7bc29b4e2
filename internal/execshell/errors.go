package execshell

import "fmt"

const (
	executableNotFoundMessageTemplateConstant = "executable %q was not found in PATH: %v"
)

// CommandFailedError reports a command that finished with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command including exit code and standard error output.
func (failedError CommandFailedError) Error() string {
	return CommandMessageFormatter{}.BuildFailureMessage(failedError.Command, failedError.Result)
}

// CommandExecutionError reports a command that could not be executed at all.
type CommandExecutionError struct {
	Command ShellCommand
	Err     error
}

// Error describes the command and the underlying execution failure.
func (executionError CommandExecutionError) Error() string {
	return CommandMessageFormatter{}.BuildExecutionFailureMessage(executionError.Command, executionError.Err)
}

// Unwrap exposes the underlying execution failure.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Err
}

// ExecutableNotFoundError reports a PATH lookup that produced no executable.
type ExecutableNotFoundError struct {
	ExecutableName string
	Err            error
}

// Error names the missing executable.
func (notFoundError ExecutableNotFoundError) Error() string {
	return fmt.Sprintf(executableNotFoundMessageTemplateConstant, notFoundError.ExecutableName, notFoundError.Err)
}

// Unwrap exposes the underlying lookup failure.
func (notFoundError ExecutableNotFoundError) Unwrap() error {
	return notFoundError.Err
}
