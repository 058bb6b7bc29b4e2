package execshell

import "os/exec"

// ExecutableResolver resolves executable names to absolute paths.
type ExecutableResolver func(executableName string) (string, error)

// ResolveExecutable locates an executable on PATH and reports a typed error
// when the lookup fails, letting callers verify a tool exists before launch.
func ResolveExecutable(executableName string) (string, error) {
	resolvedPath, lookupError := exec.LookPath(executableName)
	if lookupError != nil {
		return "", ExecutableNotFoundError{ExecutableName: executableName, Err: lookupError}
	}
	return resolvedPath, nil
}
