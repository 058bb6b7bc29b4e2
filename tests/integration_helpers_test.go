package tests

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func repositoryRoot(testInstance *testing.T) string {
	testInstance.Helper()

	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		testInstance.Fatalf("unable to determine working directory: %v", workingDirectoryError)
	}
	return filepath.Dir(workingDirectory)
}

func runIntegrationCommand(testInstance *testing.T, repositoryRootDirectory string, extraEnvironment []string, timeout time.Duration, arguments []string) (string, error) {
	testInstance.Helper()

	executionContext, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	command := exec.CommandContext(executionContext, "go", arguments...)
	command.Dir = repositoryRootDirectory
	command.Env = append(append([]string{}, os.Environ()...), extraEnvironment...)

	outputBytes, runError := command.CombinedOutput()
	return string(outputBytes), runError
}

func containsMessage(output string, message string) bool {
	return strings.Contains(output, message)
}

func requireNoError(testInstance *testing.T, err error, output string) {
	testInstance.Helper()
	if err != nil {
		testInstance.Fatalf("command failed: %v\n%s", err, output)
	}
}
