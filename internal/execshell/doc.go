// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging and dry-run previews via ShellExecutor,
// exposes OSCommandRunner for default process execution, and defines the
// abstractions dbctl uses to launch java and sqlcmd in a testable manner.
package execshell
