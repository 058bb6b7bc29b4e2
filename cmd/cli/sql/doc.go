// Package sql exposes the sql command that launches the sqlcmd console
// against configured servers with merged JVM options.
package sql
