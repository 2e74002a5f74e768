package domain

import "context"

// ExecCommand describes an external program invocation.
type ExecCommand struct {
	Program string   // Executable name or path
	Args    []string // Arguments, not shell-interpreted
	Dir     string   // Working directory (empty = inherit)
}

// CommandExecutor runs external programs.
type CommandExecutor interface {
	// Execute runs the command and returns its standard output.
	Execute(ctx context.Context, cmd *ExecCommand) ([]byte, error)
}
