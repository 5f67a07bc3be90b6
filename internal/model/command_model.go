package model

// Command represents a REPL command with its operation and arguments.
type Command struct {
	Operation string
	Args      []string
}
