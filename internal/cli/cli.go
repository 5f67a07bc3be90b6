// Package cli provides the interactive roster front-end: a readline REPL
// that drives the application shell and renders its state.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/10Draken01/Docker-Front/internal/api"
	"github.com/10Draken01/Docker-Front/internal/log"
	"github.com/10Draken01/Docker-Front/internal/model"
	"github.com/10Draken01/Docker-Front/internal/shell"
	"github.com/10Draken01/Docker-Front/internal/ui"
)

// ErrExit is returned by ExecuteCommand when the user asks to leave.
var ErrExit = errors.New("exit requested")

// LineReader is the part of *readline.Instance the CLI needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// CLI represents the command-line interface
type CLI struct {
	app      *shell.App
	client   api.UserAPI
	ui       *ui.UI
	roster   *ui.RosterUI
	rl       LineReader
	logger   *log.Logger
	handlers map[string]func(ctx context.Context, args []string) error
}

// NewCLI creates a new CLI instance. client serves the show command's
// fresh lookups; every other call goes through app.
func NewCLI(app *shell.App, client api.UserAPI, u *ui.UI, rl LineReader, logger *log.Logger) *CLI {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	c := &CLI{
		app:    app,
		client: client,
		ui:     u,
		roster: ui.NewRosterUI(u),
		rl:     rl,
		logger: logger,
	}
	c.handlers = map[string]func(ctx context.Context, args []string) error{
		"list":   c.handleList,
		"show":   c.handleShow,
		"add":    c.handleAdd,
		"edit":   c.handleEdit,
		"save":   c.handleSave,
		"form":   c.handleForm,
		"cancel": c.handleCancel,
		"delete": c.handleDelete,
		"reload": c.handleReload,
		"export": c.handleExport,
		"status": c.handleStatus,
		"guide":  c.handleGuide,
		"help":   c.handleHelp,
	}
	return c
}

// Run loads the roster and processes commands until exit, EOF or interrupt.
func (c *CLI) Run(ctx context.Context) error {
	c.roster.Banner()
	if err := c.handleReload(ctx, nil); err != nil {
		return err
	}
	c.ui.Info("Escribe 'help' para ver los comandos o 'exit' para salir.")

	for {
		if ctx.Err() != nil {
			return nil
		}
		c.rl.SetPrompt(c.prompt())
		line, err := c.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if strings.TrimSpace(line) == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		args := c.ParseArgs(strings.TrimSpace(line))
		if len(args) == 0 {
			continue
		}
		cmd := model.Command{Operation: strings.ToLower(args[0]), Args: args[1:]}

		err = c.ExecuteCommand(ctx, cmd)
		if errors.Is(err, ErrExit) {
			c.ui.Info("¡Hasta la próxima aventura!")
			return nil
		}
		if err != nil {
			c.ui.Error(err.Error())
			c.logger.Warn(ctx, "Command failed", log.Fields{"operation": cmd.Operation, "error": err})
		}
	}
}

// ExecuteCommand dispatches one parsed command.
func (c *CLI) ExecuteCommand(ctx context.Context, cmd model.Command) error {
	c.logger.Command(ctx, "Command received", log.Fields{"operation": cmd.Operation, "args": cmd.Args})

	switch cmd.Operation {
	case "":
		return fmt.Errorf("no command provided")
	case "exit", "quit":
		return ErrExit
	}
	handler, ok := c.handlers[cmd.Operation]
	if !ok {
		return fmt.Errorf("comando desconocido: %s (usa 'help')", cmd.Operation)
	}
	return handler(ctx, cmd.Args)
}

// ParseArgs splits input on spaces, keeping double-quoted runs together.
func (c *CLI) ParseArgs(input string) []string {
	var args []string
	var currentArg strings.Builder
	inQuotes := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case ' ', '\t':
			if !inQuotes {
				if currentArg.Len() > 0 {
					args = append(args, currentArg.String())
					currentArg.Reset()
				}
			} else {
				currentArg.WriteRune(char)
			}
		default:
			currentArg.WriteRune(char)
		}
	}

	if currentArg.Len() > 0 {
		args = append(args, currentArg.String())
	}

	return args
}

func (c *CLI) prompt() string {
	if target, ok := c.app.Editing(); ok {
		return c.ui.PromptString(target.Username)
	}
	return c.ui.PromptString("")
}

// promptForInput asks one question and restores the command prompt.
func (c *CLI) promptForInput(prompt string) (string, error) {
	c.rl.SetPrompt(prompt)
	defer c.rl.SetPrompt(c.prompt())

	line, err := c.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; anything but an explicit yes declines.
func (c *CLI) confirm(question string) bool {
	answer, err := c.promptForInput(question + " [s/N]: ")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "s", "si", "sí", "y", "yes":
		return true
	default:
		return false
	}
}
