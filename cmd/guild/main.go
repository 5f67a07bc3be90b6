// Command guild is the interactive front-end of the adventurers' guild roster.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/10Draken01/Docker-Front/internal/api"
	"github.com/10Draken01/Docker-Front/internal/cli"
	"github.com/10Draken01/Docker-Front/internal/config"
	"github.com/10Draken01/Docker-Front/internal/event"
	"github.com/10Draken01/Docker-Front/internal/log"
	"github.com/10Draken01/Docker-Front/internal/shell"
	"github.com/10Draken01/Docker-Front/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "guild: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "./data/config.json", "path to the configuration file")
	apiURL := flag.String("api", "", "roster API base URL (overrides config)")
	level := flag.String("log-level", "INFO", "log level: COMMAND, ERROR, WARN, INFO or DEBUG")
	flag.Parse()

	// Load configuration
	config.SetPath(*configFile)
	if err := config.ConfigLoad(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := config.ConfigGet()
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}

	logger, err := log.NewLogger(cfg, log.ParseLevel(*level))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Guild client starting", log.Fields{"api_url": cfg.APIURL})

	events := event.NewEventManager(logger)
	subscribeAudit(events, logger)
	defer events.Wait()

	client := api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithLogger(logger),
	)
	app := shell.New(client,
		shell.WithEvents(events),
		shell.WithLogger(logger),
		shell.WithMessageTTL(cfg.MessageTTL),
	)
	defer app.Close()

	// Initialize readline with history file from config
	if err := os.MkdirAll(filepath.Dir(cfg.HistoryFile), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "guild > ",
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    cli.Completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	c := cli.NewCLI(app, client, ui.NewUI(rl.Stdout(), cfg.UseColor), rl, logger)
	if err := c.Run(ctx); err != nil {
		logger.Error(ctx, "Guild client stopped", log.Fields{"error": err})
		return err
	}
	logger.Info(ctx, "Guild client stopped", nil)
	return nil
}

// subscribeAudit records every confirmed roster change in the command log.
func subscribeAudit(em *event.EventManager, logger *log.Logger) {
	audit := func(e event.Event) {
		fields := log.Fields{"event": e.Type.String()}
		switch data := e.Data.(type) {
		case int:
			fields["count"] = data
		case string:
			fields["id"] = data
		default:
			if data != nil {
				fields["user"] = data
			}
		}
		logger.Command(context.Background(), "Roster changed", fields)
	}
	for _, t := range []event.EventType{event.RosterLoaded, event.UserCreated, event.UserUpdated, event.UserDeleted} {
		em.Subscribe(t, audit)
	}
}
