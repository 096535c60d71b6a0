package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"articlesdesk/app"
	"articlesdesk/client"
	"articlesdesk/config"
	"articlesdesk/session"
	"articlesdesk/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg := config.Load()

	// Parse command-line flags
	flag.StringVar(&cfg.APIURL, "url", cfg.APIURL, "Articles API URL")
	flag.StringVar(&cfg.TokenStore, "store", cfg.TokenStore, "Token store: file, redis or memory")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file for the file store")
	flag.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Per-request timeout")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write logs to this file")
	flag.Parse()

	// The TUI owns the terminal, so logs go to a file or nowhere
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "articles")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := session.NewStore(ctx, cfg)
	if err != nil {
		fmt.Printf("Error opening token store: %v\n", err)
		os.Exit(1)
	}
	sess := session.New(store)
	defer sess.Close()

	authenticated, err := sess.IsAuthenticated(ctx)
	if err != nil {
		log.Printf("Warning: could not read stored token: %v", err)
	}

	log.Printf("🚀 Starting articles client against %s (token store: %s)", cfg.APIURL, cfg.TokenStore)

	controller := app.NewController(client.NewClient(cfg.APIURL, cfg.RequestTimeout), sess, cfg.RequestTimeout)
	m := tui.NewModel(ctx, controller, authenticated)

	// Create the tea program
	program := tea.NewProgram(m, tea.WithAltScreen())

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
