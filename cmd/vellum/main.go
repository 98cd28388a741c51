package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vellum-editor/vellum/editor"
)

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the TOML config file")
	logPath := flag.String("log", "", "append debug logs to this file")
	flag.Parse()

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vellum: open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	cfg, err := editor.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vellum: %v\n", err)
		os.Exit(1)
	}

	m, err := editor.New(flag.Arg(0), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vellum: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with an error")
		fmt.Fprintf(os.Stderr, "vellum: %v\n", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vellum", "config.toml")
}
