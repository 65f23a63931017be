// NudgeBud onboarding preview.
// Walks the welcome, focus, together and home screens with reflowing chips.
//
// Run: GOWORK=off go run ./cmd/nudgebud/
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/nudgebud/internal/config"
	"github.com/wesen/nudgebud/internal/nudgeui"
	"github.com/wesen/nudgebud/internal/pages"
	"github.com/wesen/nudgebud/internal/tokens"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default $NUDGEBUD_CONFIG or ~/.config/nudgebud/config.toml)")
	dark := flag.Bool("dark", false, "start with the dark scheme")
	page := flag.String("page", "welcome", "start page: welcome, focus, together or home")
	writeConfig := flag.String("write-config", "", "write the effective config to this path and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *dark {
		cfg.Theme.Scheme = tokens.Dark.String()
	}

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *writeConfig)
		return
	}

	start := pages.Index(pages.All(cfg.Chips.PickLimit), *page)
	if start < 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown page %q\n", *page)
		os.Exit(2)
	}

	theme, err := cfg.LoadTheme()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Debug.LogFile != "" {
		f, err := tea.LogToFile(cfg.Debug.LogFile, "nudgebud")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			defer f.Close()
			logger = log.Default()
		}
	}

	m := nudgeui.NewModel(nudgeui.Options{
		Theme:     theme,
		Spacing:   cfg.Spacing(),
		Padding:   cfg.Layout.Padding,
		PickLimit: cfg.Chips.PickLimit,
		StartPage: start,
		Logger:    logger,
	})
	logger.Printf("event=start page=%s scheme=%s", *page, theme.Scheme)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		logger.Printf("event=exit error=%q", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
