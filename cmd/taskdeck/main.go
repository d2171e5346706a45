package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/veldt/taskdeck/internal/api"
	"github.com/veldt/taskdeck/internal/client"
	"github.com/veldt/taskdeck/internal/config"
	"github.com/veldt/taskdeck/internal/ui"
	"github.com/veldt/taskdeck/pkg/persist"
)

var (
	configPath = flag.String("config", "taskdeck.toml", "path to config file")
	dataFile   = flag.String("file", "", "path to task file (overrides config)")
	listenAddr = flag.String("addr", "", "mock API listen address (overrides config)")
	noSeed     = flag.Bool("no-seed", false, "do not seed sample tasks into an empty task file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *noSeed {
		cfg.Seed = false
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0660)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := log.NewWithOptions(logFile, log.Options{ReportTimestamp: true})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	store := persist.InJSON(cfg.DataFile)
	if cfg.Seed {
		n, err := api.SeedIfEmpty(store, time.Now())
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed:", err)
			os.Exit(1)
		}
		if n > 0 {
			logger.Info("seeded sample tasks", "count", n)
		}
	}

	// The mock API runs in-process, standing in for the future backend. The
	// table only ever talks to it over HTTP so swapping in the real service
	// is a base URL change.
	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "listen:", err)
		os.Exit(1)
	}
	srv := api.NewServer(store, logger)
	go func() {
		if err := http.Serve(ln, srv.Router()); err != nil {
			logger.Error("api server stopped", "err", err)
		}
	}()
	logger.Info("mock api listening", "addr", ln.Addr().String())

	cl := client.New("http://" + ln.Addr().String())
	mirror := persist.NewSearchState(cfg.SearchFile)
	app := ui.NewApp(cl, mirror, cfg.PageSize, logger)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "taskdeck:", err)
		os.Exit(1)
	}
}
