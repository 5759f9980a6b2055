package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/bookswap/internal/app"
	"github.com/atomicstack/bookswap/internal/config"
	"github.com/atomicstack/bookswap/internal/logging"
	"github.com/atomicstack/bookswap/internal/logging/events"
	"github.com/atomicstack/bookswap/internal/market"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	catalog := market.Mock()
	events.App.Start(startupTracePayload(runtimeCfg, catalog))

	err := app.Run(runtimeCfg.App, catalog)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type catalogStats struct {
	Books         int `json:"books"`
	Users         int `json:"users"`
	Conversations int `json:"conversations"`
	Unread        int `json:"unread"`
}

type terminalSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// startupTracePayload describes the session being started: how it was
// invoked, the screen and rendering options it resolved to, and the catalog
// it browses.
func startupTracePayload(cfg config.Config, catalog *market.Catalog) map[string]interface{} {
	opts := cfg.App.Options()
	payload := map[string]interface{}{
		"argv":          cfg.Args,
		"flags":         cfg.Flags,
		"tab":           string(opts.InitialTab),
		"animate":       opts.Animate,
		"transition":    opts.Transition.String(),
		"markdownStyle": opts.MarkdownStyle,
		"trace":         cfg.Logging.Trace,
		"logFile":       cfg.Logging.FilePath,
		"catalog":       summarizeCatalog(catalog),
	}
	if size, ok := detectTerminalSize(); ok {
		payload["terminal"] = size
	}
	return payload
}

func summarizeCatalog(c *market.Catalog) catalogStats {
	return catalogStats{
		Books:         len(c.Books()),
		Users:         c.Users().Len(),
		Conversations: len(c.Conversations()),
		Unread:        c.UnreadTotal(),
	}
}

// detectTerminalSize reports the size of the first standard stream attached
// to a terminal.
func detectTerminalSize() (terminalSize, bool) {
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		if w, h, err := term.GetSize(fd); err == nil {
			return terminalSize{Width: w, Height: h}, true
		}
	}
	return terminalSize{}, false
}
