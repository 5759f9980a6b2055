package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/bookswap/internal/app"
	"github.com/atomicstack/bookswap/internal/nav"
	"github.com/atomicstack/bookswap/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth         = "BOOKSWAP_WIDTH"
	envHeight        = "BOOKSWAP_HEIGHT"
	envShowFooter    = "BOOKSWAP_FOOTER"
	envTrace         = "BOOKSWAP_TRACE"
	envLogFile       = "BOOKSWAP_LOG_FILE"
	envTab           = "BOOKSWAP_TAB"
	envNoAnimation   = "BOOKSWAP_NO_ANIMATION"
	envTransition    = "BOOKSWAP_TRANSITION"
	envMarkdownStyle = "BOOKSWAP_MARKDOWN_STYLE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("bookswap", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	tab := fs.String("tab", envOrDefault(env, envTab, string(nav.TabHome)), "tab to open on start (home, market, post, messages, profile)")
	noAnimation := fs.Bool("no-animation", envOrBool(env, envNoAnimation, false), "disable screen transitions")
	transition := fs.Duration("transition", envOrDuration(env, envTransition, ui.DefaultTransition), "duration of the screen transition")
	markdownStyle := fs.String("markdown-style", envOrDefault(env, envMarkdownStyle, ui.DefaultMarkdownStyle), "glamour style name or JSON style path for book descriptions")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			InitialTab:    *tab,
			Animate:       !*noAnimation,
			Transition:    *transition,
			MarkdownStyle: *markdownStyle,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
			"tab":           *tab,
			"noAnimation":   strconv.FormatBool(*noAnimation),
			"transition":    transition.String(),
			"markdownStyle": *markdownStyle,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values the flag parser cannot.
func Validate(cfg Config) error {
	if _, ok := nav.ParseTab(cfg.App.InitialTab); !ok {
		return fmt.Errorf("unknown tab %q", cfg.App.InitialTab)
	}
	if cfg.App.Transition < 0 {
		return fmt.Errorf("transition must be >= 0 (got %s)", cfg.App.Transition)
	}
	if strings.TrimSpace(cfg.App.MarkdownStyle) == "" {
		return fmt.Errorf("markdown style must not be empty")
	}
	return nil
}
