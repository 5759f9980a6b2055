package app

import (
	"testing"
	"time"

	"github.com/atomicstack/bookswap/internal/nav"
)

func TestConfigOptions(t *testing.T) {
	cfg := Config{
		Width:         80,
		Height:        24,
		ShowFooter:    true,
		InitialTab:    " Messages ",
		Animate:       true,
		Transition:    time.Second,
		MarkdownStyle: "light",
	}
	opts := cfg.Options()
	if opts.InitialTab != nav.TabMessages {
		t.Fatalf("expected messages tab, got %q", opts.InitialTab)
	}
	if opts.Width != 80 || opts.Height != 24 || !opts.ShowFooter || !opts.Animate {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Transition != time.Second || opts.MarkdownStyle != "light" {
		t.Fatalf("unexpected transition options %+v", opts)
	}
}

func TestConfigOptionsDefaultsToHome(t *testing.T) {
	if got := (Config{}).Options().InitialTab; got != nav.TabHome {
		t.Fatalf("expected home tab, got %q", got)
	}
}
