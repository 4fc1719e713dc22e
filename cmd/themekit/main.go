// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command themekit manages per-site theme settings from the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/olegiv/ocms-themekit/internal/config"
	"github.com/olegiv/ocms-themekit/internal/logging"
	"github.com/olegiv/ocms-themekit/internal/store"
	"github.com/olegiv/ocms-themekit/internal/theme"
	"github.com/olegiv/ocms-themekit/internal/themeopt"
	"github.com/olegiv/ocms-themekit/internal/util"
	"github.com/olegiv/ocms-themekit/internal/version"
)

// Build information, injected via ldflags.
var (
	appVersion   = ""
	appGitCommit = ""
	appBuildTime = ""
)

// errUsage signals a malformed command line.
var errUsage = errors.New("invalid usage")

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")
	site := flag.String("site", "", "Theme slug to operate on (default: THEMEKIT_THEME_SLUG)")

	flag.Usage = usage
	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Println(info.String())
		os.Exit(0)
	}

	if err := run(*site, flag.Args()); err != nil {
		slog.Error("themekit failed", "error", err)
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage() {
	_, _ = fmt.Fprintf(os.Stderr, "themekit - theme settings for oCMS sites\n\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [args]\n\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "Commands:\n")
	_, _ = fmt.Fprintf(os.Stderr, "  get                  Print the site's resolved settings\n")
	_, _ = fmt.Fprintf(os.Stderr, "  set key=value ...    Validate and save settings\n")
	_, _ = fmt.Fprintf(os.Stderr, "  preset <name>        Apply a preset (%s)\n", strings.Join(themeopt.Presets(), ", "))
	_, _ = fmt.Fprintf(os.Stderr, "  reset                Delete the site's settings\n")
	_, _ = fmt.Fprintf(os.Stderr, "  css                  Print the CSS variable block\n")
	_, _ = fmt.Fprintf(os.Stderr, "  font <key>           Print the font-family stack for a font key\n")
	_, _ = fmt.Fprintf(os.Stderr, "  options <table>      List the keys of an option table\n")
	_, _ = fmt.Fprintf(os.Stderr, "  sites                List sites with stored settings\n")
	_, _ = fmt.Fprintf(os.Stderr, "  seed                 Store built-in preset defaults\n\n")
	_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
	_, _ = fmt.Fprintf(os.Stderr, "  THEMEKIT_STORE           memory|redis|sqlite|mysql (default: memory)\n")
	_, _ = fmt.Fprintf(os.Stderr, "  THEMEKIT_DB_PATH         SQLite database path (default: ./data/themekit.db)\n")
	_, _ = fmt.Fprintf(os.Stderr, "  THEMEKIT_MYSQL_DSN       MySQL DSN (mysql store)\n")
	_, _ = fmt.Fprintf(os.Stderr, "  THEMEKIT_REDIS_URL       Redis URL (redis store)\n")
	_, _ = fmt.Fprintf(os.Stderr, "  THEMEKIT_THEME_SLUG      Default site slug (default: default)\n")
	_, _ = fmt.Fprintf(os.Stderr, "  THEMEKIT_DEFAULT_PRESET  Preset applied by 'preset' without a name (default: modern)\n")
	_, _ = fmt.Fprintf(os.Stderr, "  THEMEKIT_LOG_LEVEL       debug|info|warn|error (default: info)\n")
}

func run(site string, args []string) error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	slog.SetDefault(logger)

	if site == "" {
		site = cfg.ThemeSlug
	} else {
		site = util.Slugify(site)
	}

	opts := cfg.StoreOptions()
	opts.Logger = logger
	s, err := store.Open(opts)
	if err != nil {
		return fmt.Errorf("opening settings store: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			slog.Error("error closing settings store", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := &cli{
		manager:       theme.NewManager(s, logger),
		site:          site,
		defaultPreset: cfg.DefaultPreset,
		out:           os.Stdout,
	}
	return cli.execute(ctx, args)
}

// cli runs a single themekit command against a manager.
type cli struct {
	manager       *theme.Manager
	site          string
	defaultPreset string
	out           io.Writer
}

func (c *cli) execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "get":
		settings, err := c.manager.Settings(ctx, c.site)
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(settings))
		for k := range settings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			c.printf("%s = %s\n", k, settings[k])
		}
		return nil

	case "set":
		if len(rest) == 0 {
			return fmt.Errorf("%w: set needs at least one key=value", errUsage)
		}
		values := make(map[string]string, len(rest))
		for _, arg := range rest {
			k, v, ok := strings.Cut(arg, "=")
			if !ok || k == "" {
				return fmt.Errorf("%w: expected key=value, got %q", errUsage, arg)
			}
			values[k] = v
		}
		msg, err := c.manager.Save(ctx, c.site, values)
		if err != nil {
			return err
		}
		c.printf("%s\n", msg)
		return nil

	case "preset":
		name := c.defaultPreset
		if len(rest) > 0 {
			name = rest[0]
		}
		msg, err := c.manager.ApplyPreset(ctx, c.site, name)
		if err != nil {
			return err
		}
		c.printf("%s\n", msg)
		return nil

	case "reset":
		msg, err := c.manager.Reset(ctx, c.site)
		if err != nil {
			return err
		}
		c.printf("%s\n", msg)
		return nil

	case "css":
		settings, err := c.manager.Settings(ctx, c.site)
		if err != nil {
			return err
		}
		c.printf("%s", c.manager.Resolver().Styles(settings).CSSVariables())
		return nil

	case "font":
		var key any
		if len(rest) > 0 {
			key = rest[0]
		}
		c.printf("%s\n", c.manager.Resolver().ResolveFontFamily(key))
		return nil

	case "options":
		if len(rest) != 1 {
			return fmt.Errorf("%w: options needs a table name", errUsage)
		}
		t, ok := themeopt.TableByName(rest[0])
		if !ok {
			return fmt.Errorf("%w: unknown option table %q", errUsage, rest[0])
		}
		for _, o := range themeopt.Options(t) {
			v, _ := t.Lookup(o.Value)
			c.printf("%-20s %-22s %s\n", o.Value, o.Label, v)
		}
		return nil

	case "sites":
		sites, err := c.manager.Sites(ctx)
		if err != nil {
			return err
		}
		for _, s := range sites {
			c.printf("%s\n", s)
		}
		return nil

	case "seed":
		n, err := c.manager.SeedPresetDefaults(ctx)
		if err != nil {
			return err
		}
		c.printf("%d preset(s) seeded\n", n)
		return nil

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *cli) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
