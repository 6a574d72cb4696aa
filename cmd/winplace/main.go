package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/1broseidon/winplace/internal/config"
	"github.com/1broseidon/winplace/internal/finder"
	"github.com/1broseidon/winplace/internal/logging"
	"github.com/1broseidon/winplace/internal/placement"
	"github.com/1broseidon/winplace/internal/platform"
)

// openFunc connects to the window system.
type openFunc func(platform.Options) (platform.Backend, error)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, platform.Open))
}

type options struct {
	configPath   string
	display      string
	verbose      bool
	dryRun       bool
	jsonOut      bool
	listWindows  bool
	listMonitors bool
	listPresets  bool
	serveMCP     bool
}

func run(args []string, stdout, stderr io.Writer, open openFunc) int {
	var opts options
	fs := flag.NewFlagSet("winplace", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Config file path")
	fs.StringVar(&opts.display, "display", "", "X11 display name")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging to stderr")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "Print the target rectangle without moving the window")
	fs.BoolVar(&opts.jsonOut, "json", false, "Print listings as JSON")
	fs.BoolVar(&opts.listWindows, "list-windows", false, "List visible windows")
	fs.BoolVar(&opts.listMonitors, "list-monitors", false, "List monitors")
	fs.BoolVar(&opts.listPresets, "list-presets", false, "List alignment presets")
	fs.BoolVar(&opts.serveMCP, "mcp", false, "Serve MCP tools on stdio")
	fs.Usage = func() { printUsage(stdout) }

	// Parse reports errors and prints usage itself.
	split := flagEnd(fs, args)
	if err := fs.Parse(args[:split]); err != nil {
		return placement.ExitOK
	}
	positional := append(append([]string(nil), fs.Args()...), args[split:]...)
	if len(positional) > 0 && positional[0] == "--" {
		positional = positional[1:]
	}

	listing := opts.listWindows || opts.listMonitors || opts.listPresets
	if !listing && !opts.serveMCP && (len(positional) < 6 || len(positional) > 8) {
		printUsage(stdout)
		return placement.ExitOK
	}

	loaded, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return placement.ExitStartup
	}
	cfg := loaded.Config

	if opts.listPresets {
		if err := printPresets(stdout, cfg.AllPresets(), opts.jsonOut); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return placement.ExitStartup
		}
		if !opts.listWindows && !opts.listMonitors && !opts.serveMCP {
			return placement.ExitOK
		}
	}

	var req placement.Request
	if !listing && !opts.serveMCP {
		req, err = parseRequest(positional)
		if err != nil {
			printFailure(stderr, err)
			return placement.ExitCode(err)
		}
		req.DryRun = opts.dryRun
	}

	logger := newLogger(cfg, stderr, opts.verbose)
	defer logger.Close()
	if loaded.File != "" {
		logger.Debug(logging.ActionConfig, "config loaded", map[string]any{"file": loaded.File})
	} else {
		logger.Debug(logging.ActionConfig, "no config file, using defaults", nil)
	}

	display := cfg.Display
	if opts.display != "" {
		display = opts.display
	}
	backend, err := open(platform.Options{Display: display})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open window system: %v\n", err)
		return placement.ExitStartup
	}
	defer backend.Close()

	if opts.serveMCP {
		return runMCP(cfg, backend, logger, stderr)
	}

	placer := placement.NewPlacer(backend, logger, placement.Options{
		StrictApply: cfg.StrictApply,
		Fallback:    placement.Fallback(cfg.DefaultMonitorFallback),
	})

	if listing {
		return runList(placer, stdout, stderr, opts)
	}

	res, err := placer.Place(req)
	if err != nil {
		printFailure(stderr, err)
		return placement.ExitCode(err)
	}
	if req.DryRun {
		fmt.Fprintf(stdout, "0x%X -> %d,%d %dx%d (%s)\n",
			uintptr(res.Target.Window), res.Bounds.X, res.Bounds.Y, res.Bounds.Width, res.Bounds.Height,
			res.Target.Alignment)
	}
	return placement.ExitOK
}

// flagEnd returns the index of the first positional argument. Unlike
// flag.Parse it treats negative numbers as positional, so "-1" reaches the
// monitor index check instead of failing as an unknown flag.
func flagEnd(fs *flag.FlagSet, args []string) int {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") || arg == "-" {
			return i
		}
		if _, err := strconv.ParseFloat(arg, 64); err == nil {
			return i
		}
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		i++
	}
	return len(args)
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	return config.LoadFromPath(path)
}

// newLogger builds the console logger (warn, or debug with -v) plus the
// optional file sink from config.
func newLogger(cfg *config.Config, stderr io.Writer, verbose bool) *logging.Logger {
	consoleLevel := logging.LevelWarn
	if verbose {
		consoleLevel = logging.LevelDebug
	}
	lc := logging.Config{Console: stderr, ConsoleLevel: consoleLevel}

	if cfg.Logging.Enabled {
		fileCfg := cfg.GetLoggingConfig()
		lc.FilePath = fileCfg.File
		lc.FileLevel = logging.ParseLevel(fileCfg.Level)
		lc.MaxSizeMB = fileCfg.MaxSizeMB
		lc.MaxFiles = fileCfg.MaxFiles
	}

	logger, err := logging.New(lc)
	if err != nil {
		log.Printf("Warning: failed to initialize log file: %v", err)
		lc.FilePath = ""
		logger, _ = logging.New(lc)
	}
	return logger
}

// parseRequest converts the positional arguments. Unparseable numbers are
// reported with the same kind as an out-of-range value.
func parseRequest(args []string) (placement.Request, error) {
	var req placement.Request

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return req, &placement.Error{
			Kind:   placement.KindInvalidMonitorIndex,
			Detail: fmt.Sprintf("%q is not an integer", args[0]),
			Err:    err,
		}
	}
	req.Monitor = &index

	names := [...]string{"left", "right", "top", "bottom"}
	edges := [...]*float64{&req.Left, &req.Right, &req.Top, &req.Bottom}
	for i, name := range names {
		v, err := strconv.ParseFloat(args[1+i], 64)
		if err != nil {
			return req, &placement.Error{
				Kind:   placement.KindAlignmentOutOfRange,
				Detail: fmt.Sprintf("%s=%q is not a number", name, args[1+i]),
				Err:    err,
			}
		}
		*edges[i] = v
	}

	req.Criteria = finder.Criteria{ProcessName: args[5]}
	if len(args) > 6 {
		req.Criteria.WindowTitle = args[6]
	}
	if len(args) > 7 {
		req.Criteria.WindowClass = args[7]
	}
	return req, nil
}

func printFailure(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n\n", err)
	printUsage(w)
}
