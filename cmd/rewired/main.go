package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap/zapcore"

	"github.com/shauncritzer/memoir/internal/config"
	"github.com/shauncritzer/memoir/internal/hints"
	"github.com/shauncritzer/memoir/internal/logger"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdWorkbooks = "workbooks"
	cmdToolkit   = "toolkit"
	cmdRelief    = "relief"
	cmdSeed      = "seed"
	cmdVersion   = "version"
	cmdHelp      = "help"
)

func main() {
	// Missing .env is the common case; existing variables always win.
	_ = godotenv.Load()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args[1] and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[1], args[2:]
	var run func(context.Context, []string, *Environment) error
	switch name {
	case cmdWorkbooks:
		run = runWorkbooks
	case cmdToolkit:
		run = runToolkit
	case cmdRelief:
		run = runRelief
	case cmdSeed:
		run = runSeed
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "rewired %s\n", Version)
		return ExitSuccess
	case cmdHelp, "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", name)
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := run(ctx, rest, env)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if !printCommandUsage(env.Stdout, args[0]) {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		return ExitUsage
	}
	return ExitSuccess
}

// setup resolves the configuration and builds the logger for a command.
// The config file comes from --config, then REWIRED_CONFIG; without either
// the defaults are used.
func setup(env *Environment, common commonFlags) (*config.Config, *logger.Logger, error) {
	ec := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	name := common.config
	if name == "" {
		name = ec.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(ec, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level := zapcore.InfoLevel
	switch {
	case common.verbose:
		level = zapcore.DebugLevel
	case common.quiet:
		level = zapcore.ErrorLevel
	}
	log, err := logger.New(cfg.Log.Mode, logger.WithOutput(env.Stderr), logger.WithLevel(level))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", config.ErrInvalidValue, err)
	}
	return cfg, log, nil
}

// progress returns a stdout printer that is silent when quiet is set.
func progress(env *Environment, quiet bool) func(format string, args ...any) {
	if quiet {
		return func(string, ...any) {}
	}
	return func(format string, args ...any) {
		fmt.Fprintf(env.Stdout, format+"\n", args...)
	}
}
