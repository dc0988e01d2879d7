// Command nbtkit dumps NBT files as SNBT or typed JSON and packs JSON back into NBT.
//
// Usage:
//
//	nbtkit [global flags] <command> [flags] <args>
//
// Commands:
//
//	snbt <file>           print the file as SNBT
//	json <file>           write the file as typed JSON next to it
//	pack <file.json>      infer tags from JSON and write an NBT file
//	info <file>           print the root name, framing and fingerprint
//	verify <a> <b>        exit 1 unless both files hold equal trees
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/arloliu/nbtkit/format"
	"github.com/arloliu/nbtkit/internal/config"
	"github.com/arloliu/nbtkit/nbt"
)

// errDiffer is returned by verify when the trees are not equal.
var errDiffer = errors.New("trees differ")

// errUsage marks errors already reported with usage text.
var errUsage = errors.New("usage error")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errDiffer):
		os.Exit(1)
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "nbtkit: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by every command.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("nbtkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)

	var (
		configPath   string
		verbose      int
		littleEndian bool
		noRetry      bool
	)
	fs.StringVar(&configPath, "config", "", "YAML configuration file")
	fs.CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
	fs.BoolVar(&littleEndian, "little-endian", false, "assume little-endian when decoding")
	fs.BoolVar(&noRetry, "no-retry", false, "do not retry with the opposite byte order")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: nbtkit [global flags] <snbt|json|pack|info|verify> [flags] <args>\n\nGlobal flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if littleEndian {
		cfg.Endianness = format.LittleEndian.String()
	}
	if noRetry {
		cfg.Retry = false
	}

	a := &app{
		cfg:    cfg,
		logger: newLogger(stderr, cfg.Level(), verbose),
		stdout: stdout,
		stderr: stderr,
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errUsage
	}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "snbt":
		return a.snbt(cmdArgs)
	case "json":
		return a.json(cmdArgs)
	case "pack":
		return a.pack(cmdArgs)
	case "info":
		return a.info(cmdArgs)
	case "verify":
		return a.verify(cmdArgs)
	default:
		fmt.Fprintf(stderr, "nbtkit: unknown command %q\n", cmd)
		fs.Usage()
		return errUsage
	}
}

// newLogger maps the -v count onto a level: none keeps the configured
// level, -v is info and -vv or more is debug.
func newLogger(w io.Writer, level slog.Level, verbose int) *slog.Logger {
	switch {
	case verbose >= 2:
		level = slog.LevelDebug
	case verbose == 1:
		level = min(level, slog.LevelInfo)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// decodeOptions returns the nbt options implied by the configuration.
func (a *app) decodeOptions() []nbt.Option {
	opts := []nbt.Option{
		nbt.WithEndianness(a.cfg.AssumedEndianness()),
		nbt.WithLogger(a.logger),
	}
	if !a.cfg.Retry {
		opts = append(opts, nbt.WithoutRetry())
	}

	return opts
}

// newCommandFlags builds a subcommand flag set reporting to stderr.
func (a *app) newCommandFlags(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: nbtkit %s %s\n", name, usage)
		fs.PrintDefaults()
	}

	return fs
}

// parseCommand parses a subcommand and checks its positional argument count.
func parseCommand(fs *flag.FlagSet, args []string, want int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != want {
		fs.Usage()
		return nil, errUsage
	}

	return fs.Args(), nil
}
