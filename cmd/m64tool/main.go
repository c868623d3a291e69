// Command m64tool inspects, converts and compares .m64 movies.
//
// Usage:
//
//	m64tool [-config file] [-log-level level] <command> [arguments]
//
// Commands:
//
//	info <movie>                 print the movie metadata
//	frames [-n N] <movie>        print the input of each frame
//	pack [-c codec] <in> <out>   write a compressed archive
//	unpack <in> <out>            write a plain .m64
//	verify <a> <b>               compare the inputs of two movies
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/m64kit/m64"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("m64tool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a TOML config file")
	logLevel := fs.String("log-level", "", "log level override (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: m64tool [-config file] [-log-level level] <info|frames|pack|unpack|verify> [arguments]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "m64tool: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		if err := cfg.setLogLevel(*logLevel); err != nil {
			fmt.Fprintf(stderr, "m64tool: %v\n", err)
			return 2
		}
	}

	logger, err := cfg.newLogger()
	if err != nil {
		fmt.Fprintf(stderr, "m64tool: build logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	m64.SetLogger(logger)
	defer m64.SetLogger(nil)

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	err = dispatch(cmd, cmdArgs, cfg, stdout, stderr)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "m64tool %s: %v\n", cmd, err)
		return 2
	default:
		logger.Debug("command failed", zap.String("command", cmd), zap.Error(err))
		fmt.Fprintf(stderr, "m64tool %s: %v\n", cmd, err)
		return 1
	}
}

func dispatch(cmd string, args []string, cfg config, stdout, stderr io.Writer) error {
	switch cmd {
	case "info":
		return cmdInfo(args, stdout)
	case "frames":
		return cmdFrames(args, cfg, stdout, stderr)
	case "pack":
		return cmdPack(args, cfg, stdout, stderr)
	case "unpack":
		return cmdUnpack(args, stdout)
	case "verify":
		return cmdVerify(args, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}
