package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/afero"

	"mapper474/config"
	"mapper474/log"
	"mapper474/romtool"
)

var version = "dev"

func main() {
	a := &app{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,
	}
	a.exit(a.main(os.Args[1:]))
}

type app struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	exit   func(int)
}

// main runs the command and returns its exit code.
func (a *app) main(args []string) int {
	err := a.run(args)
	if err == nil {
		return 0
	}

	fmt.Fprintf(a.stderr, "fatal error:")
	fmt.Fprintf(a.stderr, "\n\t%s\n", err)

	var usageErr *romtool.UsageError
	if errors.As(err, &usageErr) {
		printUsage(a.stdout)
	}
	return 1
}

func (a *app) run(args []string) error {
	log.SetOutput(a.stderr)

	var cli CLI
	parser, err := newParser(&cli, a.stdout, a.stderr, a.exit)
	if err != nil {
		return err
	}
	if err := parseArgs(parser, args); err != nil {
		return &romtool.UsageError{Err: errors.Wrap(err, "failed to parse command line")}
	}

	if err := cli.checkModeFlags(); err != nil {
		return &romtool.UsageError{Err: err}
	}

	cfg, err := a.loadConfig(cli.Config)
	if err != nil {
		return err
	}

	lm := cli.Log
	if !lm.set && cfg.Log.Modules != "" {
		if err := lm.parse(cfg.Log.Modules); err != nil {
			return errors.Wrap(romtool.ErrInvalidArgument, "config log modules: "+err.Error())
		}
	}
	lm.apply()

	log.ModCLI.WithField("mode", cli.Mode).Debug("starting")

	switch cli.Mode {
	case combineMode:
		_, err = romtool.CombineFiles(a.fs, romtool.CombineOptions{
			InputCHR:  cli.InputCHR,
			InputPRG:  cli.InputPRG,
			Output:    cli.Output,
			Submapper: orDefault(cli.Submapper, cfg.Combine.SubmapperString()),
			Region:    orDefault(cli.Region, cfg.Combine.Region),
			Mirroring: orDefault(cli.Mirroring, cfg.Combine.Mirroring),
		})
		return err
	case splitMode:
		_, err = romtool.SplitFiles(a.fs, romtool.SplitOptions{
			Input:        cli.Input,
			OutputHeader: cli.OutputHeader,
			OutputCHR:    cli.OutputCHR,
			OutputPRG:    cli.OutputPRG,
		})
		return err
	case infosMode:
		return a.infos(&cli)
	}
	return &romtool.UsageError{Err: errors.Wrapf(romtool.ErrInvalidArgument, "unknown mode %q", cli.Mode)}
}

func (a *app) infos(cli *CLI) error {
	paths := cli.Roms
	if cli.Input != "" {
		paths = append([]string{cli.Input}, paths...)
	}
	if len(paths) == 0 {
		return &romtool.UsageError{Err: errors.Wrap(romtool.ErrInvalidArgument, "missing parameter(s)")}
	}

	infos, err := romtool.Inspect(a.fs, paths)
	if err != nil {
		return err
	}
	if cli.JSON {
		return romtool.WriteJSON(a.stdout, infos)
	}
	return romtool.WriteText(a.stdout, infos)
}

// loadConfig loads the configuration file at path, or the default one if path
// is empty.
func (a *app) loadConfig(path string) (config.Config, error) {
	if path == "" {
		cfg, err := config.LoadDefault(a.fs)
		if err != nil {
			log.ModCLI.WithError(err).Warn("ignoring configuration file")
			return config.Config{}, nil
		}
		return cfg, nil
	}

	cfg, err := config.Load(a.fs, path)
	if err != nil {
		return config.Config{}, errors.Wrapf(romtool.ErrInvalidArgument, "config file %s: %v", path, err)
	}
	return cfg, nil
}

func orDefault(val, def string) string {
	if val != "" {
		return val
	}
	return def
}
