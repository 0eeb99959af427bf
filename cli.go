package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/go-faster/errors"

	"mapper474/ines"
	"mapper474/log"
	"mapper474/romtool"
)

const (
	combineMode = "combine" // build a container from CHR and PRG files
	splitMode   = "split"   // extract header, CHR and PRG from a container
	infosMode   = "infos"   // show container infos
)

type CLI struct {
	Mode string `name:"mode" help:"Operating mode: ${enum}." enum:"combine,split,infos" required:"" placeholder:"combine|split|infos"`

	// combine
	InputCHR  string `name:"input-chr" help:"CHR ROM to combine (8KB)." group:"combine" placeholder:"FILE"`
	InputPRG  string `name:"input-prg" help:"PRG ROM to combine (64KB, first 16KB not stored)." group:"combine" placeholder:"FILE"`
	Output    string `name:"output" help:"Container file to write." group:"combine" placeholder:"FILE"`
	Submapper string `name:"submapper" help:"Submapper number." group:"combine" placeholder:"0|1"`
	Region    string `name:"region" help:"Region/timing: ${regions}." group:"combine" placeholder:"REGION"`
	Mirroring string `name:"mirroring" help:"Nametable mirroring: ${mirrorings}." group:"combine" placeholder:"MIRRORING"`

	// split
	Input        string `name:"input" help:"Container file to split or inspect." group:"split" placeholder:"FILE"`
	OutputHeader string `name:"output-header" help:"Header file to write (16 bytes)." group:"split" placeholder:"FILE"`
	OutputCHR    string `name:"output-chr" help:"CHR ROM file to write." group:"split" placeholder:"FILE"`
	OutputPRG    string `name:"output-prg" help:"PRG ROM file to write (64KB, first 16KB zeroed)." group:"split" placeholder:"FILE"`

	// infos
	JSON bool     `name:"json" help:"Output infos as JSON." group:"infos"`
	Roms []string `arg:"" optional:"" name:"rom" help:"Containers to inspect (infos mode)."`

	Config  string           `name:"config" help:"${config_help}" placeholder:"FILE"`
	Log     logModules       `name:"log" help:"${log_help}" placeholder:"mod0,mod1,..."`
	Version kong.VersionFlag `name:"version" help:"Show version."`
}

var vars = kong.Vars{
	"regions":     strings.Join(ines.RegionNames(), "|"),
	"mirrorings":  strings.Join(ines.MirroringNames(), "|"),
	"config_help": "Configuration file providing default flag values (default: user config dir/mapper474/config.toml).",
	"log_help":    "Enable logging for specified modules.",
	"version":     version,
}

// checkModeFlags rejects flags and arguments that do not belong to the
// selected mode.
func (cli *CLI) checkModeFlags() error {
	var stray []string
	check := func(name string, set bool, modes ...string) {
		if set && !slices.Contains(modes, cli.Mode) {
			stray = append(stray, name)
		}
	}

	check("--input-chr", cli.InputCHR != "", combineMode)
	check("--input-prg", cli.InputPRG != "", combineMode)
	check("--output", cli.Output != "", combineMode)
	check("--submapper", cli.Submapper != "", combineMode)
	check("--region", cli.Region != "", combineMode)
	check("--mirroring", cli.Mirroring != "", combineMode)
	check("--input", cli.Input != "", splitMode, infosMode)
	check("--output-header", cli.OutputHeader != "", splitMode)
	check("--output-chr", cli.OutputCHR != "", splitMode)
	check("--output-prg", cli.OutputPRG != "", splitMode)
	check("--json", cli.JSON, infosMode)
	for _, rom := range cli.Roms {
		check(fmt.Sprintf("argument %q", rom), true, infosMode)
	}

	if len(stray) != 0 {
		return errors.Wrapf(romtool.ErrInvalidArgument, "not allowed in %s mode: %s", cli.Mode, strings.Join(stray, ", "))
	}
	return nil
}

func newParser(cli *CLI, stdout, stderr io.Writer, exit func(int)) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("mapper474"),
		kong.Description("Combine and split mapper 474 NES 2.0 ROM images."),
		kong.Help(printHelp),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
		vars)
}

func parseArgs(parser *kong.Kong, args []string) error {
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Error
}

const usage = `Usage:
mapper474 --mode=combine|split|infos [extra required args]
mapper474 --mode=combine --input-chr=chr.bin --input-prg=prg.bin --output=myrom.nes --submapper=0|1 --region=Ntsc|Pal|Dendy|Multiple --mirroring=Horizontal|Vertical
mapper474 --mode=split --input=myrom.nes --output-header=header.bin --output-chr=chr.bin --output-prg=prg.bin
mapper474 --mode=infos [--json] myrom.nes...
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usage)
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	loggingHelp := `
Examples:
%s
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
	var strs []string
	for _, m := range log.ModuleNames() {
		strs = append(strs, "    - "+m)
	}

	fmt.Fprintf(ctx.Stdout, loggingHelp, usage, strings.Join(strs, "\n"))
	return nil
}

// logModules is the parsed value of the --log flag.
type logModules struct {
	set   bool
	nolog bool
	mask  log.ModuleMask
}

// Decode decodes a comma-separated list of module names.
//
// Implements kong.MapperValue interface.
func (lm *logModules) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	s, ok := tok.Value.(string)
	if !ok {
		return fmt.Errorf("expected a list of log modules, got %v", tok.Value)
	}
	return lm.parse(s)
}

func (lm *logModules) parse(s string) error {
	allLogs := false
	*lm = logModules{set: true}

	for _, v := range strings.Split(s, ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			lm.nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm.mask |= mod.Mask()
		}
	}

	if lm.nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm.mask != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		return nil
	}

	if allLogs {
		lm.mask = log.ModuleMaskAll
	}
	return nil
}

// apply replaces the current logging configuration. The zero value restores
// the defaults: warnings and errors only.
func (lm *logModules) apply() {
	log.DisableDebugModules(log.ModuleMaskAll)
	log.Enable()
	if lm.nolog {
		log.Disable()
		return
	}
	log.EnableDebugModules(lm.mask)
}
