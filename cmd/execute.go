package cmd

import (
	"fmt"
	"os"

	"lumen/backend"
	"lumen/common"
	"lumen/report"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `lumen` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("lumen", "lumen compiles MIR modules to native object files", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a MIR module to an object file", true)
	buildCmd.AddPrimaryArg("mir-path", "the path to the MIR module file", true)
	buildCmd.AddStringArg("outpath", "o", "the path for the object file output", false)
	buildCmd.AddStringArg("optlevel", "O", "the optimization level", false)

	checkCmd := cli.AddSubcommand("check", "validate a MIR module without compiling", true)
	checkCmd.AddPrimaryArg("mir-path", "the path to the MIR module file", true)

	cli.AddSubcommand("version", "print the Lumen version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, result.Arguments["loglevel"].(string))
	case "check":
		execCheckCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		report.ReportInfo("Lumen Version", common.LumenVersion)
	}
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, loglevel string) {
	report.SetLogLevel(report.LogLevelFromString(loglevel))

	// get the primary argument: the MIR module path
	mirPath, _ := result.PrimaryArg()

	mirText, err := os.ReadFile(mirPath)
	if err != nil {
		report.ReportError(report.Raise(report.KindInvalidArgument, "unable to read MIR module at `%s`: %s", mirPath, err.Error()))
		os.Exit(1)
	}

	// resolve output path and optimization level: explicit arguments win,
	// then the build profile, then the defaults
	profile := LoadProfile(mirPath)

	outPath := profile.OutputPath
	if arg, ok := result.Arguments["outpath"]; ok {
		outPath = arg.(string)
	}

	optLevel := profile.OptLevel
	if arg, ok := result.Arguments["optlevel"]; ok {
		optLevel = arg.(string)
	}

	if err := backend.CompileTextWithOpt(string(mirText), outPath, optLevel); err != nil {
		report.ReportError(err)
		os.Exit(1)
	}

	report.ReportInfo("Compiled", outPath)
}

// execCheckCommand executes the check subcommand.
func execCheckCommand(result *olive.ArgParseResult, loglevel string) {
	report.SetLogLevel(report.LogLevelFromString(loglevel))

	mirPath, _ := result.PrimaryArg()

	mirText, err := os.ReadFile(mirPath)
	if err != nil {
		report.ReportError(report.Raise(report.KindInvalidArgument, "unable to read MIR module at `%s`: %s", mirPath, err.Error()))
		os.Exit(1)
	}

	if err := backend.ValidateText(string(mirText)); err != nil {
		report.ReportError(err)
		os.Exit(1)
	}

	report.ReportInfo("Valid", mirPath)
}
