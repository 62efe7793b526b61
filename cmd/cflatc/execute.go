package main

import (
	"os"

	"github.com/ComedicChimera/olive"

	"cflatc/build"
	"cflatc/report"
)

// cflatVersion is the display version of the toolchain.
const cflatVersion = "0.1.0"

// Execute is the main entry point for the `cflatc` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("cflatc", "cflatc is the cflat compiler middle tier", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level (overrides the profile's)", false,
		[]string{"silent", "error", "warn", "verbose"})

	checkCmd := cli.AddSubcommand("check", "lower and type check the built-in sample program", true)
	checkCmd.AddFlag("dump-ir", "di", "print the checked program")
	checkCmd.AddFlag("debug", "d", "dump the raw program structure")
	checkCmd.AddStringArg("profile", "p", "the directory containing the build profile", false)

	cli.AddSubcommand("version", "print the cflatc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	// process the inputed command line
	loglevel := ""
	if lvl, ok := result.Arguments["loglevel"]; ok {
		loglevel = lvl.(string)
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult, loglevel)
	case "version":
		report.ReportInfo("cflatc version", cflatVersion)
	}
}

// execCheckCommand executes the check subcommand and handles all errors.
func execCheckCommand(result *olive.ArgParseResult, loglevel string) {
	profile := build.DefaultProfile()
	if dir, ok := result.Arguments["profile"]; ok {
		profile = build.LoadProfile(dir.(string))
	}

	if result.HasFlag("dump-ir") {
		profile.DumpIR = true
	}

	if result.HasFlag("debug") {
		profile.Debug = true
	}

	report.InitReporter(build.ResolveLogLevel(profile, loglevel))

	c := build.NewCompiler(sampleFile(), sampleSource, profile)
	if _, ok := c.Compile(); !ok {
		os.Exit(1)
	}

	report.ReportInfo("check", "no errors found")
}
