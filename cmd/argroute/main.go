package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬─┐┌─┐┬─┐┌─┐┬ ┬┌┬┐┌─┐
  ├─┤├┬┘│ ┬├┬┘│ ││ │ │ ├┤
  ┴ ┴┴└─└─┘┴└─└─┘└─┘ ┴ └─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "argroute",
		Short: "Route-pattern tooling for command-line interfaces",
		Long: `Argroute matches argument vectors against declarative route patterns.

A pattern describes a command line the way an HTTP route describes a URL:

  git commit --amend,-a? -m {message|Commit message}
  cp {*sources} {dest}
  tail {file} --lines,-n {count:int}?

This CLI helps while authoring patterns:

  • explain   Parse and validate a pattern, show its structure
  • match     Resolve an argv against a set of patterns
  • score     Compare specificity across patterns`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands
	rootCmd.AddCommand(
		explainCmd(),
		matchCmd(),
		scoreCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the argroute ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
