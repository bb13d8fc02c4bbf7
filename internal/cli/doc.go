// Package cli defines the Cobra command tree for the ineedaref CLI. The root
// command runs a reference lookup; each other file registers one subcommand
// (survey, doctor, config, version) with the root command. Command
// implementations delegate to internal packages for the lookup itself and only
// handle flag parsing, I/O formatting, and turning errors into exit statuses.
package cli
