// Package commands defines the ssbenefit CLI.
//
// Commands
//
//   - estimate     Estimate the monthly benefit from a statement, a projection or both
//   - project      Back-project early-career earnings from a known wage
//   - wage-index   Summarize or list the national average wage index table
//   - init-config  Write an example YAML configuration
//
// # Implementation
//
// The root command builds a zap logger before any subcommand runs. Each
// command assembles a configuration from the optional --config file and its
// own flags, with flags taking precedence, and validates it before use.
package commands
