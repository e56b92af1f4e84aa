// Package cli assembles the git-subscribe command hierarchy, binding
// configuration loading and structured logging to the tracker subcommands.
package cli
