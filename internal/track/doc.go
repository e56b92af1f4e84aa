// Package track assembles the list, add, and remove subcommands operating on
// the persisted collection of tracked repositories.
package track
