// Package cmd is the CLI front-end: one cobra command per verb, each
// forwarding straight to the core (internal/repo, internal/merge,
// internal/remote) and translating its return value into the process's
// stdout output. Following the reference program, every invocation exits
// 0 — even the documented error diagnostics — since the front-end never
// distinguishes "an operation reported an error" from "the process
// failed" (spec §6/§7).
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// ErrIncorrectOperands is printed for any invocation with the wrong
// number of positional arguments for its verb.
var ErrIncorrectOperands = errors.New("Incorrect operands")

// ErrNoSuchCommand is printed for an unrecognized verb.
var ErrNoSuchCommand = errors.New("No command with that name exists.")

// ErrNoCommand is printed when the CLI is invoked with no verb at all.
var ErrNoCommand = errors.New("Please enter a command.")

var rootCmd = &cobra.Command{
	Use:           "gitlet",
	Short:         "A minimal, local-first, content-addressed version-control system",
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ErrNoCommand
	},
}

// exactArgs enforces exactly n positional arguments, reporting the
// canonical "Incorrect operands" diagnostic otherwise.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return ErrIncorrectOperands
		}
		return nil
	}
}

// Execute runs the root command. Per the reference program's Main.main,
// the process always exits 0.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if strings.HasPrefix(err.Error(), "unknown command") {
			fmt.Println(ErrNoSuchCommand)
		} else {
			fmt.Println(err)
		}
	}
	os.Exit(0)
}
