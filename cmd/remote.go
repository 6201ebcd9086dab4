package cmd

import (
	"github.com/mvargas/gitlet-go/internal/gitleterrors"
	"github.com/mvargas/gitlet-go/internal/remote"
	"github.com/spf13/cobra"
)

var addRemoteCmd = &cobra.Command{
	Use:          "add-remote <name> <path>",
	Short:        "Record another repository's location under a name",
	SilenceUsage: true,
	Args:         exactArgs(2),
	RunE:         runAddRemote,
}

var rmRemoteCmd = &cobra.Command{
	Use:          "rm-remote <name>",
	Short:        "Forget a recorded remote",
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runRmRemote,
}

var pushCmd = &cobra.Command{
	Use:          "push <remote> <branch>",
	Short:        "Copy local commits to a remote branch",
	SilenceUsage: true,
	Args:         exactArgs(2),
	RunE:         runPush,
}

var fetchCmd = &cobra.Command{
	Use:          "fetch <remote> <branch>",
	Short:        "Copy a remote branch's commits into a local tracking branch",
	SilenceUsage: true,
	Args:         exactArgs(2),
	RunE:         runFetch,
}

var pullCmd = &cobra.Command{
	Use:          "pull <remote> <branch>",
	Short:        "Fetch a remote branch, then merge it into the current branch",
	SilenceUsage: true,
	Args:         exactArgs(2),
	RunE:         runPull,
}

func init() {
	rootCmd.AddCommand(addRemoteCmd, rmRemoteCmd, pushCmd, fetchCmd, pullCmd)
}

func runAddRemote(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	return remote.New(r.GitletDir).Add(args[0], args[1])
}

func runRmRemote(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	return remote.New(r.GitletDir).Remove(args[0])
}

func runPush(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	return remote.Push(r, remote.New(r.GitletDir), args[0], args[1])
}

func runFetch(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	return remote.Fetch(r, remote.New(r.GitletDir), args[0], args[1])
}

func runPull(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	result, err := remote.Pull(r, remote.New(r.GitletDir), args[0], args[1])
	if err != nil {
		return err
	}
	if result.Conflicted {
		cmd.Println(gitleterrors.ErrMergeConflict)
	}
	return nil
}
