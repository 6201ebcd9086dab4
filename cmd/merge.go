package cmd

import (
	"github.com/mvargas/gitlet-go/internal/gitleterrors"
	"github.com/mvargas/gitlet-go/internal/merge"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:          "merge <branch>",
	Short:        "Merge a branch into the current branch",
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	result, err := merge.Run(r, args[0])
	if err != nil {
		return err
	}
	if result.Conflicted {
		cmd.Println(gitleterrors.ErrMergeConflict)
	}
	return nil
}
