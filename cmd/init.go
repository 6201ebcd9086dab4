package cmd

import (
	"os"

	"github.com/mvargas/gitlet-go/internal/repo"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:          "init",
	Short:        "Create a new, empty repository",
	SilenceUsage: true,
	Args:         exactArgs(0),
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	_, err = repo.Init(dir)
	return err
}
