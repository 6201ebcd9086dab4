package cmd

import "github.com/spf13/cobra"

// checkoutCmd handles all three checkout forms from spec §4.5/§6, since the
// dividing line between them is the literal "--" token rather than
// distinct verbs (matching the reference program's checkoutParse). Flag
// parsing is disabled so that "--" reaches checkoutArgs and runCheckout as
// an ordinary argument instead of being consumed as the end-of-flags marker.
var checkoutCmd = &cobra.Command{
	Use:                "checkout",
	Short:              "Restore a file, or switch to a branch",
	SilenceUsage:       true,
	DisableFlagParsing: true,
	Args:               checkoutArgs,
	RunE:               runCheckout,
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
}

func checkoutArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return nil
	case 2:
		if args[0] == "--" {
			return nil
		}
	case 3:
		if args[1] == "--" {
			return nil
		}
	}
	return ErrIncorrectOperands
}

func runCheckout(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}

	switch len(args) {
	case 1:
		return r.CheckoutBranch(args[0])
	case 2:
		return r.CheckoutFile(args[1])
	case 3:
		return r.CheckoutFileAt(args[0], args[2])
	}
	return ErrIncorrectOperands
}
