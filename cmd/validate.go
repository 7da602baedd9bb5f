package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/tuvi/internal/batch"
	"github.com/papapumpkin/tuvi/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check every record of a batch file without computing charts",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	printer := ui.NewWriter(cmd.ErrOrStderr())
	path := args[0]

	f, err := batch.Load(path)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	errs := batch.Validate(f)
	printer.ValidateResult(path, len(f.Births), errs)
	if len(errs) > 0 {
		return fmt.Errorf("validation failed with %d error(s)", len(errs))
	}
	return nil
}
