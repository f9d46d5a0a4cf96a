package cli

import (
	"github.com/spf13/cobra"

	"github.com/tkastudio/pictograph/internal/orient"
	"github.com/tkastudio/pictograph/internal/sequence"
)

// NewValidateCommand creates the validate command: re-derive every
// stored end orientation in a sequence document and report
// disagreements. A stored orientation that disagrees with the
// derivation is a data-integrity bug.
func NewValidateCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <sequence.yaml>",
		Short: "Check a sequence document's end-orientation integrity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := sequence.Load(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "load sequence", err)
			}

			log := newLogger(root.Verbose)
			violations, err := sequence.CheckIntegrity(doc, orient.NewResolver(log))
			if err != nil {
				return WrapExitError(ExitFailure, "integrity check", err)
			}

			out := &OutputFormatter{Format: root.Format, Writer: cmd.OutOrStdout()}
			if root.Format == "json" {
				if err := out.PrintJSON(violations); err != nil {
					return err
				}
			} else {
				if len(violations) == 0 {
					out.Printf("%s: %d beats, no integrity violations\n", doc.Name, len(doc.Beats))
				}
				for _, v := range violations {
					out.Printf("%s\n", v)
				}
			}

			if len(violations) > 0 {
				return NewExitError(ExitFailure, "sequence has integrity violations")
			}
			return nil
		},
	}
}
