package cli

import (
	"github.com/spf13/cobra"

	"github.com/tkastudio/pictograph/internal/harness"
)

// NewScenarioCommand creates the scenario command: run a conformance
// scenario file through the full pipeline and print the snapshot.
func NewScenarioCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario <scenario.yaml>",
		Short: "Run a conformance scenario and print its snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := harness.LoadScenario(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "load scenario", err)
			}

			snapshot, err := harness.Run(s)
			if err != nil {
				return WrapExitError(ExitFailure, "run scenario", err)
			}

			out := &OutputFormatter{Format: root.Format, Writer: cmd.OutOrStdout()}
			if root.Format == "json" {
				return out.PrintJSON(snapshot)
			}

			out.Printf("scenario: %s (%s mode)\n", snapshot.ScenarioName, snapshot.GridMode)
			for _, g := range snapshot.Glyphs {
				out.Printf("%-4s end=%s position=(%.3f, %.3f) rotation=%.1f mirrored=%v\n",
					g.Color, g.EndOrientation,
					g.Placement.Position.X, g.Placement.Position.Y,
					g.Placement.RotationDegrees, g.Placement.Mirrored)
			}
			if snapshot.Separation != nil {
				out.Printf("separation: red=%s blue=%s\n", snapshot.Separation.Red, snapshot.Separation.Blue)
			}
			return nil
		},
	}
}
