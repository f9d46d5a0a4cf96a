package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tkastudio/pictograph/internal/motion"
	"github.com/tkastudio/pictograph/internal/orient"
	"github.com/tkastudio/pictograph/internal/overrides"
	"github.com/tkastudio/pictograph/internal/placement"
)

// PlaceOptions holds flags for the place command.
type PlaceOptions struct {
	MotionType       string
	Rotation         string
	Start            string
	End              string
	Turns            float64
	StartOrientation string
	Color            string
	GridMode         string
	Letter           string
	OverridesPath    string
}

// placeResult is the command's output shape.
type placeResult struct {
	EndOrientation motion.Orientation       `json:"end_orientation"`
	Placement      placement.ArrowPlacement `json:"placement"`
}

// NewPlaceCommand creates the place command: compute end orientation
// and arrow placement for one motion.
func NewPlaceCommand(root *RootOptions) *cobra.Command {
	opts := &PlaceOptions{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute the arrow placement for one motion",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.MotionType, "motion-type", "", "motion type (pro|anti|float|dash|static)")
	cmd.Flags().StringVar(&opts.Rotation, "rotation", "no_rot", "rotation direction (cw|ccw|no_rot)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "start location (n|e|s|w|ne|se|sw|nw)")
	cmd.Flags().StringVar(&opts.End, "end", "", "end location")
	cmd.Flags().Float64Var(&opts.Turns, "turns", 0, "turn count in half-turn steps")
	cmd.Flags().StringVar(&opts.StartOrientation, "start-orientation", "in", "start orientation (in|out|clock|counter)")
	cmd.Flags().StringVar(&opts.Color, "color", "red", "object color (red|blue)")
	cmd.Flags().StringVar(&opts.GridMode, "grid-mode", "", "grid layout mode (diamond|box); defaults from config")
	cmd.Flags().StringVar(&opts.Letter, "letter", "", "notation letter for override resolution")
	cmd.Flags().StringVar(&opts.OverridesPath, "overrides", "", "placement override table YAML; defaults from config")

	_ = cmd.MarkFlagRequired("motion-type")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func runPlace(cmd *cobra.Command, root *RootOptions, opts *PlaceOptions) error {
	d := motion.Descriptor{
		MotionType:        motion.Type(opts.MotionType),
		RotationDirection: motion.RotationDirection(opts.Rotation),
		StartLocation:     motion.Location(opts.Start),
		EndLocation:       motion.Location(opts.End),
		Turns:             motion.Turns(opts.Turns),
		StartOrientation:  motion.Orientation(opts.StartOrientation),
		Color:             motion.Color(opts.Color),
	}
	if err := d.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid motion", err)
	}

	mode := motion.GridMode(opts.GridMode)
	if opts.GridMode == "" {
		mode = motion.GridMode(viper.GetString("grid_mode"))
	}
	if !mode.Valid() {
		return NewExitError(ExitCommandError, "invalid grid mode "+string(mode))
	}

	overridesPath := opts.OverridesPath
	if overridesPath == "" {
		overridesPath = viper.GetString("overrides")
	}
	var table overrides.Table
	if overridesPath != "" {
		var err error
		table, err = overrides.Load(overridesPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "load overrides", err)
		}
	}

	log := newLogger(root.Verbose)

	endOri, err := orient.NewResolver(log).EndOrientation(d)
	if err != nil {
		return WrapExitError(ExitFailure, "orientation", err)
	}
	d.EndOrientation = endOri

	placed, err := placement.NewEngine(table, log).Place(d, mode, opts.Letter)
	if err != nil {
		return WrapExitError(ExitFailure, "placement", err)
	}

	out := &OutputFormatter{Format: root.Format, Writer: cmd.OutOrStdout()}
	result := placeResult{EndOrientation: endOri, Placement: placed}
	if root.Format == "json" {
		return out.PrintJSON(result)
	}

	out.Printf("end orientation: %s\n", result.EndOrientation)
	out.Printf("position:        (%.3f, %.3f)\n", placed.Position.X, placed.Position.Y)
	out.Printf("rotation:        %.1f°\n", placed.RotationDegrees)
	out.Printf("mirrored:        %v\n", placed.Mirrored)
	return nil
}
