package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/datafile"
	"github.com/ashlyng/summitpath/tracker"
)

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Inject collapsed logic into PopTracker pack location files",
	RunE: func(cmd *cobra.Command, args []string) error {
		logicPath, _ := cmd.Flags().GetString("logic")
		packDir, _ := cmd.Flags().GetString("pack")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		ignore, _ := cmd.Flags().GetStringSlice("ignore")

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		logicData, err := datafile.ReadLogicData(logicPath)
		if err != nil {
			return err
		}

		opts := []tracker.Option{
			tracker.WithLogger(logger),
			tracker.WithIgnoredTypes(ignore...),
		}
		if dryRun {
			opts = append(opts, tracker.WithDryRun())
		}

		sum, err := tracker.New(packDir, opts...).Inject(logicData)
		if err != nil {
			return err
		}

		fmt.Println("=== Summary ===")
		fmt.Printf("Locations updated: %d\n", sum.Updated)
		fmt.Printf("Locations skipped (ignored): %d\n", sum.Ignored)
		fmt.Printf("Locations skipped (missing section): %d\n", sum.MissingSection)
		fmt.Printf("JSON files affected: %d\n", sum.Files)
		if dryRun {
			fmt.Println("Dry run: no files were written.")
		}
		return nil
	},
}

func init() {
	injectCmd.Flags().String("logic", "data/LogicData.json", "Logic data file")
	injectCmd.Flags().String("pack", "", "PopTracker pack locations directory")
	injectCmd.Flags().Bool("dry-run", false, "Match sections but do not write files")
	injectCmd.Flags().StringSlice("ignore", []string{
		core.TypeBinoculars,
		core.TypeCar,
		core.TypeCheckpoint,
		core.TypeClutter,
		core.TypeGem,
		core.TypeKey,
		core.TypeGoldenStrawberry,
		core.TypeRoomEnter,
	}, "Location types to skip")

	injectCmd.MarkFlagRequired("pack")
}
