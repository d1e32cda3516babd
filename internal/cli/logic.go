package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/datafile"
	"github.com/ashlyng/summitpath/generate"
)

var logicCmd = &cobra.Command{
	Use:   "logic",
	Short: "Collapse location paths into sum-of-products logic rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		locationsPath, _ := cmd.Flags().GetString("locations")
		outPath, _ := cmd.Flags().GetString("out")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		locData, err := datafile.ReadLocationData(locationsPath)
		if err != nil {
			return err
		}

		logic := generate.Logic(locData.Locations,
			generate.WithLogger(logger),
			generate.WithRemap(cfg.Remap, cfg.DisabledMarker),
			generate.WithGated(cfg.Gated()),
		)

		if err := datafile.WriteLogicData(outPath, &core.LogicData{LocationLogic: logic}); err != nil {
			return err
		}

		fmt.Printf("Collapsed logic for %d locations to %s\n", len(logic), outPath)
		return nil
	},
}

func init() {
	logicCmd.Flags().String("locations", "data/LocationData.json", "Location data file")
	logicCmd.Flags().String("out", "data/LogicData.json", "Output logic data file")
}
