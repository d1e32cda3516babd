package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashlyng/summitpath/datafile"
	"github.com/ashlyng/summitpath/generate"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Enumerate region paths for every extracted location",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelsPath, _ := cmd.Flags().GetString("levels")
		locationsPath, _ := cmd.Flags().GetString("locations")
		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			outPath = locationsPath
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		data, err := datafile.ReadLevelData(levelsPath)
		if err != nil {
			return err
		}
		locData, err := datafile.ReadLocationData(locationsPath)
		if err != nil {
			return err
		}

		err = generate.Paths(data, locData.Locations, cfg.SourceRefs(),
			generate.WithLogger(logger),
			generate.WithChains(cfg.ChainSegments()),
			generate.WithRevisits(cfg.Revisits),
		)
		if err != nil {
			return err
		}

		if err := datafile.WriteLocationData(outPath, locData); err != nil {
			return err
		}

		fmt.Printf("Wrote paths for %d locations to %s\n", len(locData.Locations), outPath)
		return nil
	},
}

func init() {
	pathsCmd.Flags().String("levels", "data/LevelData.json", "Level data file")
	pathsCmd.Flags().String("locations", "data/LocationData.json", "Location data file")
	pathsCmd.Flags().String("out", "", "Output file (defaults to the locations file)")
}
