package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashlyng/summitpath/core"
	"github.com/ashlyng/summitpath/datafile"
	"github.com/ashlyng/summitpath/generate"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Extract locations from level data",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelsPath, _ := cmd.Flags().GetString("levels")
		outPath, _ := cmd.Flags().GetString("out")

		data, err := datafile.ReadLevelData(levelsPath)
		if err != nil {
			return err
		}

		locations := generate.Locations(data)
		if err := datafile.WriteLocationData(outPath, &core.LocationData{Locations: locations}); err != nil {
			return err
		}

		fmt.Printf("Extracted %d locations to %s\n", len(locations), outPath)
		return nil
	},
}

func init() {
	locationsCmd.Flags().String("levels", "data/LevelData.json", "Level data file")
	locationsCmd.Flags().String("out", "data/LocationData.json", "Output location data file")
}
