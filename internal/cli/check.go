package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashlyng/summitpath/datafile"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report data inconsistencies and pipeline output gaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelsPath, _ := cmd.Flags().GetString("levels")
		locationsPath, _ := cmd.Flags().GetString("locations")
		logicPath, _ := cmd.Flags().GetString("logic")

		clean := true

		data, err := datafile.ReadLevelData(levelsPath)
		if err != nil {
			return err
		}

		issues := datafile.CheckDoors(data)
		for _, issue := range issues {
			clean = false
			fmt.Printf("door %s/%s/%s: %s\n", issue.Level, issue.Room, issue.Door, issue.Reason)
		}

		for level, conns := range datafile.OneWayConnections(data) {
			for _, conn := range conns {
				fmt.Printf("one-way %s: %s/%s -> %s/%s\n",
					level, conn.SourceRoom, conn.SourceDoor, conn.DestRoom, conn.DestDoor)
			}
		}

		// Pipeline outputs are optional; report on whichever exist.
		if locData, err := datafile.ReadLocationData(locationsPath); err == nil {
			for _, m := range datafile.MaxPathLengths(locData) {
				fmt.Printf("max path length %s: %d regions\n", m.Level, m.Length)
			}
		}
		if logicData, err := datafile.ReadLogicData(logicPath); err == nil {
			for _, logic := range datafile.MissingLogic(logicData) {
				clean = false
				fmt.Printf("no logic rules: %s, %s, %s\n",
					logic.LevelDisplayName, logic.RoomName, logic.LocationDisplayName)
			}
		}

		if !clean {
			os.Exit(1)
		}
		fmt.Println("No issues found.")
		return nil
	},
}

func init() {
	checkCmd.Flags().String("levels", "data/LevelData.json", "Level data file")
	checkCmd.Flags().String("locations", "data/LocationData.json", "Location data file")
	checkCmd.Flags().String("logic", "data/LogicData.json", "Logic data file")
}
