package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashlyng/summitpath/datafile"
)

var connectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "Print the room flow of every level",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelsPath, _ := cmd.Flags().GetString("levels")

		data, err := datafile.ReadLevelData(levelsPath)
		if err != nil {
			return err
		}

		for _, lvl := range data.Levels {
			fmt.Printf("Level: %s (%d rooms)\n", lvl.DisplayName, len(lvl.Rooms))
			if len(lvl.RoomConnections) > 0 {
				fmt.Println("Room Flow:")
				for _, conn := range lvl.RoomConnections {
					fmt.Printf("  %s %s to %s\n", conn.SourceRoom, conn.SourceDoor, conn.DestRoom)
				}
			}
			fmt.Println("===================================")
		}
		return nil
	},
}

func init() {
	connectionsCmd.Flags().String("levels", "data/LevelData.json", "Level data file")
}
