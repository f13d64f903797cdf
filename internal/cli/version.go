package cli

import (
	"fmt"

	"github.com/formgate/formgate/internal/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetVersionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
