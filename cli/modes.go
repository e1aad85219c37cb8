package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoobzio/transcode"
)

type modeInfo struct {
	Mode    transcode.Mode `json:"mode"`
	Inverse transcode.Mode `json:"inverse"`
	Hint    string         `json:"hint"`
}

// NewModesCmd returns modes command.
func NewModesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "modes",
		Short: "List conversion modes",
		Long: "List every conversion mode with its inverse and input hint\n" +
			"usage:\n" +
			"\ttranscode modes",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			var infos []modeInfo
			for _, m := range transcode.Modes() {
				inv, _ := m.Inverse()
				infos = append(infos, modeInfo{Mode: m, Inverse: inv, Hint: m.Hint()})
			}

			if asJSON {
				logJSONCmd(*cmd, infos)
				return
			}
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-16s %s\n", info.Mode, info.Inverse, info.Hint)
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print modes as JSON")

	return cmd
}
