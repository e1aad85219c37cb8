package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/zoobzio/transcode"
)

// swapResult reports a conversion followed by its inverse.
type swapResult struct {
	Mode    transcode.Mode `json:"mode"`
	Inverse transcode.Mode `json:"inverse"`
	Input   string         `json:"input"`
	Output  string         `json:"output"`
	Back    string         `json:"back"`
	Match   bool           `json:"match"`
}

// NewSwapCmd returns swap command.
func NewSwapCmd() *cobra.Command {
	var flags conversionFlags

	cmd := &cobra.Command{
		Use:   "swap [text...]",
		Short: "Convert text and convert it back",
		Long: "Convert text with the selected mode, then feed the output through the\n" +
			"inverse mode and report whether the original text came back\n" +
			"usage:\n" +
			"\ttranscode swap -m text-to-hex hello",
		Run: func(cmd *cobra.Command, args []string) {
			m, opts, err := flags.resolve(cmd)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			input, err := readInput(*cmd, args, flags.file)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			conv, err := transcode.Use(m, opts)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			inv, err := conv.Inverse()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			out, err := conv.Convert(cmd.Context(), input)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			back, err := inv.Convert(cmd.Context(), out)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			res := swapResult{
				Mode:    m,
				Inverse: inv.Mode(),
				Input:   input,
				Output:  out,
				Back:    back,
				Match:   back == input,
			}
			if RawOutput {
				logJSONCmd(*cmd, res)
				return
			}
			logSwapCmd(*cmd, res)
		},
	}

	flags.register(cmd)

	return cmd
}

func logSwapCmd(cmd cobra.Command, res swapResult) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\n%s %s\n", color.CyanString("%s:", res.Mode), res.Output)
	fmt.Fprintf(w, "%s %s\n", color.CyanString("%s:", res.Inverse), res.Back)
	if res.Match {
		fmt.Fprintf(w, "%s\n\n", color.GreenString("round trip: match"))
	} else {
		fmt.Fprintf(w, "%s\n\n", color.YellowString("round trip: differs"))
	}
}
