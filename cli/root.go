package cli

import "github.com/spf13/cobra"

// NewRootCmd returns the transcode command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "transcode",
		Short: "Text encoding converter",
		Long: "Convert text to and from binary, Base64, Morse code, ASCII, hex and emoji\n" +
			"usage:\n" +
			"\ttranscode convert -m <mode> <text>",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ParseConfig()
		},
	}

	rootCmd.AddCommand(NewConvertCmd())
	rootCmd.AddCommand(NewSwapCmd())
	rootCmd.AddCommand(NewModesCmd())
	rootCmd.AddCommand(NewConfigCmd())

	rootCmd.PersistentFlags().StringVar(
		&ConfigPath,
		"config",
		"",
		"Transcode config path (default <user config dir>/transcode/config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&RawOutput,
		"raw",
		"r",
		false,
		"Enables raw output mode for easier parsing of output",
	)

	return rootCmd
}
