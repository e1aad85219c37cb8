package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd returns config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <show | set | path>",
		Short: "Manage saved preferences",
		Long: "Show or change the preferences used when flags are not given\n" +
			"usage:\n" +
			"\ttranscode config show\n" +
			"\ttranscode config set <key> <value>\n" +
			"\ttranscode config path",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active preferences",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			data, err := yaml.Marshal(active)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one preference and save it",
		Long: "Change one preference and save it to the preferences file\n" +
			"keys: mode, bits, hex_case, preset, format, no_color, raw\n" +
			"usage:\n" +
			"\ttranscode config set mode text-to-morse",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			path := configPath()
			if path == "" {
				logErrorCmd(*cmd, errors.New("no config path: pass --config"))
				return
			}

			c, err := LoadConfig(path)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			if err := c.Set(args[0], args[1]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			if err := SaveConfig(c, path); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			active = c

			logOKCmd(*cmd)
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the preferences file location",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configPath())
		},
	}
}
