package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/zoobzio/transcode"
)

// conversionFlags holds the flags shared by convert and swap. Flags left
// unset fall back to the loaded configuration.
type conversionFlags struct {
	mode    string
	bits    int
	hexCase string
	preset  string
	file    string
}

func (f *conversionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "Conversion mode, see 'transcode modes'")
	cmd.Flags().IntVar(&f.bits, "bits", 0, "Binary group width, 7 or 8")
	cmd.Flags().StringVar(&f.hexCase, "hex-case", "", "Hex letter case, lower or upper")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Emoji preset, letters, words or custom")
	cmd.Flags().StringVar(&f.file, "file", "", "Read input from a file")
}

// resolve merges the flags over the active configuration.
func (f *conversionFlags) resolve(cmd *cobra.Command) (transcode.Mode, transcode.Options, error) {
	c := *active
	if cmd.Flags().Changed("mode") {
		c.Mode = f.mode
	}
	if cmd.Flags().Changed("bits") {
		c.Bits = f.bits
	}
	if cmd.Flags().Changed("hex-case") {
		c.HexCase = f.hexCase
	}
	if cmd.Flags().Changed("preset") {
		c.Preset = f.preset
	}

	m, err := transcode.ParseMode(c.Mode)
	if err != nil {
		return "", transcode.Options{}, err
	}
	opts := c.Options()
	if err := opts.Validate(m); err != nil {
		return "", transcode.Options{}, err
	}
	return m, opts, nil
}

// NewConvertCmd returns convert command.
func NewConvertCmd() *cobra.Command {
	var (
		flags  conversionFlags
		format string
		save   string
	)

	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Convert text",
		Long: "Convert text with the selected mode. Input is read from the arguments,\n" +
			"the --file flag or stdin\n" +
			"usage:\n" +
			"\ttranscode convert -m text-to-morse SOS\n" +
			"\techo 01001000 01101001 | transcode convert -m binary-to-text",
		Run: func(cmd *cobra.Command, args []string) {
			m, opts, err := flags.resolve(cmd)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			name := active.Format
			if cmd.Flags().Changed("format") {
				name = format
			}
			f, err := formatFor(name)
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

			r, err := conv.Result(cmd.Context(), input)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			if save != "" {
				path, err := saveOutput(save, m, r.Output)
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}
				logSavedCmd(*cmd, path)
				return
			}

			if f == nil {
				logOutputCmd(*cmd, r.Output)
				return
			}

			data, err := transcode.MarshalResult(cmd.Context(), f, r)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			switch {
			case isBinaryFormat(f):
				logBytesCmd(*cmd, data)
			case f.ContentType() == "application/json":
				logJSONBytesCmd(*cmd, data)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json, xml, yaml, msgpack or bson")
	cmd.Flags().StringVar(&save, "save", "", "Write the output to a file in this directory")

	return cmd
}

// saveOutput writes out to dir under the name given by transcode.Filename.
func saveOutput(dir string, m transcode.Mode, out string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, transcode.Filename(m, time.Now()))
	if err := os.WriteFile(path, []byte(out), 0600); err != nil {
		return "", fmt.Errorf("failed to write output: %w", err)
	}
	return path, nil
}
