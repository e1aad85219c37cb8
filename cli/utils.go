package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
)

var (
	// ConfigPath config path parameter.
	ConfigPath string = ""
	// RawOutput raw output mode.
	RawOutput bool = false

	// active is the configuration loaded by ParseConfig.
	active = DefaultConfig()
)

func logJSONCmd(cmd cobra.Command, iList ...interface{}) {
	for _, i := range iList {
		m, err := json.Marshal(i)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}
		logJSONBytesCmd(cmd, m)
	}
}

func logJSONBytesCmd(cmd cobra.Command, m []byte) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), string(m))
		return
	}

	pj, err := prettyjson.Format(m)
	if err != nil {
		logErrorCmd(cmd, err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", string(pj))
}

func logUsageCmd(cmd cobra.Command, u string) {
	fmt.Fprintf(cmd.OutOrStdout(), color.YellowString("\nusage: %s\n\n"), u)
}

func logErrorCmd(cmd cobra.Command, err error) {
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", color.RedString(err.Error()))
}

func logOKCmd(cmd cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", color.BlueString("ok"))
}

func logOutputCmd(cmd cobra.Command, out string) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", color.GreenString(out))
	}
}

func logBytesCmd(cmd cobra.Command, data []byte) {
	_, _ = cmd.OutOrStdout().Write(data)
}

func logSavedCmd(cmd cobra.Command, path string) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), color.BlueString("\nsaved: %s\n\n"), path)
	}
}

// readInput takes text from args, then the named file, then stdin.
// A single trailing line break is dropped from file and stdin input.
func readInput(cmd cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	var (
		data []byte
		err  error
	)
	if file != "" {
		data, err = os.ReadFile(file)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", err
	}

	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}
