package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/transcode"
	"github.com/zoobzio/transcode/cli"
)

func TestConvertCmd(t *testing.T) {
	cases := []struct {
		desc   string
		args   []string
		output string
	}{
		{
			desc:   "text to morse",
			args:   []string{"convert", "--raw", "-m", "text-to-morse", "sos"},
			output: "... --- ...\n",
		},
		{
			desc:   "text to binary with 7-bit groups",
			args:   []string{"convert", "--raw", "-m", "text-to-binary", "--bits", "7", "Hi"},
			output: "1001000 1101001\n",
		},
		{
			desc:   "text to hex upper case",
			args:   []string{"convert", "--raw", "-m", "text-to-hex", "--hex-case", "upper", "«"},
			output: "AB\n",
		},
		{
			desc:   "joined arguments",
			args:   []string{"convert", "--raw", "-m", "text-to-ascii", "H", "i"},
			output: "72 32 105\n",
		},
		{
			desc:   "emoji words preset",
			args:   []string{"convert", "--raw", "-m", "text-to-emoji", "--preset", "words", "good coffee"},
			output: "good ☕\n",
		},
		{
			desc:   "default mode",
			args:   []string{"convert", "--raw", "A"},
			output: "01000001\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			out := executeCommand(t, cli.NewRootCmd(), tc.args...)
			assert.Equal(t, tc.output, out)
		})
	}
}

func TestConvertCmd_Stdin(t *testing.T) {
	out := executeWithInput(t, "01001000 01101001\n", "convert", "--raw", "-m", "binary-to-text")
	assert.Equal(t, "Hi\n", out)
}

func TestConvertCmd_File(t *testing.T) {
	path := writeFile(t, "input.txt", "SGVsbG8=\n")

	out := executeCommand(t, cli.NewRootCmd(), "convert", "--raw", "-m", "base64-to-text", "--file", path)
	assert.Equal(t, "Hello\n", out)
}

func TestConvertCmd_Errors(t *testing.T) {
	cases := []struct {
		desc string
		args []string
		want string
	}{
		{"unknown mode", []string{"convert", "-m", "text-to-rot13", "hi"}, "unknown mode"},
		{"invalid bits", []string{"convert", "-m", "text-to-binary", "--bits", "9", "hi"}, "invalid option"},
		{"unknown format", []string{"convert", "-m", "text-to-hex", "--format", "csv", "hi"}, "invalid option"},
		{"unknown morse code", []string{"convert", "-m", "morse-to-text", "......."}, "unknown code"},
		{"odd hex", []string{"convert", "-m", "hex-to-text", "41 4"}, "odd length"},
		{"missing file", []string{"convert", "-m", "text-to-hex", "--file", "does-not-exist.txt"}, "does-not-exist.txt"},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			out := executeCommand(t, cli.NewRootCmd(), tc.args...)
			assert.Contains(t, out, "error")
			assert.Contains(t, out, tc.want)
		})
	}
}

func TestConvertCmd_JSONFormat(t *testing.T) {
	out := executeCommand(t, cli.NewRootCmd(), "convert", "--raw", "-m", "text-to-hex", "--format", "json", "Hi")

	var r transcode.Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, transcode.TextToHex, r.Mode)
	assert.Equal(t, "Hi", r.Input)
	assert.Equal(t, "48 69", r.Output)
	assert.Equal(t, 2, r.InputLength)
	assert.Equal(t, 5, r.OutputLength)
}

func TestConvertCmd_YAMLFormat(t *testing.T) {
	out := executeCommand(t, cli.NewRootCmd(), "convert", "-m", "text-to-morse", "--format", "yaml", "sos")

	assert.Contains(t, out, "mode: text-to-morse")
	assert.Contains(t, out, "... --- ...")
}

func TestConvertCmd_XMLFormat(t *testing.T) {
	out := executeCommand(t, cli.NewRootCmd(), "convert", "-m", "text-to-ascii", "--format", "xml", "Hi")

	assert.Contains(t, out, "<mode>text-to-ascii</mode>")
	assert.Contains(t, out, "<output>72 105</output>")
}

func TestConvertCmd_MsgpackFormat(t *testing.T) {
	out := executeCommand(t, cli.NewRootCmd(), "convert", "-m", "text-to-base64", "--format", "msgpack", "Hello")

	var r transcode.Result
	require.NoError(t, msgpack.Unmarshal([]byte(out), &r))
	assert.Equal(t, "SGVsbG8=", r.Output)
}

func TestConvertCmd_Save(t *testing.T) {
	dir := t.TempDir()

	out := executeCommand(t, cli.NewRootCmd(), "convert", "--raw", "-m", "text-to-morse", "--save", dir, "sos")
	path := strings.TrimSpace(out)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "converted_morse_"), "unexpected file name %s", path)
	assert.True(t, strings.HasSuffix(path, ".txt"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "... --- ...", string(data))
}

func TestConvertCmd_ConfigDefaults(t *testing.T) {
	path := writeFile(t, "transcode.yaml", "mode: text-to-hex\nhex_case: upper\nraw: true\n")

	out := executeCommand(t, cli.NewRootCmd(), "convert", "--config", path, "«»")
	assert.Equal(t, "AB BB\n", out)
}

func TestConvertCmd_FlagOverridesConfig(t *testing.T) {
	path := writeFile(t, "transcode.yaml", "mode: text-to-hex\nhex_case: upper\n")

	out := executeCommand(t, cli.NewRootCmd(), "convert", "--raw", "--config", path, "--hex-case", "lower", "«")
	assert.Equal(t, "ab\n", out)
}
