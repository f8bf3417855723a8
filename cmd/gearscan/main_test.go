package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gearscan/config"
	"github.com/katalvlaran/gearscan/report"
	"github.com/katalvlaran/gearscan/schematic"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const classic = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// writeInput stores content under dir/name and returns the path.
func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

//----------------------------------------------------------------------------//
// analyze
//----------------------------------------------------------------------------//

func TestAnalyze_Text(t *testing.T) {
	path := writeInput(t, t.TempDir(), "day3.txt", classic)

	out, err := execute(t, "", "analyze", "--color", "never", path)
	require.NoError(t, err)
	want := path + "\n" +
		"  part sum:       4361  (8 of 10 numbers)\n" +
		"  gear ratio sum: 467835  (2 gears)\n"
	assert.Equal(t, want, out)
}

// TestAnalyze_JSONOrder runs several files concurrently and expects results
// in argument order.
func TestAnalyze_JSONOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeInput(t, dir, "a.txt", classic),
		writeInput(t, dir, "b.txt", "467..114.."),
		writeInput(t, dir, "c.txt", "...331..3\n...&401..\n.2%..*..."),
		writeInput(t, dir, "d.txt", "1*2\n...\n3#4"),
	}

	out, err := execute(t, "", append([]string{"analyze", "-o", "json", "-w", "2"}, paths...)...)
	require.NoError(t, err)

	var got []result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)
	for i, p := range paths {
		assert.Equal(t, p, got[i].Input)
	}
	assert.Equal(t, report.Report{PartSum: 4361, GearRatioSum: 467835, Tokens: 10, Parts: 8, Gears: 2}, got[0].Report)
	assert.Equal(t, 0, got[1].PartSum)
	assert.Equal(t, 734, got[2].PartSum)
	assert.Equal(t, 0, got[2].GearRatioSum)
	assert.Equal(t, 2, got[3].GearRatioSum)
}

func TestAnalyze_YAMLStdin(t *testing.T) {
	out, err := execute(t, classic, "analyze", "-o", "yaml")
	require.NoError(t, err)

	var got []result
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, stdinName, got[0].Input)
	assert.Equal(t, 467835, got[0].GearRatioSum)
	assert.Contains(t, out, "part_sum: 4361")
}

// TestAnalyze_ConfigFile applies the file, then lets flags override it.
func TestAnalyze_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInput(t, dir, "gearscan.yaml", "output:\n  format: json\n  color: never\nworkers: 1\n")

	out, err := execute(t, classic, "analyze", "-c", cfg)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "want JSON, got %q", out)

	out, err = execute(t, classic, "analyze", "-c", cfg, "-o", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, stdinName+"\n"))
}

func TestAnalyze_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeInput(t, dir, "good.txt", classic)
	ragged := writeInput(t, dir, "ragged.txt", "12.\n.*\n")
	badCfg := writeInput(t, dir, "bad.yaml", "workers: -1\n")

	cases := []struct {
		name  string
		stdin string
		args  []string
		err   error
		msg   string
	}{
		{"EmptyStdin", "", []string{"analyze"}, schematic.ErrEmptyInput, stdinName},
		{"Ragged", "", []string{"analyze", good, ragged}, schematic.ErrRaggedGrid, ragged},
		{"Missing", "", []string{"analyze", filepath.Join(dir, "nope.txt")}, os.ErrNotExist, "nope.txt"},
		{"BadFormat", classic, []string{"analyze", "-o", "csv"}, config.ErrInvalidConfig, "csv"},
		{"BadWorkers", classic, []string{"analyze", "-w", "0"}, config.ErrInvalidConfig, "workers"},
		{"BadColor", classic, []string{"analyze", "--color", "maybe"}, config.ErrInvalidConfig, "maybe"},
		{"BadConfig", classic, []string{"analyze", "-c", badCfg}, config.ErrInvalidConfig, "workers"},
		{"StdinTwice", classic, []string{"analyze", "-", "-"}, errStdinTwice, "once"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.stdin, tc.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Empty(t, out, "no partial report")
		})
	}
}

//----------------------------------------------------------------------------//
// render and version
//----------------------------------------------------------------------------//

func TestRender_Plain(t *testing.T) {
	path := writeInput(t, t.TempDir(), "day3.txt", classic)

	out, err := execute(t, "", "render", "--color", "never", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, strings.TrimSuffix(classic, "\n")+"\n\n"+path+"\n"))
	assert.Contains(t, out, "gear ratio sum: 467835")
}

func TestRender_Colored(t *testing.T) {
	out, err := execute(t, "1*2\n...\n3#4\n", "render", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.True(t, strings.HasPrefix(ansi.Strip(out), "1*2\n...\n3#4\n\n"+stdinName+"\n"))
}

func TestRender_Errors(t *testing.T) {
	_, err := execute(t, "", "render")
	assert.ErrorIs(t, err, schematic.ErrEmptyInput)

	_, err = execute(t, "", "render", "a.txt", "b.txt")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "gearscan version dev\n", out)
}
