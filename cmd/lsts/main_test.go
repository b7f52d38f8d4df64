package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lsts/archive"
	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/format"
	"github.com/arloliu/lsts/summary"
)

const peakCSV = `day,users
2024-03-04,0
2024-03-05,10
2024-03-06,0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_Text(t *testing.T) {
	input := writeFile(t, "peak.csv", peakCSV)
	cfg := writeFile(t, "lsts.yaml", "smoothing: none\nmetric: visitors\n")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-input", input, "-config", cfg, "-date-column", "day", "-value-column", "users"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	require.True(t, strings.HasPrefix(out, summary.PartialTrendTitle+"\n"))
	require.Contains(t, out, "  [1.00] The visitors from Mar 4, 2024 to Mar 5, 2024 increased by 10.\n")
	require.Contains(t, out, "  paragraph [1.00] The visitors increased by 10 from Mar 4, 2024 to Mar 5, 2024, decreased by 10 from Mar 5, 2024 to Mar 6, 2024.\n")
	require.Empty(t, stderr.String())
}

func TestRun_ArchiveAndRestore(t *testing.T) {
	input := writeFile(t, "peak.csv", peakCSV)
	out := filepath.Join(t.TempDir(), "peak.lsts")

	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-input", input, "-date-column", "day", "-value-column", "users",
		"-archive", out, "-compression", "s2", "-json",
	}, &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stderr.String(), "archived 1 groups")

	var printed []summary.Group
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &printed))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	h, err := archive.ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionS2, h.Compression)

	stored, err := archive.Decode(data)
	require.NoError(t, err)
	require.Equal(t, printed, stored)

	stdout.Reset()
	stderr.Reset()
	require.NoError(t, run([]string{"-restore", out, "-json", "-verbose"}, &stdout, &stderr))

	var restored []summary.Group
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &restored))
	require.Equal(t, stored, restored)
	require.Contains(t, stderr.String(), "S2:")
}

func TestRun_Verbose(t *testing.T) {
	input := writeFile(t, "peak.csv", peakCSV)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-input", input, "-date-column", "day", "-verbose"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "loaded 3 points")
	require.Contains(t, stderr.String(), "app=lsts")
}

func TestRun_Errors(t *testing.T) {
	input := writeFile(t, "peak.csv", peakCSV)
	var stdout, stderr bytes.Buffer

	require.Error(t, run(nil, &stdout, &stderr))
	require.Error(t, run([]string{"-unknown"}, &stdout, &stderr))

	err := run([]string{"-input", input}, &stdout, &stderr)
	require.ErrorIs(t, err, errs.ErrMissingColumn)

	err = run([]string{"-input", input, "-date-column", "day", "-archive", filepath.Join(t.TempDir(), "x.lsts"), "-compression", "brotli"}, &stdout, &stderr)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	err = run([]string{"-restore", input}, &stdout, &stderr)
	require.ErrorIs(t, err, errs.ErrInvalidArchive)

	bad := writeFile(t, "bad.yaml", "eps: nope\n")
	err = run([]string{"-input", input, "-date-column", "day", "-config", bad}, &stdout, &stderr)
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}
