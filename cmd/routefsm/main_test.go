package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/routefsm/internal/routes"
)

const testDump = `Gateway of last resort is 10.1.1.1 to network 0.0.0.0

S*    0.0.0.0/0 [1/0] via 10.1.1.1
C   10.0.0.0/24 is directly connected, GigabitEthernet0/1
O   10.1.0.0/16 [110/20] via 10.0.0.2, 00:05:03, GigabitEthernet0/1
O   10.1.0.0/16 [110/20] via 10.0.0.3, 00:05:03, GigabitEthernet0/2
`

func writeDump(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "router1.txt")
	require.NoError(t, os.WriteFile(path, []byte(testDump), 0o600))
	return path
}

func TestReadInput_File(t *testing.T) {
	path := writeDump(t)

	content, source, err := readInput([]string{path})
	require.NoError(t, err)
	assert.Equal(t, testDump, content)
	assert.Equal(t, path, source)
}

func TestReadInput_MissingFile(t *testing.T) {
	_, _, err := readInput([]string{filepath.Join(t.TempDir(), "absent.txt")})
	require.Error(t, err)
}

func TestRunSummarize(t *testing.T) {
	path := writeDump(t)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runSummarize(cmd, []string{path}))

	out := buf.String()
	assert.Contains(t, out, "Route Summary")
	assert.Contains(t, out, "The following file was analyzed: "+path)
	assert.Contains(t, out, "The number of connected routes is: 1")
	assert.Contains(t, out, "The number of OSPF routes is: 1")
	assert.Contains(t, out, "The number of static routes is: 1")
	assert.Contains(t, out, "The number of EIGRP routes is: 0")
}

func TestRunParse_JSON(t *testing.T) {
	path := writeDump(t)

	parseOutput = "json"
	t.Cleanup(func() { parseOutput = "table" })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runParse(cmd, []string{path}))

	var parsed []routes.Route
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed, 4)
	assert.Equal(t, "S", parsed[0].Protocol)
	assert.Equal(t, "10.0.0.0", parsed[1].Network)
}

func TestRunParse_Table(t *testing.T) {
	path := writeDump(t)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runParse(cmd, []string{path}))

	out := buf.String()
	assert.Contains(t, out, "PROTO")
	assert.Contains(t, out, "GigabitEthernet0/1")
}

func TestRunParse_UnknownFormat(t *testing.T) {
	path := writeDump(t)

	parseOutput = "xml"
	t.Cleanup(func() { parseOutput = "table" })

	cmd := &cobra.Command{}
	cmd.SetOut(new(bytes.Buffer))

	require.Error(t, runParse(cmd, []string{path}))
}

func TestRunSummarize_CustomTemplate(t *testing.T) {
	path := writeDump(t)

	tmplPath := filepath.Join(t.TempDir(), "custom.template")
	custom := "Value PROTOCOL (\\w)\nValue Required NETWORK (\\d+\\.\\d+\\.\\d+\\.\\d+)\nValue MASK (\\d{1,2})\n\nStart\n  ^${PROTOCOL}\\*?\\s+${NETWORK}\\/${MASK} -> Record\n"
	require.NoError(t, os.WriteFile(tmplPath, []byte(custom), 0o600))

	templateFile = tmplPath
	t.Cleanup(func() { templateFile = "" })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runSummarize(cmd, []string{path}))
	assert.Contains(t, buf.String(), "Route Summary")
}
