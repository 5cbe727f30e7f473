package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintPlan_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf)

	err := p.PrintPlan(Plan{Command: "/usr/bin/ls", Args: []string{"-l", "-A", "--ignore=*.o", "my dir"}})

	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/ls -l -A '--ignore=*.o' 'my dir'\n", buf.String())
}

func TestPrintPlan_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithJSON(true)

	err := p.PrintPlan(Plan{Command: "ls", Level: "hide-ignored", Mode: "patterns"})
	require.NoError(t, err)

	var got Plan
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "ls", got.Command)
	assert.Equal(t, []string{}, got.Args)
	assert.Equal(t, []string{}, got.Directories)
	assert.Equal(t, "hide-ignored", got.Level)
}

func TestShellQuote(t *testing.T) {
	tests := map[string]string{
		"":             "''",
		"-la":          "-la",
		"--ignore=a.b": "--ignore=a.b",
		"it's":         `'it'\''s'`,
		`--ignore=x\*`: `'--ignore=x\*'`,
		"two words":    "'two words'",
	}
	for in, want := range tests {
		assert.Equal(t, want, ShellQuote(in), in)
	}
}
