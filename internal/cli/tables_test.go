package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTablesCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewTablesCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestTablesCommand(t *testing.T) {
	for _, table := range []string{"exp", "log", "inv"} {
		t.Run(table, func(t *testing.T) {
			out, err := runTablesCommand(t, "--table", table)
			require.NoError(t, err)

			// 1 header row + 16 value rows.
			assert.Equal(t, 17, bytes.Count([]byte(out), []byte("\n")))
		})
	}

	t.Run("exp starts at the identity", func(t *testing.T) {
		out, err := runTablesCommand(t, "--table", "exp")
		require.NoError(t, err)
		assert.Contains(t, out, "0_   01 02 04 08")
	})

	t.Run("undefined entries render as dashes", func(t *testing.T) {
		out, err := runTablesCommand(t, "--table", "inv")
		require.NoError(t, err)
		assert.Contains(t, out, "0_   --")
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := runTablesCommand(t, "--table", "nope")
		assert.Error(t, err)
	})
}
