package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String(), errOut.String()
}

func TestNormalizeCommand(t *testing.T) {
	out, _ := run(t, newNormalizeCmd(), "", "price", "$1,234.50")
	assert.Equal(t, "number\t1234.5\tparsed\n", out)

	out, _ = run(t, newNormalizeCmd(), "", "time", "noon")
	assert.Equal(t, "minutes\tnoon\tunparsed\n", out)
}

func TestGradeCommand(t *testing.T) {
	out, _ := run(t, newGradeCmd(), "", "time", "3pm", "15:00")
	assert.Equal(t, "correct\tmatch\t15:00\t15:00\n", out)

	out, _ = run(t, newGradeCmd(), "", "--strict", "time", "later", "12am")
	assert.True(t, strings.HasPrefix(out, "wrong\tanswer_unparsed\t"))
}

func TestBatchCommand(t *testing.T) {
	out, summary := run(t, newBatchCmd(), "mixed\tab 12\nphone\t1 2\t12\n")
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, `"AB12"`)
	assert.Equal(t, "records=2 normalized=1 graded=1 correct=1 invalid=0\n", summary)
}

func TestCategoriesCommand(t *testing.T) {
	out, _ := run(t, newCategoriesCmd(), "")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Date\ticon--fluent--calendar-date-24-regular\tbg-blue", lines[0])
}
