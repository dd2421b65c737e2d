package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "codectx.dev/pkg/codectx/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	return cmd, out
}

func sampleReports() []m.ContextReport {
	return []m.ContextReport{
		{
			Path: "sample.py",
			Line: 4,
			Entries: []m.ContextEntry{
				{LineNumber: 1, Indent: 0, Text: "def f():", Opener: m.KeywordDef},
				{LineNumber: 2, Indent: 4, Text: "    if x:", Opener: m.KeywordIf},
			},
		},
		{Path: "sample.py", Line: 1},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatText},
		{input: "text", want: FormatText},
		{input: " YAML ", want: FormatYAML},
		{input: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimpleUI_DisplayContext_Text(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	err := ui.DisplayContext(context.Background(), sampleReports(), DisplayOptions{Format: FormatText})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "sample.py:4")
	assert.Contains(t, output, "LINE")
	assert.Contains(t, output, "def f():")
	assert.Contains(t, output, "if x:")
	assert.Contains(t, output, "sample.py:1\n  (top level)")
}

func TestSimpleUI_DisplayContext_YAML(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	reports := sampleReports()
	err := ui.DisplayContext(context.Background(), reports, DisplayOptions{Format: FormatYAML})
	require.NoError(t, err)

	var decoded []m.ContextReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, reports[0].Entries, decoded[0].Entries)
	assert.Empty(t, decoded[1].Entries)
	assert.Contains(t, out.String(), "opener: def")
}

func TestSimpleUI_DisplayContext_Canceled(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayContext(ctx, sampleReports(), DisplayOptions{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestSimpleUI_View(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	session := newFakeSession(5, "def f():")
	session.top = 3

	require.NoError(t, ui.View(context.Background(), session, ViewOptions{}))
	assert.Equal(t, "def f():\n"+contextSeparator+"\nline 3\nline 4\nline 5\n", out.String())
}

func TestSimpleUI_View_TopLevel(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	session := newFakeSession(2)

	require.NoError(t, ui.View(context.Background(), session, ViewOptions{}))
	assert.Equal(t, "line 1\nline 2\n", out.String())
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCommand()

	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
}

func TestIsTTY_Nil(t *testing.T) {
	assert.False(t, IsTTY(nil))
}
