package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codectx.dev/pkg/codectx/internal/controller"
	"codectx.dev/pkg/codectx/internal/domain"
	domainmocks "codectx.dev/pkg/codectx/internal/domain/mocks"
	m "codectx.dev/pkg/codectx/internal/model"
)

func runTestContextCmd(t *testing.T, mockWorkflow domain.Workflow, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newContextCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	logFile := filepath.Join(t.TempDir(), "codectx.log")
	cmd.SetArgs(append([]string{"context", "--log-file", logFile}, args...))

	return cmd.Execute()
}

func TestContextCmd_PassesLinesInOrder(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Context", mock.Anything, mock.MatchedBy(func(args domain.ContextArgs) bool {
		return assert.ObjectsAreEqual([]m.Path{"a.py", "b.py"}, args.Paths) &&
			assert.ObjectsAreEqual([]int{120, 80, 7}, args.Lines) &&
			args.MaxDepth == defaultMaxLines &&
			args.Threads == 1 &&
			args.Format == controller.FormatText
	})).Return(nil)

	err := runTestContextCmd(t, mockWorkflow, "a.py", "b.py", "--line", "120", "-l", "80", "--line", "7")
	require.NoError(t, err)
}

func TestContextCmd_FormatAndParallel(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Context", mock.Anything, mock.MatchedBy(func(args domain.ContextArgs) bool {
		return args.Format == controller.FormatYAML && args.Threads == 4
	})).Return(nil)

	err := runTestContextCmd(t, mockWorkflow, "a.py", "--line", "3", "--format", "yaml", "-p", "4")
	require.NoError(t, err)
}

func TestContextCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing line", []string{"a.py"}},
		{"missing file", []string{"--line", "3"}},
		{"unknown format", []string{"a.py", "--line", "3", "--format", "json"}},
		{"non numeric line", []string{"a.py", "--line", "three"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)

			require.Error(t, runTestContextCmd(t, mockWorkflow, tt.args...))
		})
	}
}
