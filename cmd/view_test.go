package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codectx.dev/pkg/codectx/internal/domain"
	domainmocks "codectx.dev/pkg/codectx/internal/domain/mocks"
	m "codectx.dev/pkg/codectx/internal/model"
)

func newTestViewCmd(t *testing.T, mockWorkflow domain.Workflow, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	logFile := filepath.Join(t.TempDir(), "codectx.log")
	cmd.SetArgs(append([]string{"view", "--log-file", logFile}, args...))

	return cmd.Execute()
}

func TestViewCmd_DefaultsFromConfig(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Path == m.Path("app.py") &&
			args.Line == 1 &&
			args.MaxDepth == defaultMaxLines &&
			len(args.Openers) == 12 &&
			!args.Watch &&
			args.Highlight &&
			args.Style == defaultStyle &&
			args.Background == defaultBgColor &&
			args.Foreground == defaultFgColor
	})).Return(nil)

	require.NoError(t, newTestViewCmd(t, mockWorkflow, "app.py"))
}

func TestViewCmd_FlagsArePassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Line == 42 && args.MaxDepth == 3 && args.Watch && args.Style == "dracula"
	})).Return(nil)

	err := newTestViewCmd(t, mockWorkflow, "app.py", "--line", "42", "-n", "3", "--watch", "--style", "dracula")
	require.NoError(t, err)
}

func TestViewCmd_RequiresExactlyOneFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	require.Error(t, newTestViewCmd(t, mockWorkflow))
	require.Error(t, newTestViewCmd(t, mockWorkflow, "a.py", "b.py"))
}

func TestViewCmd_WorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("View", mock.Anything, mock.Anything).Return(domain.ErrNoLines)

	err := newTestViewCmd(t, mockWorkflow, "app.py")
	require.ErrorIs(t, err, domain.ErrNoLines)
}
