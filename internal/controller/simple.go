package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "codectx.dev/pkg/codectx/internal/model"
)

const contextSeparator = "────"

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayContext prints one context table per report, or all reports as a
// YAML document.
func (s *SimpleUI) DisplayContext(ctx context.Context, reports []m.ContextReport, options DisplayOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if options.Format == FormatYAML {
		return s.displayYAML(reports)
	}

	for i, report := range reports {
		if i > 0 {
			s.printf("\n")
		}

		s.printf("%s:%d\n", report.Path, report.Line)

		if len(report.Entries) == 0 {
			s.printf("  (top level)\n")
			continue
		}

		s.printf("%s", renderContextTable(report.Entries))
	}

	return nil
}

func (s *SimpleUI) displayYAML(reports []m.ContextReport) error {
	encoder := yaml.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(reports); err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	return encoder.Close()
}

func renderContextTable(entries []m.ContextEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Line", "Opener", "Context"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, entry := range entries {
		table.Append([]string{fmt.Sprintf("%d", entry.LineNumber), string(entry.Opener), entry.Text})
	}

	table.Render()

	return tableBuffer.String()
}

// View prints the pinned context followed by the document from the top
// visible line onwards.
func (s *SimpleUI) View(ctx context.Context, session ViewSession, _ ViewOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contextLines := session.Context()
	for _, line := range contextLines {
		s.printf("%s\n", line)
	}

	if len(contextLines) > 0 {
		s.printf("%s\n", contextSeparator)
	}

	lines := session.Lines()
	start := min(max(session.TopVisible()-1, 0), len(lines))

	s.printf("%s", strings.Join(lines[start:], "\n"))

	if start < len(lines) {
		s.printf("\n")
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
