package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "codectx.dev/pkg/codectx/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	tabWidth      = 4
	ellipsis      = "…"
)

// TUI implements UI using Bubble Tea for interactive display. Non
// interactive output is delegated to the embedded SimpleUI.
type TUI struct {
	*SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), output: cmd.OutOrStdout()}
}

// View opens an interactive pager over the session with the enclosing
// context pinned above the text.
func (t *TUI) View(ctx context.Context, session ViewSession, options ViewOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newViewModel(ctx, session, options)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := program.Run()
	if err != nil {
		return err
	}

	if vm, ok := final.(viewModel); ok && vm.err != nil {
		return vm.err
	}

	return nil
}

type viewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Toggle   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newViewKeyMap() viewKeyMap {
	return viewKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "u", "b"), key.WithHelp("u", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "d", " ", "f"), key.WithHelp("d", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Toggle:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "context")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k viewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Help, k.Quit}
}

func (k viewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom},
		{k.Toggle, k.Help, k.Quit},
	}
}

type documentChangedMsg struct {
	path m.Path
}

type watchClosedMsg struct{}

func waitForChange(changes <-chan m.Path) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-changes
		if !ok {
			return watchClosedMsg{}
		}

		return documentChangedMsg{path: path}
	}
}

// viewModel is the Bubble Tea model of the document pager.
type viewModel struct {
	ctx     context.Context
	session ViewSession
	options ViewOptions

	keys     viewKeyMap
	help     help.Model
	viewport viewport.Model

	pane   lipgloss.Style
	status lipgloss.Style

	language    string
	width       int
	height      int
	showContext bool
	watching    bool
	err         error
}

func newViewModel(ctx context.Context, session ViewSession, options ViewOptions) viewModel {
	pane := lipgloss.NewStyle()
	if options.Background != "" {
		pane = pane.Background(lipgloss.Color(options.Background))
	}

	if options.Foreground != "" {
		pane = pane.Foreground(lipgloss.Color(options.Foreground))
	}

	vm := viewModel{
		ctx:         ctx,
		session:     session,
		options:     options,
		keys:        newViewKeyMap(),
		help:        help.New(),
		viewport:    viewport.New(defaultWidth, defaultHeight),
		pane:        pane,
		status:      lipgloss.NewStyle().Reverse(true),
		showContext: true,
		watching:    options.Changes != nil,
	}

	if options.Highlighter != nil {
		vm.language = options.Highlighter.Language(session.Path(), []byte(strings.Join(session.Lines(), "\n")))
	}

	vm.viewport.SetContent(vm.content())
	vm = vm.resize(defaultWidth, defaultHeight)
	vm.viewport.SetYOffset(max(session.TopVisible()-1, 0))

	return vm.sync()
}

func (vm viewModel) Init() tea.Cmd {
	if vm.watching {
		return waitForChange(vm.options.Changes)
	}

	return nil
}

func (vm viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		vm = vm.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		var quit bool

		vm, quit = vm.handleKeyPress(msg)
		if quit {
			return vm, tea.Quit
		}

	case tea.MouseMsg:
		vm.viewport, cmd = vm.viewport.Update(msg)

	case documentChangedMsg:
		vm = vm.reload()
		cmd = waitForChange(vm.options.Changes)

	case watchClosedMsg:
		vm.watching = false
	}

	vm = vm.sync()

	return vm, cmd
}

//nolint:cyclop // Key handling requires multiple cases for UI navigation
func (vm viewModel) handleKeyPress(msg tea.KeyMsg) (viewModel, bool) {
	offset := vm.viewport.YOffset

	switch {
	case key.Matches(msg, vm.keys.Quit):
		return vm, true
	case key.Matches(msg, vm.keys.Down):
		vm.viewport.SetYOffset(offset + 1)
	case key.Matches(msg, vm.keys.Up):
		vm.viewport.SetYOffset(offset - 1)
	case key.Matches(msg, vm.keys.PageDown):
		vm.viewport.SetYOffset(offset + vm.viewport.Height)
	case key.Matches(msg, vm.keys.PageUp):
		vm.viewport.SetYOffset(offset - vm.viewport.Height)
	case key.Matches(msg, vm.keys.Top):
		vm.viewport.GotoTop()
	case key.Matches(msg, vm.keys.Bottom):
		vm.viewport.GotoBottom()
	case key.Matches(msg, vm.keys.Toggle):
		vm.showContext = !vm.showContext
	case key.Matches(msg, vm.keys.Help):
		vm.help.ShowAll = !vm.help.ShowAll
	}

	return vm, false
}

// sync moves the session to the first visible line and re-layouts the pane,
// whose height follows the context depth.
func (vm viewModel) sync() viewModel {
	if _, err := vm.session.Sync(vm.viewport.YOffset + 1); err != nil {
		vm.err = err
	}

	return vm.layout()
}

func (vm viewModel) reload() viewModel {
	changed, err := vm.session.Reload(vm.ctx)
	if err != nil {
		vm.err = err
		return vm
	}

	if !changed {
		return vm
	}

	offset := vm.viewport.YOffset
	vm.viewport.SetContent(vm.content())
	vm.viewport.SetYOffset(offset)
	vm.err = nil

	return vm
}

func (vm viewModel) content() string {
	lines := vm.session.Lines()
	if vm.options.Highlighter != nil {
		lines = vm.options.Highlighter.Highlight(vm.session.Path(), lines)
	}

	return strings.Join(lines, "\n")
}

func (vm viewModel) resize(width, height int) viewModel {
	if width > 0 {
		vm.width = width
	}

	if height > 0 {
		vm.height = height
	}

	vm.help.Width = vm.width

	return vm.layout()
}

func (vm viewModel) layout() viewModel {
	vm.viewport.Width = vm.width
	vm.viewport.Height = max(vm.height-vm.paneHeight()-vm.footerHeight(), 1)

	return vm
}

func (vm viewModel) paneLines() []string {
	if !vm.showContext {
		return nil
	}

	return vm.session.Context()
}

func (vm viewModel) paneHeight() int {
	return len(vm.paneLines())
}

func (vm viewModel) footerHeight() int {
	return 1 + lipgloss.Height(vm.help.View(vm.keys))
}

func (vm viewModel) View() string {
	var b strings.Builder

	for _, line := range vm.paneLines() {
		b.WriteString(vm.pane.Width(vm.width).Render(fitLine(line, vm.width)))
		b.WriteString("\n")
	}

	b.WriteString(vm.viewport.View())
	b.WriteString("\n")
	b.WriteString(vm.status.Width(vm.width).Render(fitLine(vm.statusLine(), vm.width)))
	b.WriteString("\n")
	b.WriteString(vm.help.View(vm.keys))

	return b.String()
}

func (vm viewModel) statusLine() string {
	parts := []string{string(vm.session.Path())}
	if vm.language != "" {
		parts = append(parts, vm.language)
	}

	parts = append(parts, fmt.Sprintf("line %d/%d", vm.session.TopVisible(), len(vm.session.Lines())))

	if vm.watching {
		parts = append(parts, "watching")
	}

	if vm.err != nil {
		parts = append(parts, "error: "+vm.err.Error())
	}

	return strings.Join(parts, "  ")
}

// fitLine expands tabs and truncates line to width display cells.
func fitLine(line string, width int) string {
	line = expandTabs(line)
	if width <= 0 {
		return line
	}

	return runewidth.Truncate(line, width, ellipsis)
}

func expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}

	var b strings.Builder

	column := 0

	for _, r := range line {
		if r == '\t' {
			pad := tabWidth - column%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			column += pad

			continue
		}

		b.WriteRune(r)
		column += runewidth.RuneWidth(r)
	}

	return b.String()
}
