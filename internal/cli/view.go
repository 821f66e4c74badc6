package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/termplot/pkg/canvas"
	"github.com/matzehuels/termplot/pkg/scene"
)

var (
	viewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	viewErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// viewCommand shows a scene full-screen and re-renders it to fill the
// terminal whenever the window is resized.
func (c *CLI) viewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Show a scene full-screen, stretched to the terminal",
		Long: `Show a scene in the alternate screen. The drawing is stretched to the
window and redrawn on every resize. Press r to reload the file, q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			m := newViewModel(func() (canvas.Canvas, string, error) {
				s, err := scene.Load(path)
				if err != nil {
					return nil, "", err
				}
				root, err := s.Build()
				return root, s.Title, err
			}, c.config.plain())
			if m.err != nil {
				return m.err
			}

			loggerFromContext(cmd.Context()).Debug("starting viewer", "path", path)
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().Bool(keyNoColor, false, "strip colors and styles from the output")
	return cmd
}

// loadFunc builds the canvas tree shown by the viewer and its title.
type loadFunc func() (canvas.Canvas, string, error)

// viewModel is the bubbletea model behind the view command.
type viewModel struct {
	load  loadFunc
	plain bool

	root  canvas.Canvas
	title string

	columns, lines int // terminal size in cells
	output         string
	err            error
}

func newViewModel(load loadFunc, plain bool) viewModel {
	m := viewModel{load: load, plain: plain}
	m.reload()
	return m
}

// reload rebuilds the tree. A failed load leaves nothing to render until
// the next successful one.
func (m *viewModel) reload() {
	m.root, m.title, m.err = m.load()
	if m.err != nil {
		m.root = nil
	}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.reload()
			m.render()
		}
	case tea.WindowSizeMsg:
		m.columns, m.lines = msg.Width, msg.Height
		m.render()
	}
	return m, nil
}

// render redraws the tree to fill the window, leaving one line for help.
// A render error is shown until a later size renders cleanly.
func (m *viewModel) render() {
	if m.root == nil || m.columns == 0 {
		return
	}
	m.err = nil
	w, h := canvas.FitTerminal(m.root, m.columns, max(m.lines-1, 1))
	out, err := canvas.String(m.root, w, h)
	if err != nil {
		m.err = err
		return
	}
	if m.plain {
		out = canvas.Plain(out)
	}
	m.output = out
}

func (m viewModel) View() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(viewErrorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(m.output)
	}
	b.WriteString("\n")

	if m.title != "" {
		b.WriteString(styleTitle.Render(m.title) + viewHelpStyle.Render(" · "))
	}
	b.WriteString(viewHelpStyle.Render("r reload · q quit"))
	return b.String()
}
