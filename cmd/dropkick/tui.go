package main

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hayeah/dropkick/internal/browser"
)

// keyMap declares the picker bindings. Directional keys are interpreted per
// mode by the browser (cursor vs. scroll, collapse vs. back).
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Back   key.Binding
	Export key.Binding
	Quit   key.Binding
}

var defaultKeys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
	Right:  key.NewBinding(key.WithKeys("right", "l", "v"), key.WithHelp("→/l", "expand/view")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// styles holds all the lipgloss styles.
type styles struct {
	title  lipgloss.Style
	cursor lipgloss.Style
	dir    lipgloss.Style
	muted  lipgloss.Style
	help   lipgloss.Style
	err    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		cursor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")),
		dir:    lipgloss.NewStyle().Bold(true),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		help:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

const chromeLines = 2 // title + help

// uiModel is the thin bubbletea frontend over the browser state machine.
type uiModel struct {
	br     *browser.Browser
	root   string
	keys   keyMap
	styles styles
	width  int
	height int
	err    error
}

func newUIModel(br *browser.Browser, root string) uiModel {
	return uiModel{
		br:     br,
		root:   root,
		keys:   defaultKeys,
		styles: newStyles(),
	}
}

func (m uiModel) Init() tea.Cmd {
	return nil
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.br.SetViewportHeight(msg.Height - chromeLines)

	case tea.KeyMsg:
		m.err = nil
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.br.Apply(browser.ActionQuit)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Export):
			m.br.Apply(browser.ActionExport)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.err = m.br.Apply(browser.ActionUp)
		case key.Matches(msg, m.keys.Down):
			m.err = m.br.Apply(browser.ActionDown)
		case key.Matches(msg, m.keys.Left):
			m.err = m.br.Apply(browser.ActionLeft)
		case key.Matches(msg, m.keys.Right):
			m.err = m.br.Apply(browser.ActionRight)
		case key.Matches(msg, m.keys.Toggle):
			m.err = m.br.Apply(browser.ActionToggle)
		case key.Matches(msg, m.keys.Back):
			m.err = m.br.Apply(browser.ActionBack)
		}
	}

	return m, nil
}

func (m uiModel) View() string {
	if m.height == 0 {
		return "Initializing..."
	}

	frame := m.br.Frame()
	switch frame.Kind {
	case browser.FrameFile:
		return m.viewFile(frame)
	default:
		return m.viewTree(frame)
	}
}

func (m uiModel) viewTree(frame browser.Frame) string {
	var b strings.Builder

	title := fmt.Sprintf(" Templates: %s (%d selected) ", m.root, frame.SelectedCount)
	b.WriteString(m.styles.title.Render(title) + "\n")

	content := m.height - chromeLines
	start := treeWindowStart(frame.Cursor, content, len(frame.Rows))

	if len(frame.Rows) == 0 {
		b.WriteString(m.styles.muted.Render("No templates found.") + "\n")
	}
	for i := start; i < len(frame.Rows) && i < start+content; i++ {
		row := frame.Rows[i]
		label := row.Label
		if row.IsDir {
			marker := "▸ "
			if row.Open {
				marker = "▾ "
			}
			label = marker + m.styles.dir.Render(label)
		}
		line := strings.Repeat("  ", row.Depth) + label
		if i == frame.Cursor {
			line = m.styles.cursor.Render(">> " + strings.Repeat("  ", row.Depth) + row.Label)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(m.helpLine("↑/k: Up | ↓/j: Down | ←/h: Collapse | →/l: Expand/View | Space: Toggle | e: Export | q: Quit"))
	return b.String()
}

func (m uiModel) viewFile(frame browser.Frame) string {
	var b strings.Builder

	title := fmt.Sprintf(" Viewing: %s (%s - line %d/%d) ",
		path.Base(frame.Path), frame.Position, frame.Scroll+1, max(frame.TotalLines, 1))
	b.WriteString(m.styles.title.Render(title) + "\n")

	for _, line := range frame.Lines {
		b.WriteString(m.renderLine(line) + "\n")
	}

	b.WriteString(m.helpLine("↑/k: Scroll Up | ↓/j: Scroll Down | ←/h/esc: Back to Tree | e: Export | q: Quit"))
	return b.String()
}

func (m uiModel) renderLine(line browser.Line) string {
	var parts []string
	for _, span := range line {
		switch {
		case span.Muted:
			parts = append(parts, m.styles.muted.Render(span.Text))
		case span.Color != "":
			parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(span.Color)).Render(span.Text))
		default:
			parts = append(parts, span.Text)
		}
	}
	return strings.Join(parts, "")
}

func (m uiModel) helpLine(text string) string {
	if m.err != nil {
		return m.styles.err.Render("Error: " + m.err.Error())
	}
	return m.styles.help.Render(text)
}

// treeWindowStart keeps the cursor inside the painted window.
func treeWindowStart(cursor, height, total int) int {
	if height <= 0 || total <= height {
		return 0
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start > total-height {
		start = total - height
	}
	return start
}
