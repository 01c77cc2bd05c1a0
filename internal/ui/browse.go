package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"warnkit/internal/warn"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	codeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type browseModel struct {
	records []warn.Record

	input textinput.Model
	vp    viewport.Model

	// kindIdx 0 means "all kinds"; otherwise warn.Kinds()[kindIdx-1].
	kindIdx   int
	filtering bool
	matched   int

	width  int
	height int
	ready  bool
}

// NewBrowseModel returns a Bubble Tea model that lets the user scroll a
// warning collection, narrow it by message substring and cycle through kind
// filters.
func NewBrowseModel(recs []warn.Record) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "message substring"
	ti.Prompt = "/ "
	ti.CharLimit = 120
	return &browseModel{records: recs, input: ti, matched: len(recs)}
}

func (m *browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, max(msg.Height-4, 1))
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = max(msg.Height-4, 1)
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.refresh()
			return m, cmd
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.filtering = true
			return m, m.input.Focus()
		case "tab":
			m.kindIdx = (m.kindIdx + 1) % (len(warn.Kinds()) + 1)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *browseModel) View() string {
	if !m.ready {
		return "loading..."
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.headerLine()))
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(m.vp.View())
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("q quit · / filter · tab cycle kind · ↑/↓ scroll"))
	return b.String()
}

func (m *browseModel) headerLine() string {
	kind := "all kinds"
	if m.kindIdx > 0 {
		kind = warn.Kinds()[m.kindIdx-1].Name()
	}
	return fmt.Sprintf("warnings · %s · %d/%d", kind, m.matched, len(m.records))
}

// refresh re-applies the active filters and rebuilds the viewport content.
func (m *browseModel) refresh() {
	if !m.ready {
		return
	}
	needle := strings.ToLower(m.input.Value())
	var kind warn.Kind
	if m.kindIdx > 0 {
		kind = warn.Kinds()[m.kindIdx-1]
	}

	var lines []string
	m.matched = 0
	for _, rec := range m.records {
		if kind != warn.KindInvalid && !rec.Kind.Is(kind) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(rec.Message), needle) {
			continue
		}
		m.matched++
		lines = append(lines, m.renderLine(rec))
	}
	if len(lines) == 0 {
		lines = []string{helpStyle.Render("no warnings match")}
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
}

func (m *browseModel) renderLine(rec warn.Record) string {
	msg := strings.ReplaceAll(rec.Message, "\n", " ")
	plainWidth := len(rec.Code.ID()) + len(rec.Kind.Name()) + 2
	msg = runewidth.Truncate(msg, max(m.width-plainWidth-2, 8), "…")
	return fmt.Sprintf("%s %s %s",
		codeStyle.Render(rec.Code.ID()),
		kindStyle.Render(rec.Kind.Name()),
		msg)
}
