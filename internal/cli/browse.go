package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/catalog"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/cli/formatter"
)

// browseKeys holds the key bindings for the result browser.
type browseKeys struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var defaultBrowseKeys = browseKeys{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
	Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// resultBrowser is a small navigable view over search results: a cursor
// list, with enter opening the full record.
type resultBrowser struct {
	records []catalog.ContentRecord
	keys    browseKeys
	cursor  int
	detail  bool
}

func newResultBrowser(records []catalog.ContentRecord) resultBrowser {
	return resultBrowser{records: records, keys: defaultBrowseKeys}
}

func (m resultBrowser) Init() tea.Cmd { return nil }

func (m resultBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		if m.detail {
			m.detail = false
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Enter):
		m.detail = true
	case key.Matches(keyMsg, m.keys.Up):
		if !m.detail && m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if !m.detail && m.cursor < len(m.records)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m resultBrowser) View() string {
	if m.detail {
		return m.detailView()
	}
	return m.listView()
}

func (m resultBrowser) listView() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Search Results") + "\n")

	for i, rec := range m.records {
		line := rec.Title
		if rec.Series != "" {
			line += "  •  " + rec.Series
		}
		if i == m.cursor {
			b.WriteString(formatter.StyleHeader.Render("> ") + formatter.Bold(line))
		} else {
			b.WriteString("  " + formatter.StyleFg.Render(line))
		}
		b.WriteString("  " + formatter.LevelBadge(rec.Level) + "\n")
	}

	b.WriteString("\n" + m.helpView(m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Quit))
	return b.String()
}

func (m resultBrowser) detailView() string {
	rec := m.records[m.cursor]

	var b strings.Builder
	b.WriteString(formatter.Bold(rec.Title) + "\n")
	if rec.Series != "" {
		b.WriteString(formatter.Dim("시리즈: ") + formatter.StyleBlue.Render(rec.Series) + "\n")
	}
	b.WriteString(formatter.Dim("레벨: ") + formatter.LevelBadge(rec.Level) + "\n")
	if rec.Content != "" {
		b.WriteString("\n" + formatter.StyleFg.Render(rec.Content) + "\n")
	}
	if len(rec.Phrases) > 0 {
		b.WriteString("\n" + formatter.Dim("키 프레이즈:") + "\n")
		b.WriteString(formatter.BulletList(rec.Phrases))
	}

	return formatter.RenderBox("", strings.TrimRight(b.String(), "\n")) +
		"\n" + m.helpView(m.keys.Back, m.keys.Quit)
}

func (m resultBrowser) helpView(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return formatter.Dim(strings.Join(parts, "  •  "))
}

// browseResults runs the interactive browser over the given records.
func browseResults(records []catalog.ContentRecord) error {
	_, err := tea.NewProgram(newResultBrowser(records)).Run()
	return err
}
