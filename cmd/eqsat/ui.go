package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"eqsat/boolalg"
	"eqsat/egraph"
)

// classItem adapts one e-class to bubbles/list's Item interface.
type classItem struct {
	id      uint32
	nodes   int
	parents int
	data    boolalg.Data
}

func (c classItem) Title() string {
	return fmt.Sprintf("class %d", c.id)
}

func (c classItem) Description() string {
	known := "unknown"
	if c.data.Known {
		known = fmt.Sprintf("known=%v", c.data.Value)
	}
	return fmt.Sprintf("%d node(s), %d parent(s), %s", c.nodes, c.parents, known)
}

func (c classItem) FilterValue() string { return c.Title() }

// classRows renders one line per class for the non-interactive fallback,
// right-padding the "class N" label to a fixed display width so the rest of
// the columns line up even once ids run past a single digit.
func classRows(g *egraph.EGraph[boolalg.Data]) []string {
	const labelWidth = 10
	var rows []string
	for _, c := range g.Classes() {
		known := "unknown"
		if c.Data.Known {
			known = fmt.Sprintf("known=%v", c.Data.Value)
		}
		label := fmt.Sprintf("class %d", c.ID)
		label += strings.Repeat(" ", max(0, labelWidth-runewidth.StringWidth(label)))
		rows = append(rows, fmt.Sprintf("%s %d node(s), %d parent(s), %s", label, len(c.Nodes), len(c.Parents), known))
	}
	return rows
}

func classItems(g *egraph.EGraph[boolalg.Data]) []list.Item {
	items := make([]list.Item, 0, g.Size())
	for _, c := range g.Classes() {
		items = append(items, classItem{
			id:      uint32(c.ID),
			nodes:   len(c.Nodes),
			parents: len(c.Parents),
			data:    c.Data,
		})
	}
	return items
}

type inspectorModel struct {
	path string
	list list.Model
}

func newInspectorModel(path string, g *egraph.EGraph[boolalg.Data]) *inspectorModel {
	delegate := list.NewDefaultDelegate()
	l := list.New(classItems(g), delegate, 0, 0)
	l.Title = fmt.Sprintf("e-classes in %s", path)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	return &inspectorModel{path: path, list: l}
}

func (m *inspectorModel) Init() tea.Cmd { return nil }

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"))) {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	return b.String()
}
