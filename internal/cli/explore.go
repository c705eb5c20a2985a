package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/consolidated/pkg/consolidated"
	pkgio "github.com/matzehuels/consolidated/pkg/io"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// maxDetailRows bounds the descendant list shown next to the key list.
const maxDetailRows = 20

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <file>",
		Short: "Browse the hierarchy interactively",
		Long: `Browse the hierarchy interactively.

The left pane lists nodes; the right pane shows the selected node's
descendants. Press enter to narrow the list to the selected node's subtree
and backspace to go back up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.loadIndex(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			model := NewExplorerModel(result.Forest, result.Map)
			p := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// ExplorerModel - Interactive hierarchy browser
// =============================================================================

// ExplorerModel is the bubbletea model for browsing a consolidated index.
type ExplorerModel struct {
	Forest *pkgio.Forest
	Map    *consolidated.Map[uint32]

	// Keys are the nodes currently listed.
	Keys   []uint32
	Cursor int
	Height int
	Offset int

	// trail holds the zoomed-into nodes with the cursor position to restore.
	trail []frame
}

type frame struct {
	key    uint32
	cursor int
}

// NewExplorerModel creates an explorer listing the roots of f.
func NewExplorerModel(f *pkgio.Forest, m *consolidated.Map[uint32]) ExplorerModel {
	return ExplorerModel{
		Forest: f,
		Map:    m,
		Keys:   roots(f),
		Height: 15,
	}
}

// roots returns every node that never appears as a child, sorted.
func roots(f *pkgio.Forest) []uint32 {
	children := make(map[uint32]struct{}, len(f.Edges))
	for _, e := range f.Edges {
		children[e.Child] = struct{}{}
	}
	var out []uint32
	seen := make(map[uint32]struct{})
	for _, e := range f.Edges {
		if _, ok := children[e.Parent]; ok {
			continue
		}
		if _, ok := seen[e.Parent]; ok {
			continue
		}
		seen[e.Parent] = struct{}{}
		out = append(out, e.Parent)
	}
	slices.Sort(out)
	return out
}

// Selected returns the node under the cursor.
func (m ExplorerModel) Selected() (uint32, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Keys) {
		return 0, false
	}
	return m.Keys[m.Cursor], true
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Keys)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			key, ok := m.Selected()
			if !ok || m.Map.Children(key).Len() == 0 {
				return m, nil
			}
			m.trail = append(m.trail, frame{key: key, cursor: m.Cursor})
			m.Keys = m.Map.Children(key).Slice()
			m.Cursor, m.Offset = 0, 0
		case "backspace", "h", "left":
			if len(m.trail) == 0 {
				return m, nil
			}
			last := m.trail[len(m.trail)-1]
			m.trail = m.trail[:len(m.trail)-1]
			if len(m.trail) == 0 {
				m.Keys = roots(m.Forest)
			} else {
				m.Keys = m.Map.Children(m.trail[len(m.trail)-1].key).Slice()
			}
			m.Cursor = last.cursor
			m.Offset = max(0, m.Cursor-m.Height+1)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m ExplorerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore " + m.breadcrumb()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ zoom in  ⌫ back  q quit"))
	b.WriteString("\n\n")

	if len(m.Keys) == 0 {
		b.WriteString(listDimStyle.Render("No nodes"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Keys))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		key := m.Keys[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, m.Forest.Label(key), fmt.Sprint(m.Map.Children(key).Len())})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Below").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, t.Render(), "  ", m.detail()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Keys))))
	return b.String()
}

// detail renders the descendants of the selected node.
func (m ExplorerModel) detail() string {
	key, ok := m.Selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleHighlight.Render(m.Forest.Label(key)))
	b.WriteString("\n")

	children := m.Map.Children(key)
	if children.Len() == 0 {
		b.WriteString(listDimStyle.Render("leaf"))
		return b.String()
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d descendants", children.Len())))
	b.WriteString("\n")

	n := 0
	for id := range children.All() {
		if n == maxDetailRows {
			b.WriteString(listDimStyle.Render(fmt.Sprintf("… %d more", children.Len()-n)))
			break
		}
		b.WriteString(StyleValue.Render(m.Forest.Label(id)))
		b.WriteString("\n")
		n++
	}
	return b.String()
}

func (m ExplorerModel) breadcrumb() string {
	parts := []string{"/"}
	for _, f := range m.trail {
		parts = append(parts, m.Forest.Label(f.key))
	}
	return strings.Join(parts, " › ")
}
