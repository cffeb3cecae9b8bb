// Command pathrace-tui replays two traversal strategies side by side on
// a generated grid graph. It scrubs through the retained snapshot
// sequences, which is only possible because every step is a deep copy
// of the search state at emission time.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-pathrace/pkg/graph"
	"github.com/dd0wney/cluso-pathrace/pkg/race"
	"github.com/dd0wney/cluso-pathrace/pkg/traversal"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1).
			MarginRight(2)

	startStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	endStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	pathStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00"))
	visitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5555FF"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF"))

	verdictStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF00")).
			MarginLeft(2).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginLeft(2)
)

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Play  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Play, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "step forward"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "step back"),
	),
	Play: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rewind"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type tickMsg time.Time

type side struct {
	strategy traversal.Strategy
	result   *traversal.Result
}

type model struct {
	rows, cols int
	startID    string
	endID      string
	left       side
	right      side
	verdict    race.Verdict
	cursor     int
	maxCursor  int
	playing    bool
	help       help.Model
}

func newModel(rows, cols int, seed int64, left, right traversal.Strategy) (model, error) {
	g := graph.GenerateGrid(rows, cols, seed)
	startID := graph.GridID(0, 0)
	endID := graph.GridID(rows-1, cols-1)

	contest, err := race.NewRace(g, startID, endID, left, right)
	if err != nil {
		return model{}, err
	}
	verdict := contest.Run()
	leftResult, rightResult := contest.Results()

	maxCursor := len(leftResult.Steps)
	if len(rightResult.Steps) > maxCursor {
		maxCursor = len(rightResult.Steps)
	}

	return model{
		rows:      rows,
		cols:      cols,
		startID:   startID,
		endID:     endID,
		left:      side{strategy: left, result: leftResult},
		right:     side{strategy: right, result: rightResult},
		verdict:   verdict,
		maxCursor: maxCursor,
		help:      help.New(),
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.playing = false
			if m.cursor < m.maxCursor {
				m.cursor++
			}
		case key.Matches(msg, keys.Prev):
			m.playing = false
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Reset):
			m.playing = false
			m.cursor = 0
		case key.Matches(msg, keys.Play):
			m.playing = !m.playing
			if m.playing {
				return m, tick()
			}
		}
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		if m.cursor < m.maxCursor {
			m.cursor++
			return m, tick()
		}
		m.playing = false
	}
	return m, nil
}

// stepAt returns the snapshot visible at the cursor, nil before the
// first step.
func stepAt(result *traversal.Result, cursor int) *traversal.PathStep {
	if cursor == 0 || len(result.Steps) == 0 {
		return nil
	}
	idx := cursor - 1
	if idx >= len(result.Steps) {
		idx = len(result.Steps) - 1
	}
	return &result.Steps[idx]
}

func (m model) renderPane(s side) string {
	step := stepAt(s.result, m.cursor)

	inPath := make(map[string]bool)
	var current string
	if step != nil {
		current = step.Node
		for _, id := range step.Path {
			inPath[id] = true
		}
	}

	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			id := graph.GridID(r, c)
			cell := "·"
			style := idleStyle
			switch {
			case id == current:
				cell = "●"
				style = currentStyle
			case id == m.startID:
				cell = "S"
				style = startStyle
			case id == m.endID:
				cell = "E"
				style = endStyle
			case inPath[id]:
				cell = "o"
				style = pathStyle
			case step != nil && step.Visited[id]:
				cell = "x"
				style = visitedStyle
			}
			b.WriteString(style.Render(cell))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	shown := 0
	if step != nil {
		shown = step.Index + 1
	}
	b.WriteString(fmt.Sprintf("\n%s  step %d/%d", s.strategy, shown, len(s.result.Steps)))
	if step != nil && step.Done {
		b.WriteString("  FOUND")
	}
	return paneStyle.Render(b.String())
}

func (m model) View() string {
	title := titleStyle.Render("pathrace traversal replay")
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPane(m.left),
		m.renderPane(m.right),
	)

	status := statusStyle.Render(fmt.Sprintf("cursor %d/%d  %s → %s",
		m.cursor, m.maxCursor, m.startID, m.endID))

	verdict := ""
	if m.cursor >= m.maxCursor {
		verdict = verdictStyle.Render(fmt.Sprintf("verdict: %s", m.verdict))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		panes,
		status,
		verdict,
		statusStyle.Render(m.help.View(keys)),
	) + "\n"
}

func parseStrategyFlag(name, value string) traversal.Strategy {
	s, err := traversal.ParseStrategy(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -%s: %v\n", name, err)
		os.Exit(2)
	}
	return s
}

func main() {
	rows := flag.Int("rows", 8, "Grid rows")
	cols := flag.Int("cols", 12, "Grid columns")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Grid weight seed")
	leftName := flag.String("left", "dijkstra", "Left strategy (dijkstra|astar|bfs|dfs)")
	rightName := flag.String("right", "astar", "Right strategy (dijkstra|astar|bfs|dfs)")
	flag.Parse()

	left := parseStrategyFlag("left", *leftName)
	right := parseStrategyFlag("right", *rightName)

	m, err := newModel(*rows, *cols, *seed, left, right)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up race: %v\n", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		os.Exit(1)
	}
}
