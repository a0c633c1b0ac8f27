package game

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/slatelang/slate/pkg/trace"
)

const (
	frameInterval = time.Second / 30
	fov           = math.Pi / 3
)

var (
	styleScore    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	styleHelp     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleGameOver = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("167"))
)

// tickMsg drives the frame loop.
type tickMsg time.Time

// Model is the bubbletea model for the corridor racer.
type Model struct {
	state  *State
	width  int
	height int
	last   time.Time
}

// NewModel returns a model with a time-seeded random source.
func NewModel() Model {
	return Model{
		state:  NewState(rand.New(rand.NewSource(time.Now().UnixNano()))),
		width:  80,
		height: 22,
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.state.MoveLeft(frameInterval.Seconds())
		case "right", "l":
			m.state.MoveRight(frameInterval.Seconds())
		case "enter":
			if m.state.Over {
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 2 // leave room for the HUD
		if m.height < 5 {
			m.height = 5
		}
	case tickMsg:
		now := time.Time(msg)
		dt := frameInterval.Seconds()
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.state.Update(dt)
		if m.state.Over {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderFrame())
	b.WriteString("\n")
	b.WriteString(styleScore.Render(fmt.Sprintf("Score: %d", m.state.Score)))
	b.WriteString(styleHelp.Render(fmt.Sprintf("  speed %.1f  ←/→ move  q quit", m.state.Speed)))
	if m.state.Over {
		b.WriteString("\n")
		b.WriteString(styleGameOver.Render("=== GAME OVER ==="))
		b.WriteString(styleHelp.Render("  press enter to exit"))
	}
	return b.String()
}

// renderFrame traces the scene into background-colored cells, one cell per
// pixel, each row terminated by a reset so the HUD below keeps its own
// styling.
func (m Model) renderFrame() string {
	camera := trace.Vec3{X: m.state.PlayerX}
	lightDir := trace.Vec3{X: 0.3, Y: 1, Z: -0.5}.Normalize()
	pixels := trace.RenderFrame(m.width, m.height, camera, fov, m.state.Scene(), lightDir)

	var b strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			b.WriteString(termenv.CSI + cellColor(pixels[y*m.width+x]).Sequence(true) + "m ")
		}
		b.WriteString(termenv.CSI + termenv.ResetSeq + "m")
		if y < m.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellColor(c trace.Color) termenv.RGBColor {
	return termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x",
		int(math.Min(255, c.R*255)),
		int(math.Min(255, c.G*255)),
		int(math.Min(255, c.B*255))))
}

// Run starts the game in the terminal's alternate screen and blocks until
// the player quits or crashes into an obstacle. It returns the final score.
func Run() (int, error) {
	m := NewModel()
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	if fm, ok := final.(Model); ok {
		return fm.state.Score, nil
	}
	return m.state.Score, nil
}
