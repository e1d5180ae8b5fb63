package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
)

var playCmd = &cobra.Command{
	Use:   "play [moves...]",
	Short: "Animate moves step by step",
	Long: `Play applies the moves to a fresh cube one increment per tick, showing the
net and the progress of the turn in flight.

Keys:
  space   pause / resume
  n       advance one step while paused
  q       quit`,
	RunE: runPlay,
}

var (
	playDim   int
	playTick  time.Duration
	playSteps int
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVarP(&playDim, "dim", "d", 3, "Cube dimension")
	playCmd.Flags().DurationVar(&playTick, "tick", nxcube.DefaultTick, "Pause between steps")
	playCmd.Flags().IntVar(&playSteps, "steps", nxcube.DefaultSteps, "Steps per turn")
}

func runPlay(cmd *cobra.Command, args []string) error {
	moves, err := nxcube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	cube, err := nxcube.New(playDim, nxcube.WithSteps(playSteps), nxcube.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := cube.Validate(moves...); err != nil {
		return err
	}

	p := tea.NewProgram(newPlayModel(cube, moves, playTick), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	if m, ok := final.(*playModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

// playModel drives a cube through a move list one Turn step per tick.
type playModel struct {
	cube  *nxcube.Cube
	moves []nxcube.Move
	tick  time.Duration

	next int // index of the next move to begin
	turn *nxcube.Turn

	// seq invalidates ticks scheduled before a pause
	seq      int
	paused   bool
	quitting bool
	err      error
}

type stepMsg struct{ seq int }

func newPlayModel(cube *nxcube.Cube, moves []nxcube.Move, tick time.Duration) *playModel {
	return &playModel{cube: cube, moves: moves, tick: tick}
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.tick, func(time.Time) tea.Msg {
		return stepMsg{seq: seq}
	})
}

// finished reports whether every move has been played.
func (m *playModel) finished() bool {
	return m.turn == nil && m.next >= len(m.moves)
}

// advance performs one step, beginning the next move when none is in flight.
func (m *playModel) advance() {
	if m.turn == nil {
		if m.next >= len(m.moves) {
			return
		}
		t, err := m.cube.Begin(m.moves[m.next])
		if err != nil {
			m.err = err
			m.next = len(m.moves)
			return
		}
		m.turn = t
		m.next++
	}
	if !m.turn.Step() {
		m.turn = nil
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ":
			m.paused = !m.paused
			m.seq++
			if !m.paused && !m.finished() {
				return m, m.tickCmd()
			}

		case "n":
			if m.paused {
				m.advance()
			}
		}

	case stepMsg:
		if msg.seq != m.seq || m.paused {
			return m, nil
		}
		m.advance()
		if m.finished() {
			return m, nil
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	d := m.cube.Dimensions()
	b.WriteString(titleStyle.Render(fmt.Sprintf("nxcube %dx%dx%d", d, d, d)))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.cube.Net()))
	b.WriteString("\n\n")

	switch {
	case m.turn != nil:
		step, total := m.turn.Progress()
		deg := m.turn.Angle() * float64(step) / float64(total) * 180 / math.Pi
		b.WriteString(turnStyle.Render(fmt.Sprintf("Turning %s", m.turn.Move())))
		b.WriteString(statusStyle.Render(fmt.Sprintf("  step %d/%d  %+.0f°", step, total, deg)))
	case m.finished():
		status := "Done"
		if m.cube.IsSolved() {
			status = "Done - solved"
		}
		b.WriteString(turnStyle.Render(status))
	default:
		b.WriteString(statusStyle.Render("Waiting"))
	}
	if m.paused {
		b.WriteString(statusStyle.Render("  (paused)"))
	}
	b.WriteString("\n\n")

	if len(m.moves) > 0 {
		played := m.next
		if m.turn != nil {
			played--
		}
		b.WriteString("Moves: ")
		b.WriteString(moveStyle.Render(nxcube.FormatMoves(m.moves[:played])))
		if rest := m.moves[played:]; len(rest) > 0 {
			b.WriteString(" ")
			b.WriteString(statusStyle.Render(nxcube.FormatMoves(rest)))
		}
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("space: pause  n: step  q: quit"))
	b.WriteString("\n")
	return b.String()
}
