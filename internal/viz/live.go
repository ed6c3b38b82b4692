package viz

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	clk "github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/experiment"
	"github.com/san-kum/dynctl/internal/sim"
	"github.com/san-kum/dynctl/internal/trajectory"
)

const (
	canvasWidth   = 60
	canvasHeight  = 20
	trailCapacity = 2000
	sparkWidth    = 40
)

// Feed is a sim.Observer handing samples to the live view. A run blocks on
// the feed while the view is paused.
type Feed struct {
	samples chan sim.Sample
	done    chan struct{}
	once    sync.Once
	clock   clk.Clock
	pace    time.Duration
}

// NewFeed returns a feed that sleeps pace after each sample, so the run
// plays back near real time. A nil clock is the wall clock.
func NewFeed(pace time.Duration, c clk.Clock) *Feed {
	if c == nil {
		c = clk.New()
	}
	return &Feed{
		samples: make(chan sim.Sample),
		done:    make(chan struct{}),
		clock:   c,
		pace:    pace,
	}
}

func (f *Feed) OnStep(s sim.Sample) {
	select {
	case f.samples <- s:
	case <-f.done:
		return
	}
	if f.pace > 0 {
		f.clock.Sleep(f.pace)
	}
}

// Close releases a run blocked on the feed. Later samples are dropped.
func (f *Feed) Close() { f.once.Do(func() { close(f.done) }) }

func (f *Feed) next() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-f.samples:
			return SampleMsg(s)
		case <-f.done:
			return nil
		}
	}
}

type SampleMsg sim.Sample

// DoneMsg ends the run.
type DoneMsg struct {
	Result *sim.Result
	Err    error
}

// Model is the live tracking view.
type Model struct {
	feed      *Feed
	title     string
	total     int
	waypoints []algebra.Vec3
	bounds    Bounds
	canvas    *Canvas
	trail     [][2]float64
	errNorms  []float64
	last      sim.Sample
	seen      bool
	reached   int
	paused    bool
	done      bool
	showHelp  bool
	result    *sim.Result
	err       error
}

func NewModel(feed *Feed, title string, total int, waypoints []algebra.Vec3) Model {
	b := EmptyBounds()
	for _, w := range waypoints {
		b = b.Include(w.X, w.Y)
	}
	return Model{
		feed:      feed,
		title:     title,
		total:     total,
		waypoints: waypoints,
		bounds:    b.Include(0, 0).Pad(0.2),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		trail:     make([][2]float64, 0, trailCapacity),
		errNorms:  make([]float64, 0, sparkWidth),
	}
}

func (m Model) Init() tea.Cmd {
	return m.feed.next()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.feed.Close()
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused && !m.done {
				return m, m.feed.next()
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case SampleMsg:
		m.observe(sim.Sample(msg))
		if !m.paused {
			return m, m.feed.next()
		}
	case DoneMsg:
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
	}
	return m, nil
}

func (m *Model) observe(s sim.Sample) {
	m.last = s
	m.seen = true
	if s.Event != trajectory.None {
		m.reached++
	}
	if len(s.State) >= 2 {
		x, y := s.State[0], s.State[1]
		if !m.bounds.Contains(x, y) {
			m.bounds = m.bounds.Include(x, y).Pad(0.1)
		}
		if len(m.trail) == trailCapacity {
			m.trail = m.trail[1:]
		}
		m.trail = append(m.trail, [2]float64{x, y})
	}
	if len(s.Error) > 0 {
		if len(m.errNorms) == sparkWidth {
			m.errNorms = m.errNorms[1:]
		}
		m.errNorms = append(m.errNorms, floats.Norm(s.Error, 2))
	}
}

func (m Model) Paused() bool { return m.paused }
func (m Model) Done() bool   { return m.done }
func (m Model) Reached() int { return m.reached }

func (m Model) draw() string {
	m.canvas.Clear()
	for i := 1; i < len(m.trail); i++ {
		x0, y0 := m.canvas.Project(m.bounds, m.trail[i-1][0], m.trail[i-1][1])
		x1, y1 := m.canvas.Project(m.bounds, m.trail[i][0], m.trail[i][1])
		m.canvas.DrawLine(x0, y0, x1, y1)
	}
	for _, w := range m.waypoints {
		m.canvas.DrawCross(m.canvas.Project(m.bounds, w.X, w.Y))
	}
	return strings.TrimRight(m.canvas.String(), "\n")
}

func (m Model) status() string {
	switch {
	case m.err != nil:
		return StatusFailed.Render("FAILED")
	case m.done && m.result != nil && m.result.Completed:
		return StatusRunning.Render("COMPLETED")
	case m.done:
		return StatusPaused.Render("FINISHED")
	case m.paused:
		return StatusPaused.Render("PAUSED")
	}
	return StatusRunning.Render("RUNNING")
}

func row(label, value string) string {
	return MetricLabel.Render(label) + MetricValue.Render(value) + "\n"
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(Title.Render(m.title) + "  " + m.status() + "\n\n")

	var stats strings.Builder
	if m.seen {
		stats.WriteString(row("Time", fmt.Sprintf("%.2fs", m.last.Time)))
		stats.WriteString(row("Step", fmt.Sprintf("%d / %d", m.last.Step+1, m.total)))
		if m.total > 0 {
			stats.WriteString(ProgressBar(float64(m.last.Step+1)/float64(m.total), 30) + "\n")
		}
		if len(m.last.State) >= 3 {
			stats.WriteString(row("Position", fmt.Sprintf("(%.2f, %.2f, %.2f)", m.last.State[0], m.last.State[1], m.last.State[2])))
		}
		if n := len(m.errNorms); n > 0 {
			stats.WriteString(row("Error", fmt.Sprintf("%.4f", m.errNorms[n-1])))
		}
	}
	stats.WriteString(row("Waypoints", fmt.Sprintf("%d / %d", m.reached, len(m.waypoints))))
	stats.WriteString("\n" + Sparkline(m.errNorms, sparkWidth) + "\n")

	if m.result != nil {
		stats.WriteString("\n")
		for _, name := range sortedMetricNames(m.result.Metrics) {
			stats.WriteString(row(name, fmt.Sprintf("%.4f", m.result.Metrics[name])))
		}
	}
	if m.err != nil {
		stats.WriteString("\n" + StatusFailed.Render(m.err.Error()) + "\n")
	}

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		Panel.Render(m.draw()),
		Panel.Render(strings.TrimRight(stats.String(), "\n")),
	))
	s.WriteString("\n")

	if m.showHelp {
		s.WriteString(KeyHint.Render("space pause/resume   ? help   q quit"))
	} else {
		s.WriteString(KeyHint.Render("? help"))
	}
	return s.String()
}

// RunLive runs exp while showing it in the terminal. Quitting the view
// cancels the run.
func RunLive(ctx context.Context, exp *experiment.Experiment, pace time.Duration) (*sim.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	feed := NewFeed(pace, nil)
	exp.AddObserver(feed)

	cfg := exp.Config()
	p := tea.NewProgram(NewModel(feed, cfg.Name, cfg.Steps, exp.Waypoints()))

	var (
		result *sim.Result
		runErr error
	)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		result, runErr = exp.Run(ctx)
		p.Send(DoneMsg{Result: result, Err: runErr})
	}()

	_, uiErr := p.Run()
	feed.Close()
	cancel()
	<-finished

	if uiErr != nil {
		return result, uiErr
	}
	return result, runErr
}
