package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/tearoff/internal/canvas"
	"github.com/chris-regnier/tearoff/internal/content"
	"github.com/chris-regnier/tearoff/internal/gesture"
	"github.com/chris-regnier/tearoff/internal/motion"
	"github.com/chris-regnier/tearoff/internal/particle"
	"github.com/chris-regnier/tearoff/internal/state"
	"go.uber.org/zap"
)

// pulseInterval is the half-period of the pulsing hints.
const pulseInterval = 800 * time.Millisecond

// TUIConfig holds everything the screen needs that is decided at startup.
type TUIConfig struct {
	Date          time.Time
	Mood          state.MoodStage
	Thresholds    gesture.Thresholds
	CellWidth     float64 // pixels per column
	CellHeight    float64 // pixels per row
	Particles     int
	Source        particle.Source
	Rerandomize   bool // draw new particle targets on every input
	MaxWidth      int  // card width cap (0 = no limit)
	MarkdownStyle string
	Content       *content.Content
	Logger        *zap.Logger
}

func (c TUIConfig) withDefaults() TUIConfig {
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	if !c.Mood.Valid() {
		c.Mood = state.DefaultMood
	}
	if c.Thresholds.Tear <= 0 || c.Thresholds.Swipe <= 0 {
		c.Thresholds = gesture.DefaultThresholds()
	}
	if c.CellWidth <= 0 {
		c.CellWidth = 10
	}
	if c.CellHeight <= 0 {
		c.CellHeight = 20
	}
	if c.Particles < 0 {
		c.Particles = 0
	}
	if c.Source == nil {
		c.Source = particle.NewSource(uint64(time.Now().UnixNano()))
	}
	if c.Content == nil {
		c.Content = content.Default()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

type frameMsg struct{}

type pulseMsg struct{}

func frameCmd() tea.Cmd {
	return tea.Tick(motion.Frame, func(time.Time) tea.Msg { return frameMsg{} })
}

func pulseCmd() tea.Cmd {
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg { return pulseMsg{} })
}

// pointerTarget is what the current mouse press started on.
type pointerTarget int

const (
	targetNone pointerTarget = iota
	targetCard
	targetStrip
	targetButton
	targetQuote
	targetChoice
	targetClose
)

// Model is the root Bubble Tea model. It owns the shared State and routes
// input to the layers, which request changes through dispatch.
type Model struct {
	cfg  TUIConfig
	st   state.State
	log  *zap.Logger
	keys keyMap
	help help.Model
	md   *markdownRenderer

	mood       *moodModel
	calendar   *calendarModel // nil once the page is torn and has fallen
	foundation *foundationModel
	panels     []*panel // back to front

	pointer     pointerTarget
	pointerMood state.MoodStage
	helpActive  bool

	width   int
	height  int
	ready   bool
	ticking bool // a frameMsg is in flight
	pulse   bool
}

// NewModel builds the screen in its fresh-load state.
func NewModel(cfg TUIConfig) Model {
	cfg = cfg.withDefaults()
	h := help.New()
	h.Styles = help.Styles{}
	return Model{
		cfg:        cfg,
		st:         state.New(cfg.Mood),
		log:        cfg.Logger,
		keys:       defaultKeyMap(),
		help:       h,
		md:         newMarkdownRenderer(cfg.MarkdownStyle),
		mood:       newMoodModel(cfg.Mood),
		calendar:   newCalendarModel(cfg.Date),
		foundation: newFoundationModel(),
		ticking:    true,
	}
}

// State returns the current shared state.
func (m Model) State() state.State { return m.st }

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), pulseCmd())
}

func (m Model) layout() layout {
	return newLayout(m.width, m.height, m.cfg.CellWidth, m.cfg.CellHeight, m.cfg.MaxWidth)
}

// activePanel is the open, non-closing overlay, if any.
func (m Model) activePanel() *panel {
	for i := len(m.panels) - 1; i >= 0; i-- {
		if !m.panels[i].closing {
			return m.panels[i]
		}
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		for _, p := range m.panels {
			p.resize(m.width, m.height)
		}
		return m, nil

	case frameMsg:
		m.stepFrame()
		if m.animating() {
			return m, frameCmd()
		}
		m.ticking = false
		return m, nil

	case pulseMsg:
		m.pulse = !m.pulse
		return m, pulseCmd()

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	default:
		return m, nil
	}

	// Input re-renders the screen; in rerandomize mode every re-render
	// draws new particle targets.
	if m.cfg.Rerandomize && m.foundation.burst != nil {
		m.foundation.burst.Retarget(m.cfg.Source)
	}

	kick := m.kick()
	return m, tea.Batch(cmd, kick)
}

// kick starts the frame loop if something needs animating.
func (m *Model) kick() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return frameCmd()
}

func (m *Model) stepFrame() {
	m.mood.step()
	if m.calendar != nil {
		m.calendar.step()
		if m.calendar.done() {
			m.calendar = nil
			m.log.Debug("calendar page removed")
		}
	}
	m.foundation.step()
	kept := m.panels[:0]
	for _, p := range m.panels {
		p.step()
		if p.gone() {
			m.log.Debug("overlay unmounted", zap.String("overlay", p.kind.String()))
			continue
		}
		kept = append(kept, p)
	}
	m.panels = kept
}

func (m Model) animating() bool {
	if m.mood.animating() || m.foundation.animating() {
		return true
	}
	if m.calendar != nil && m.calendar.animating() {
		return true
	}
	for _, p := range m.panels {
		if p.animating() {
			return true
		}
	}
	return false
}

// dispatch applies an action to the shared state and lets every layer
// react to what changed.
func (m *Model) dispatch(a state.Action) {
	before := m.st
	m.st = state.Reduce(m.st, a)
	changed := state.Diff(before, m.st)
	if !changed.Any() {
		return
	}

	if changed.Mood {
		m.mood.moodChanged(m.st.Mood)
		m.log.Info("mood selected",
			zap.String("from", before.Mood.String()),
			zap.String("to", m.st.Mood.String()))
	}
	if changed.Torn {
		m.torn()
	}
	if changed.Overlay {
		if p := m.activePanel(); p != nil {
			p.close()
			m.log.Info("overlay closed", zap.String("overlay", p.kind.String()))
		}
		if m.st.Overlay != state.OverlayNone {
			m.panels = append(m.panels, newPanel(m.st.Overlay, m.cfg.Content, m.width, m.height))
			m.log.Info("overlay opened", zap.String("overlay", m.st.Overlay.String()))
		}
	}
}

func (m *Model) torn() {
	if m.calendar != nil && !m.calendar.exiting {
		m.calendar.beginExit(m.calendar.offset())
	}
	id, err := particle.NewID()
	if err != nil {
		m.log.Warn("burst without id", zap.Error(err))
	}
	m.foundation.torn(particle.NewBurst(id, m.cfg.Particles, m.cfg.Source))
	m.log.Info("calendar torn",
		zap.String("burst", id),
		zap.Int("particles", m.cfg.Particles))
}

func (m *Model) releaseCard() {
	if m.calendar == nil {
		return
	}
	off, ok := m.calendar.release()
	if !ok {
		return
	}
	committed := m.cfg.Thresholds.TearCommitted(off)
	m.log.Debug("calendar released",
		zap.Float64("offset", off),
		zap.Float64("threshold", m.cfg.Thresholds.Tear),
		zap.Bool("committed", committed))
	if committed {
		m.calendar.beginExit(off)
		m.dispatch(state.Tear())
	}
}

func (m *Model) releaseStrip() {
	off, ok := m.foundation.release()
	if !ok {
		return
	}
	committed := m.cfg.Thresholds.SwipeCommitted(off)
	m.log.Debug("hot-zone released",
		zap.Float64("offset", off),
		zap.Float64("threshold", m.cfg.Thresholds.Swipe),
		zap.Bool("committed", committed))
	if committed {
		m.dispatch(state.Open(state.OverlayResonance))
	}
}

func (m *Model) selectMood(s state.MoodStage) {
	if !m.mood.selectorOpen {
		return
	}
	m.dispatch(state.SelectMood(s))
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.helpActive {
		if key.Matches(msg, m.keys.Help, m.keys.Close) {
			m.helpActive = false
		}
		return m, nil
	}

	if p := m.activePanel(); p != nil {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.dispatch(state.Close())
		case key.Matches(msg, m.keys.Up):
			p.moveFocus(-1)
		case key.Matches(msg, m.keys.Down):
			p.moveFocus(1)
		case key.Matches(msg, m.keys.Resonance):
			m.dispatch(state.Open(state.OverlayResonance))
		case key.Matches(msg, m.keys.Luggage):
			m.dispatch(state.Open(state.OverlayLuggage))
		case key.Matches(msg, m.keys.Help):
			m.helpActive = true
		default:
			var cmd tea.Cmd
			p.vp, cmd = p.vp.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	l := m.layout()
	switch {
	case key.Matches(msg, m.keys.PullDown):
		if m.calendar != nil {
			m.calendar.nudge(l.pxY(1))
		}
	case key.Matches(msg, m.keys.PullLeft):
		m.foundation.nudge(-l.pxX(1))
	case key.Matches(msg, m.keys.Release):
		m.releaseCard()
		m.releaseStrip()
	case key.Matches(msg, m.keys.Selector):
		m.mood.toggleSelector()
	case key.Matches(msg, m.keys.Morning):
		m.selectMood(state.Morning)
	case key.Matches(msg, m.keys.Afternoon):
		m.selectMood(state.Afternoon)
	case key.Matches(msg, m.keys.Dusk):
		m.selectMood(state.Dusk)
	case key.Matches(msg, m.keys.Resonance):
		m.dispatch(state.Open(state.OverlayResonance))
	case key.Matches(msg, m.keys.Luggage):
		m.dispatch(state.Open(state.OverlayLuggage))
	case key.Matches(msg, m.keys.Help):
		m.helpActive = true
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	x, y := msg.X, msg.Y
	l := m.layout()
	px, py := l.pxX(x), l.pxY(y)

	if m.helpActive {
		if msg.Action == tea.MouseActionPress {
			m.helpActive = false
		}
		return m
	}

	if p := m.activePanel(); p != nil {
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			p.vp, _ = p.vp.Update(msg)
			return m
		}
		switch msg.Action {
		case tea.MouseActionPress:
			m.pointer = targetNone
			if p.onClose(x, y, m.width, m.height) {
				m.pointer = targetClose
			} else if i, ok := p.cardAt(x, y, m.width, m.height); ok {
				p.focus = i
			}
		case tea.MouseActionRelease:
			if m.pointer == targetClose && p.onClose(x, y, m.width, m.height) {
				m.dispatch(state.Close())
			}
			m.pointer = targetNone
		}
		return m
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		m.pointer = targetNone
		quote := m.cfg.Content.Mood(m.st.Mood).Quote
		switch {
		case l.onLuggageButton(x, y):
			m.pointer = targetButton
		case l.inStrip(x, y):
			m.pointer = targetStrip
			m.foundation.press(px, py)
		case m.calendar != nil && m.calendar.interactive() && l.inCard(x, y):
			m.pointer = targetCard
			m.calendar.press(px, py)
		case m.mood.selectorOpen:
			if s, ok := l.choiceAt(x, y); ok {
				m.pointer = targetChoice
				m.pointerMood = s
			} else if l.onQuote(x, y, quote) {
				m.pointer = targetQuote
			}
		case l.onQuote(x, y, quote):
			m.pointer = targetQuote
		}

	case tea.MouseActionMotion:
		switch m.pointer {
		case targetCard:
			if m.calendar != nil {
				m.calendar.move(px, py)
			}
		case targetStrip:
			m.foundation.move(px, py)
		}

	case tea.MouseActionRelease:
		quote := m.cfg.Content.Mood(m.st.Mood).Quote
		switch m.pointer {
		case targetCard:
			if m.calendar != nil {
				m.calendar.move(px, py)
			}
			m.releaseCard()
		case targetStrip:
			m.foundation.move(px, py)
			m.releaseStrip()
		case targetButton:
			if l.onLuggageButton(x, y) {
				m.dispatch(state.Open(state.OverlayLuggage))
			}
		case targetQuote:
			if l.onQuote(x, y, quote) {
				m.mood.toggleSelector()
			}
		case targetChoice:
			if s, ok := l.choiceAt(x, y); ok && s == m.pointerMood {
				m.selectMood(s)
			}
		}
		m.pointer = targetNone
	}
	return m
}

// canvas paints every layer back to front.
func (m Model) canvas() *canvas.Canvas {
	l := m.layout()
	pal := m.mood.palette()
	cv := canvas.New(m.width, m.height, pal.Top)
	ct := m.cfg.Content

	m.mood.drawBackground(cv)
	m.mood.drawQuote(cv, l, m.st.Mood, ct.Mood(m.st.Mood).Quote, ct.QuoteHint)
	m.foundation.draw(cv, l, m.pulse)
	if m.calendar != nil {
		m.calendar.draw(cv, l, ct.TearHint, m.pulse)
	}
	hint := m.help.View(m.keys)
	cv.Text(1, m.height-1, hint, fade(stone500, cv.At(1, m.height-1).BG, 0.5), false)

	footer := m.help.ShortHelpView(m.keys.panelKeys())
	for _, p := range m.panels {
		p.draw(cv, l, footer)
	}
	return cv
}

func (m Model) View() string {
	if !m.ready {
		// Dimensions are unknown until the first WindowSizeMsg.
		return "Loading..."
	}
	if m.helpActive {
		return m.helpOverlay()
	}
	return m.canvas().Render()
}

func (m Model) helpOverlay() string {
	bg := m.mood.palette().Top
	width := min(72, max(m.width-8, 20))
	table := m.help
	table.ShowAll = true
	table.Width = width - 4
	body := m.md.Render(m.cfg.Content.Help, width-4) + "\n" + table.View(m.keys)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lg(stone400)).
		Padding(0, 1).
		Render(body)
	placed := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(lg(bg)))
	return ClearLineEnds(placed, bg)
}
