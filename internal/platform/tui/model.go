package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/octoterm/octoflash/internal/config"
	"github.com/octoterm/octoflash/internal/core"
	"github.com/octoterm/octoflash/internal/pattern"
	"github.com/octoterm/octoflash/internal/sim"
	"github.com/octoterm/octoflash/internal/storage"
)

// Model is the Bubble Tea model for the flash-cascade animation.
// It owns the grid for the lifetime of the session and is the only
// writer to it: one simulation step per tick.
type Model struct {
	screen *core.Screen
	store  *storage.Store
	keys   *KeyMapper
	input  core.InputFrame

	rng         *rand.Rand
	grid        *sim.Grid
	patternName string
	gridSize    int
	maxSize     int
	seed        int64

	tickRate    int
	minTickRate int
	maxTickRate int
	cellWidth   int
	showZeros   bool

	screenW int
	screenH int

	paused   bool
	quitting bool
	runSaved bool

	stepCount    int
	lastFlashes  int
	totalFlashes int
	syncStep     int

	stepErr error
}

// NewModel creates a Bubble Tea model for the given configuration.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, anim config.Config) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:       store,
		keys:        NewKeyMapper(),
		input:       core.NewInputFrame(),
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		patternName: cfg.Pattern,
		gridSize:    core.Clamp(cfg.GridSize, 1, anim.Grid.MaxSize),
		maxSize:     anim.Grid.MaxSize,
		seed:        cfg.Seed,
		tickRate:    cfg.TickRate,
		minTickRate: anim.Timing.MinTickRate,
		maxTickRate: anim.Timing.MaxTickRate,
		cellWidth:   anim.Display.CellWidth,
		showZeros:   anim.Display.ShowZeros,
		screenW:     cfg.ScreenW,
		screenH:     cfg.ScreenH,
	}
	if m.patternName == "" || !pattern.Exists(m.patternName) {
		m.patternName = pattern.Default
	}
	m.tickRate = core.Clamp(m.tickRate, m.minTickRate, m.maxTickRate)
	m.reseed()
	return m
}

// reseed replaces the grid with a freshly seeded one at the current size.
func (m *Model) reseed() {
	grid, err := pattern.Seed(m.patternName, m.gridSize, m.gridSize, m.rng)
	if err != nil {
		// Registry lookups were validated in NewModel; fall back anyway.
		grid = sim.Random(m.gridSize, m.gridSize, m.rng)
	}
	m.grid = grid
	m.stepCount = 0
	m.lastFlashes = 0
	m.totalFlashes = 0
	m.syncStep = 0
	m.runSaved = false
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screenW = msg.Width
		m.screenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers actions for the next tick; quit takes effect
// immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit := m.keys.MapKeyToFrame(msg, &m.input); isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick applies buffered control actions, then advances the
// simulation by one step unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyInput()
	m.input.Clear()

	if !m.paused && m.stepErr == nil {
		flashes, err := m.grid.Step()
		if err != nil {
			m.stepErr = err
		} else {
			m.stepCount++
			m.lastFlashes = flashes
			m.totalFlashes += flashes
			if m.syncStep == 0 && flashes == m.gridSize*m.gridSize {
				m.syncStep = m.stepCount
			}
		}
	}

	return m, tickCmd(m.tickRate)
}

func (m *Model) applyInput() {
	if m.input.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if m.input.Has(core.ActionToggleZeros) {
		m.showZeros = !m.showZeros
	}
	if m.input.Has(core.ActionFaster) {
		m.tickRate = core.Clamp(m.tickRate+1, m.minTickRate, m.maxTickRate)
	}
	if m.input.Has(core.ActionSlower) {
		m.tickRate = core.Clamp(m.tickRate-1, m.minTickRate, m.maxTickRate)
	}

	resized := false
	if m.input.Has(core.ActionGrow) && m.gridSize < m.maxSize {
		m.gridSize++
		resized = true
	}
	if m.input.Has(core.ActionShrink) && m.gridSize > 1 {
		m.gridSize--
		resized = true
	}
	if resized || m.input.Has(core.ActionReseed) {
		m.saveRun()
		m.reseed()
	}
}

// saveRun persists the finished run, once, best-effort.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved || m.stepCount == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the animation continues regardless
	m.store.SaveRun(storage.RunEntry{
		Pattern:  m.patternName,
		Rows:     m.gridSize,
		Cols:     m.gridSize,
		Seed:     m.seed,
		Steps:    m.stepCount,
		Flashes:  m.totalFlashes,
		SyncStep: m.syncStep,
	})
	m.runSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.renderHUD()
	m.renderGrid()
	m.renderHelp()

	return RenderScreen(m.screen)
}

// renderHUD draws the top status bar.
func (m *Model) renderHUD() {
	hud := fmt.Sprintf(" octoflash [%s]  step %d  flashes %d (+%d)  %dx%d @ %d/s",
		m.patternName, m.stepCount, m.totalFlashes, m.lastFlashes,
		m.gridSize, m.gridSize, m.tickRate)
	if m.paused {
		hud += "  [paused]"
	}
	m.screen.DrawText(0, 0, hud)
	m.screen.DrawHLine(0, 1, m.screen.Width(), '─')

	if m.syncStep > 0 {
		msg := fmt.Sprintf("✶ synchronized at step %d ✶", m.syncStep)
		m.screen.DrawTextColored((m.screen.Width()-len([]rune(msg)))/2, 2, msg, core.FlashColor)
	}
}

// renderGrid draws the bordered energy field centered on screen.
func (m *Model) renderGrid() {
	if m.stepErr != nil {
		m.screen.DrawTextCentered(m.screen.Height()/2, fmt.Sprintf("simulation error: %v", m.stepErr))
		return
	}

	rows, cols := m.grid.Rows(), m.grid.Cols()
	innerW := (cols-1)*m.cellWidth + 1
	boxW := innerW + 2
	boxH := rows + 2

	// HUD takes rows 0-2, help takes the last row.
	availTop := 3
	availH := m.screen.Height() - availTop - 1
	if boxW > m.screen.Width() || boxH > availH {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Window too small")
		m.screen.DrawTextCentered(m.screen.Height()/2+1, "Shrink the grid with '-' or resize the terminal")
		return
	}

	boxX := (m.screen.Width() - boxW) / 2
	boxY := availTop + (availH-boxH)/2
	m.screen.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			level := m.grid.At(r, c)
			x := boxX + 1 + c*m.cellWidth
			y := boxY + 1 + r
			switch {
			case level == 0 && m.showZeros:
				// Every zero at this point is a cell that just flashed
				// (or an untouched initial zero on step 0).
				m.screen.SetColored(x, y, '0', core.FlashColor)
			case level == 0:
				m.screen.SetColored(x, y, '·', core.ColorGray)
			default:
				m.screen.SetColored(x, y, rune('0'+level), core.EnergyColor(level))
			}
		}
	}
}

// renderHelp draws the bottom key hint line.
func (m *Model) renderHelp() {
	help := " +/- size  r reseed  p pause  [/] speed  z zeros  q quit"
	m.screen.DrawTextColored(0, m.screen.Height()-1, help, core.ColorGray)
}

// Run starts the Bubble Tea program for the animation.
func Run(store *storage.Store, cfg core.RuntimeConfig, anim config.Config) error {
	model := NewModel(store, cfg, anim)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
