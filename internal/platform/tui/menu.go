package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/octoterm/octoflash/internal/config"
	"github.com/octoterm/octoflash/internal/core"
	"github.com/octoterm/octoflash/internal/pattern"
	"github.com/octoterm/octoflash/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the seed-pattern picker.
type MenuModel struct {
	items    []pattern.Info
	cursor   int
	width    int
	height   int
	keys     *KeyMapper
	quitting bool
	selected *pattern.Info // Set when the user confirms a pattern
}

// NewMenuModel creates a pattern picker listing all registered patterns.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  pattern.List(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, isQuit := m.keys.MapKey(msg)
		if isQuit || action == core.ActionBack {
			m.quitting = true
			return m, tea.Quit
		}
		switch action {
		case core.ActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case core.ActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case core.ActionConfirm:
			if len(m.items) > 0 {
				sel := m.items[m.cursor]
				m.selected = &sel
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the pattern menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerLine(menuTitleStyle.Render("OCTOFLASH"), m.width))
	b.WriteString("\n")
	b.WriteString(centerLine(menuDimStyle.Render("pick a seed pattern"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-10s %s", item.Name, item.Description)
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + line[2:])
		}
		b.WriteString(centerLine(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerLine(menuDimStyle.Render("enter select  ↑/↓ move  q quit"), m.width))
	return b.String()
}

func centerLine(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text
}

// SessionModel drives one terminal session: a pattern menu followed
// by the animation, with esc returning to the menu. Used by the SSH
// server so every connection gets the full flow.
type SessionModel struct {
	store  *storage.Store
	cfg    core.RuntimeConfig
	anim   config.Config
	menu   MenuModel
	field  Model
	inMenu bool
}

// NewSessionModel creates a session starting at the pattern menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, anim config.Config) SessionModel {
	return SessionModel{
		store:  store,
		cfg:    cfg,
		anim:   anim,
		menu:   NewMenuModel(cfg),
		inMenu: true,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the menu or the animation.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.ScreenW = size.Width
		m.cfg.ScreenH = size.Height
	}

	if m.inMenu {
		updated, cmd := m.menu.Update(msg)
		m.menu = updated.(MenuModel)

		if m.menu.selected != nil {
			// Launch the animation with the chosen pattern. A fresh
			// seed per launch keeps repeat runs varied.
			cfg := m.cfg
			cfg.Pattern = m.menu.selected.Name
			cfg.Seed = 0
			m.field = NewModel(m.store, cfg, m.anim)
			m.inMenu = false
			return m, m.field.Init()
		}
		return m, cmd
	}

	// Esc/b leaves the animation and returns to the menu.
	if key, ok := msg.(tea.KeyMsg); ok {
		if action, _ := m.field.keys.MapKey(key); action == core.ActionBack {
			m.field.saveRun()
			m.menu = NewMenuModel(m.cfg)
			m.inMenu = true
			return m, nil
		}
	}

	updated, cmd := m.field.Update(msg)
	m.field = updated.(Model)
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.inMenu {
		return m.menu.View()
	}
	return m.field.View()
}
