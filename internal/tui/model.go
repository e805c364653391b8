package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/billbook/internal/common"
	"github.com/Veraticus/billbook/internal/ledger"
	"github.com/Veraticus/billbook/internal/model"
	"github.com/Veraticus/billbook/internal/tui/components"
	"github.com/Veraticus/billbook/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Pane is the part of the page that receives key presses.
type Pane int

// Panes in Tab order.
const (
	PaneForm Pane = iota
	PaneFilters
	PaneGrid
	paneCount
)

// Model holds the main TUI state.
type Model struct {
	theme    themes.Theme
	store    *ledger.Store
	clock    func() time.Time
	lastErr  error
	status   string
	keymap   KeyMap
	help     help.Model
	form     components.EntryFormModel
	filters  components.FilterBarModel
	grid     components.BillGridModel
	summary  components.SummaryPanelModel
	filtered []model.Bill
	config   Config
	pane     Pane
	width    int
	height   int
	quitting bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	if cfg.Store == nil {
		cfg.Store = ledger.NewStore(nil)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	m := Model{
		config:  cfg,
		theme:   cfg.Theme,
		store:   cfg.Store,
		clock:   cfg.Clock,
		keymap:  DefaultKeyMap(),
		help:    h,
		form:    components.NewEntryFormModel(cfg.Theme, cfg.Clock()),
		filters: components.NewFilterBarModel(cfg.Theme),
		grid:    components.NewBillGridModel(cfg.Theme, cfg.Columns),
		summary: components.NewSummaryPanelModel(cfg.Theme),
		width:   cfg.Width,
		height:  cfg.Height,
	}
	m.form.Focus()
	m.handleResize()
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.form.Focus()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, globalCmd := m.handleGlobalKeys(msg); handled {
			return m, globalCmd
		}
		cmd = m.updatePane(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case components.SubmitRequestedMsg:
		m.submit()

	default:
		m.form, cmd = m.form.Update(msg)
	}

	m.refresh()
	return m, cmd
}

// handleGlobalKeys processes keys that work in every pane.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keymap.Quit) && (m.pane != PaneForm || msg.String() == "esc"):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keymap.ToggleHelp) && m.pane != PaneForm:
		m.help.ShowAll = !m.help.ShowAll
		return true, nil

	case key.Matches(msg, m.keymap.NextPane):
		return true, m.setPane((m.pane + 1) % paneCount)

	case key.Matches(msg, m.keymap.PrevPane):
		return true, m.setPane((m.pane + paneCount - 1) % paneCount)
	}
	return false, nil
}

func (m *Model) setPane(p Pane) tea.Cmd {
	m.pane = p
	m.form.Blur()
	m.filters.Blur()
	m.grid.Blur()

	switch p {
	case PaneForm:
		return m.form.Focus()
	case PaneFilters:
		m.filters.Focus()
	case PaneGrid:
		m.grid.Focus()
	}
	return nil
}

func (m *Model) updatePane(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.pane {
	case PaneForm:
		m.form, cmd = m.form.Update(msg)
	case PaneFilters:
		m.filters, cmd = m.filters.Update(msg)
	case PaneGrid:
		m.grid, cmd = m.grid.Update(msg)
	}
	return cmd
}

// submit turns the form into a bill. Errors stay on the status line and
// leave the form untouched.
func (m *Model) submit() {
	draft, err := m.form.Draft()
	if err == nil {
		var bill model.Bill
		bill, err = draft.Submit(m.store, m.clock())
		if err == nil {
			m.form.SetDraft(draft)
			m.lastErr = nil
			m.status = fmt.Sprintf("Added %s (%s %s)", bill.Name, bill.Category.Label(), bill.Amount.StringFixed(2))
			return
		}
	}

	slog.Debug("Rejected bill entry", "error", err)
	m.lastErr = err
	m.status = common.UserMessage(err)
}

// refresh recomputes the filtered view from the store.
func (m *Model) refresh() {
	m.filtered = m.store.Filter(m.filters.Category(), m.filters.Recency(), m.clock())
	m.grid.SetBills(m.filtered)
	m.summary.SetSummary(ledger.Summarize(m.filtered))
}

// handleResize updates component sizes.
func (m *Model) handleResize() {
	formWidth := max(m.width/2-2, 30)
	sideWidth := max(m.width-formWidth-6, 30)

	m.form.Resize(formWidth)
	m.summary.Resize(sideWidth)
	m.help.Width = m.width

	// Title, top panels and footer take roughly fifteen lines.
	m.grid.Resize(m.width, max(m.height-15, 7))
}

// Filtered returns the bills currently shown in the grid.
func (m Model) Filtered() []model.Bill {
	return m.filtered
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Pane returns the focused pane.
func (m Model) Pane() Pane {
	return m.pane
}
