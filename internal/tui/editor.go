// Package tui provides the interactive ramp key editor for rampctl
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/metaramp/rampctl/internal/keyslot"
)

// editorMode identifies what the keyboard is currently driving.
type editorMode int

const (
	modeBrowse editorMode = iota
	modeNewKey
	modeEditPosition
	modeEditColor
)

// PersistFunc saves the manager's flags back to the ramp document.
// Nil for unsaved in-memory sessions.
type PersistFunc func(keyslot.Config) error

// keyItem implements list.Item for one ramp key.
type keyItem struct {
	slot keyslot.Slot
}

func (i keyItem) Title() string {
	if keyslot.Reserved(i.slot.Index) {
		return fmt.Sprintf("Key %d (endpoint)", i.slot.Index)
	}
	return fmt.Sprintf("Key %d", i.slot.Index)
}

func (i keyItem) Description() string {
	hex := ColorHex(i.slot.Color)
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
	armed := "locked"
	if i.slot.Deletable {
		armed = "armed"
	}
	return fmt.Sprintf("%s %s | pos %.3f | delete %s", swatch, hex, i.slot.Position, armed)
}

func (i keyItem) FilterValue() string {
	return fmt.Sprintf("Key %d", i.slot.Index)
}

// ColorHex formats a key color as a hex string, alpha dropped.
func ColorHex(c keyslot.Color) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// ParseColor parses a #rrggbb string into a key color with full alpha.
func ParseColor(s string) (keyslot.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return keyslot.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return keyslot.Color{R: c.R, G: c.G, B: c.B, A: 1.0}, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the ramp key editor
type Model struct {
	manager *keyslot.Manager
	persist PersistFunc

	list  list.Model
	input textinput.Model
	mode  editorMode

	rampName string
	status   string
	quitting bool
	err      error

	width  int
	height int
}

// NewEditor creates an editor over a keyslot manager. rampName is used
// in the title; persist may be nil for unsaved sessions.
func NewEditor(m *keyslot.Manager, rampName string, persist PersistFunc) (Model, error) {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(nil, delegate, 80, 20)
	l.Title = editorTitle(rampName, m.Config())
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle

	input := textinput.New()
	input.Placeholder = "0.5"
	input.CharLimit = 16
	input.Width = 20

	model := Model{
		manager:  m,
		persist:  persist,
		list:     l,
		input:    input,
		rampName: rampName,
	}
	if err := model.reload(); err != nil {
		return Model{}, err
	}
	return model, nil
}

func editorTitle(rampName string, cfg keyslot.Config) string {
	name := rampName
	if name == "" {
		name = "(unsaved)"
	}
	flags := []string{}
	if cfg.SortOnChange {
		flags = append(flags, "sort-on-change")
	}
	if cfg.DeleteEnabled {
		flags = append(flags, "delete")
	}
	if len(flags) == 0 {
		return fmt.Sprintf("rampctl - %s", name)
	}
	return fmt.Sprintf("rampctl - %s [%s]", name, strings.Join(flags, " "))
}

// reload refreshes the list items from the manager, keeping the cursor.
func (m *Model) reload() error {
	slots, err := m.manager.Slots()
	if err != nil {
		return err
	}

	items := make([]list.Item, len(slots))
	for i, slot := range slots {
		items[i] = keyItem{slot: slot}
	}

	cursor := m.list.Index()
	m.list.SetItems(items)
	if cursor >= len(items) {
		cursor = len(items) - 1
	}
	if cursor >= 0 {
		m.list.Select(cursor)
	}
	m.list.Title = editorTitle(m.rampName, m.manager.Config())
	return nil
}

// selectedSlot returns the slot under the cursor.
func (m *Model) selectedSlot() (keyslot.Slot, bool) {
	item, ok := m.list.SelectedItem().(keyItem)
	if !ok {
		return keyslot.Slot{}, false
	}
	return item.slot, true
}

// saveConfig persists the manager flags when a persister is wired.
func (m *Model) saveConfig() {
	if m.persist == nil {
		return
	}
	if err := m.persist(m.manager.Config()); err != nil {
		m.status = fmt.Sprintf("failed to save flags: %v", err)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "a":
		m.mode = modeNewKey
		m.input.Placeholder = "0.5"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "new key position"
		return m, textinput.Blink

	case "d":
		slot, ok := m.selectedSlot()
		if !ok {
			return m, nil
		}
		deleted, err := m.manager.DeleteKey(slot.Index)
		switch {
		case err != nil:
			m.status = err.Error()
		case !deleted:
			m.status = fmt.Sprintf("key %d is a reserved endpoint", slot.Index)
		default:
			m.status = fmt.Sprintf("deleted key %d", slot.Index)
			if err := m.reload(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, nil

	case "s":
		if !m.manager.Config().SortOnChange {
			m.status = "sort-on-change is off (press S to enable)"
			return m, nil
		}
		if err := m.manager.Sort(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = "keys sorted by position"
		if err := m.reload(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, nil

	case "S":
		m.manager.SetSortOnChange(!m.manager.Config().SortOnChange)
		m.saveConfig()
		if m.manager.Config().SortOnChange {
			m.status = "sort-on-change enabled"
		} else {
			m.status = "sort-on-change disabled"
		}
		if err := m.reload(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, nil

	case "e":
		enabled := !m.manager.Config().DeleteEnabled
		if err := m.manager.SetDeleteEnabled(enabled); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.saveConfig()
		if enabled {
			m.status = "delete controls armed"
		} else {
			m.status = "delete controls locked"
		}
		if err := m.reload(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, nil

	case "enter":
		slot, ok := m.selectedSlot()
		if !ok {
			return m, nil
		}
		m.mode = modeEditPosition
		m.input.Placeholder = fmt.Sprintf("%.3f", slot.Position)
		m.input.SetValue("")
		m.input.Focus()
		m.status = fmt.Sprintf("position for key %d", slot.Index)
		return m, textinput.Blink

	case "c":
		slot, ok := m.selectedSlot()
		if !ok {
			return m, nil
		}
		m.mode = modeEditColor
		m.input.Placeholder = ColorHex(slot.Color)
		m.input.SetValue("")
		m.input.Focus()
		m.status = fmt.Sprintf("hex color for key %d", slot.Index)
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		m.status = ""
		return m, nil

	case "enter":
		value := m.input.Value()
		mode := m.mode
		m.mode = modeBrowse
		m.input.Blur()

		if err := m.commit(mode, value); err != nil {
			m.status = err.Error()
			return m, nil
		}
		if err := m.reload(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commit applies a finished input to the manager.
func (m *Model) commit(mode editorMode, value string) error {
	switch mode {
	case modeNewKey:
		pos, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("invalid position %q", value)
		}
		idx, err := m.manager.AddKey(pos)
		if err != nil {
			return err
		}
		m.status = fmt.Sprintf("added key %d", idx)

	case modeEditPosition:
		slot, ok := m.selectedSlot()
		if !ok {
			return nil
		}
		pos, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("invalid position %q", value)
		}
		if err := m.manager.SetPosition(slot.Index, pos); err != nil {
			return err
		}
		m.status = fmt.Sprintf("key %d moved", slot.Index)

	case modeEditColor:
		slot, ok := m.selectedSlot()
		if !ok {
			return nil
		}
		c, err := ParseColor(value)
		if err != nil {
			return err
		}
		if err := m.manager.SetColor(slot.Index, c); err != nil {
			return err
		}
		m.status = fmt.Sprintf("key %d recolored", slot.Index)
	}
	return nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")

	if m.mode != modeBrowse {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString(" > ")
		b.WriteString(m.input.View())
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}

	b.WriteString(helpStyle.Render(
		"\na add | d delete | enter position | c color | s sort | S sort-on-change | e delete toggle | q quit"))
	return b.String()
}

// Err returns the error that terminated the editor, if any.
func (m Model) Err() error {
	return m.err
}

// RunEditor runs the editor until the user quits.
func RunEditor(manager *keyslot.Manager, rampName string, persist PersistFunc) error {
	model, err := NewEditor(manager, rampName, persist)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
