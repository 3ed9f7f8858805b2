package tui

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/houselist/internal/currency"
	"github.com/rshade/houselist/internal/listing"
	"github.com/rshade/houselist/internal/logging"
	"github.com/rshade/houselist/internal/state"
)

// DefaultTitle is shown above the listing table when no title is set.
const DefaultTitle = listing.DefaultTitle

// AddHouseLabel is the label of the append button.
const AddHouseLabel = "Add House"

// EmptyMessage is shown under the table when there are no houses.
const EmptyMessage = "No houses on the market"

// Layout constants.
const (
	defaultTableHeight = 10
	minTableHeight     = 3
	// chromeHeight is the number of lines used by title, button, status and help.
	chromeHeight = 7
)

// ActivateMsg (re)activates a HouseList with an initial collection.
// Only the first activation seeds the list.
type ActivateMsg struct {
	Houses []listing.Record
}

// AddHouseMsg triggers the Add House action.
type AddHouseMsg struct{}

type houseListKeyMap struct {
	Add  key.Binding
	Quit key.Binding
}

func defaultHouseListKeys() houseListKeyMap {
	return houseListKeyMap{
		Add: key.NewBinding(
			key.WithKeys("a", "enter", " "),
			key.WithHelp("a/enter", "add house"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HouseList is the listing container. It owns the collection of houses in a
// state cell, renders one HouseRow per record and appends a fixed house on
// the Add House action. Every change to the cell recomputes the rows.
//
// HouseList implements tea.Model.
type HouseList struct {
	ctx       context.Context
	log       zerolog.Logger
	houses    *state.Cell[[]listing.Record]
	formatter currency.Formatter
	title     string

	table    table.Model
	keys     houseListKeyMap
	renders   int
	quitting  bool
	justAdded bool
	width    int
	height   int

	unsubscribe func()
}

// NewHouseList creates a HouseList and activates it with initial.
// The ctx logger (see logging.FromContext) receives diagnostic output.
func NewHouseList(ctx context.Context, initial []listing.Record, f currency.Formatter) *HouseList {
	m := &HouseList{
		ctx:       ctx,
		log:       logging.ComponentLogger(*logging.FromContext(ctx), "house_list"),
		houses:    state.NewCell[[]listing.Record](),
		formatter: f,
		title:     DefaultTitle,
		keys:      defaultHouseListKeys(),
	}

	m.table = table.New(
		table.WithColumns(HouseColumns()),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Cell = TableCellStyle
	s.Selected = TableSelectedStyle
	m.table.SetStyles(s)

	m.unsubscribe = m.houses.Subscribe(m.recompute)
	m.Activate(initial)
	return m
}

// SetTitle changes the header text. An empty title restores DefaultTitle.
func (m *HouseList) SetTitle(title string) {
	if title == "" {
		title = DefaultTitle
	}
	m.title = title
}

// Formatter returns the price formatter handed to each HouseRow.
func (m *HouseList) Formatter() currency.Formatter {
	return m.formatter
}

// Title returns the header text.
func (m *HouseList) Title() string {
	return m.title
}

// Activate seeds the list with houses on the first call and reports whether
// it did. Later calls leave the current houses untouched.
func (m *HouseList) Activate(houses []listing.Record) bool {
	seeded := m.houses.Seed(listing.Clone(houses))
	m.log.Debug().
		Ctx(m.ctx).
		Str("operation", "activate").
		Bool("seeded", seeded).
		Int("initial_count", len(houses)).
		Int("record_count", m.Len()).
		Msg("HouseList activated")
	return seeded
}

// Seeded reports whether the list has been activated.
func (m *HouseList) Seeded() bool {
	return m.houses.Seeded()
}

// AddHouse replaces the houses with the current houses plus listing.NewHouse()
// and notifies every subscriber. It cannot fail.
func (m *HouseList) AddHouse() {
	m.houses.Update(func(current []listing.Record) []listing.Record {
		return listing.Append(current, listing.NewHouse())
	})
	m.table.GotoBottom()
	m.justAdded = true
}

// Records returns a copy of the current houses.
func (m *HouseList) Records() []listing.Record {
	return listing.Clone(m.houses.Get())
}

// Len returns the number of houses.
func (m *HouseList) Len() int {
	return len(m.houses.Get())
}

// Rows returns the rendered table rows.
func (m *HouseList) Rows() []table.Row {
	return m.table.Rows()
}

// Renders returns how many times the rows have been recomputed.
func (m *HouseList) Renders() int {
	return m.renders
}

// Subscribe registers fn to receive a copy of the houses after every change.
func (m *HouseList) Subscribe(fn func([]listing.Record)) (unsubscribe func()) {
	return m.houses.Subscribe(func(houses []listing.Record) {
		fn(listing.Clone(houses))
	})
}

// Close detaches the list's own row recomputation from its state.
func (m *HouseList) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// recompute rebuilds the rows from houses and reports the new state.
func (m *HouseList) recompute(houses []listing.Record) {
	m.renders++
	m.table.SetRows(HouseRows(houses, m.formatter))

	evt := m.log.Debug().
		Ctx(m.ctx).
		Str("operation", "render").
		Int("render", m.renders).
		Uint64("version", m.houses.Version()).
		Int("record_count", len(houses))
	if stateJSON, err := json.Marshal(houses); err == nil {
		evt = evt.RawJSON("house_state", stateJSON)
	}
	evt.Msg("HouseList fires")
}

// Init initializes the model.
func (m *HouseList) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *HouseList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-chromeHeight, minTableHeight))
		return m, nil

	case ActivateMsg:
		m.Activate(msg.Houses)
		return m, nil

	case AddHouseMsg:
		m.AddHouse()
		return m, nil

	case tea.KeyMsg:
		m.justAdded = false
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Add):
			m.AddHouse()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the header, the listing table, the Add House button and key help.
func (m *HouseList) View() string {
	if m.quitting {
		return ""
	}
	return m.render(m.table.View(), true)
}

// StaticView renders every row without key help, for non-interactive output.
// It uses its own table so the interactive scroll position and cursor are
// neither read nor changed.
func (m *HouseList) StaticView() string {
	headerHeight := lipgloss.Height(TableHeaderStyle.Render(ColumnID))
	t := table.New(
		table.WithColumns(HouseColumns()),
		table.WithRows(m.Rows()),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Cell = TableCellStyle
	s.Selected = TableCellStyle
	t.SetStyles(s)
	t.SetHeight(m.Len() + headerHeight)

	return m.render(t.View(), false)
}

func (m *HouseList) render(tableView string, interactive bool) string {
	button := ButtonStyle.Render(AddHouseLabel)
	if interactive && m.justAdded {
		button = ButtonActiveStyle.Render(AddHouseLabel)
	}

	sections := []string{
		HeaderStyle.Render(m.title),
		"",
		tableView,
	}
	if m.Len() == 0 {
		sections = append(sections, InfoStyle.Render(EmptyMessage))
	}
	sections = append(sections, "", button)
	if interactive {
		sections = append(sections, "", m.statusView(), m.helpView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *HouseList) statusView() string {
	return LabelStyle.Render("Houses: ") + ValueStyle.Render(strconv.Itoa(m.Len()))
}

func (m *HouseList) helpView() string {
	parts := []string{
		m.keys.Add.Help().Key + ": " + m.keys.Add.Help().Desc,
		"↑/↓: move",
		m.keys.Quit.Help().Key + ": " + m.keys.Quit.Help().Desc,
	}
	return SubtleStyle.Render(strings.Join(parts, " • "))
}
