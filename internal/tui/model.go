// Package tui implements the interactive course catalog menu on top of
// BubbleTea. The model owns the catalog and drives loads, listings, and
// searches; all catalog mutations happen on the update loop, so the
// single-caller contract of the catalog holds.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abcu/advisor/internal/catalog"
	"github.com/abcu/advisor/internal/config"
	"github.com/abcu/advisor/internal/course"
	"github.com/abcu/advisor/internal/history"
	"github.com/abcu/advisor/internal/loader"
	"github.com/abcu/advisor/internal/query"
)

// Screen identifies which view the menu is showing.
type Screen int

const (
	// ScreenMenu is the numbered main menu.
	ScreenMenu Screen = iota
	// ScreenFilePrompt asks for the course data file name.
	ScreenFilePrompt
	// ScreenSearchMenu is the numbered search-category submenu.
	ScreenSearchMenu
	// ScreenSearchPrompt asks for the search text.
	ScreenSearchPrompt
	// ScreenResults shows a scrollable course list.
	ScreenResults
)

// menuChoice pairs a menu digit with its label. Digits mirror the classic
// catalog menu, so 9 quits rather than 4.
type menuChoice struct {
	digit string
	label string
}

var mainChoices = []menuChoice{
	{"1", "Load data to application"},
	{"2", "Display courses (alphanumeric)"},
	{"3", "Search for individual course"},
	{"9", "Quit application"},
}

var searchChoices = []menuChoice{
	{"1", "Course Name"},
	{"2", "Course Title"},
	{"3", "Prerequisite"},
}

var searchCategories = []query.Category{query.ByID, query.ByTitle, query.ByPrerequisite}

// loadedMsg carries the outcome of a file read back into the update loop.
// The catalog inject happens in the handler, on the update goroutine.
type loadedMsg struct {
	report  loader.Report
	courses []*course.Course
	err     error
}

// fileChangedMsg reports that the watched data file settled after an edit.
type fileChangedMsg struct{ path string }

// Model is the root BubbleTea model for the catalog menu.
type Model struct {
	Catalog *catalog.Catalog
	Cfg     config.Config
	History *history.Store // nil disables load auditing
	Keys    KeyMap

	screen     Screen
	cursor     int
	category   query.Category
	input      textinput.Model
	results    viewport.Model
	resultsFor string // header above the results view
	status     string
	statusErr  bool
	dataLoaded bool
	width      int
	height     int

	watch <-chan string // non-nil when --watch is on
}

// New creates a menu model around an empty catalog.
func New(cfg config.Config, store *history.Store) Model {
	cap := cfg.InitialCapacity
	if cap <= 0 {
		cap = catalog.DefaultCapacity
	}

	input := textinput.New()
	input.CharLimit = 256
	input.Width = 48

	return Model{
		Catalog: catalog.NewWithCapacity(cap),
		Cfg:     cfg,
		History: store,
		Keys:    DefaultKeyMap(),
		input:   input,
		results: viewport.New(80, 20),
	}
}

// WithWatcher wires a data-file change channel into the model; each settled
// change triggers a reload of the configured data file.
func (m Model) WithWatcher(changes <-chan string) Model {
	m.watch = changes
	return m
}

// Init waits for watcher events when watching is enabled.
func (m Model) Init() tea.Cmd {
	if m.watch != nil {
		return waitForChange(m.watch)
	}
	return nil
}

func waitForChange(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return fileChangedMsg{path: path}
	}
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.Width = msg.Width - 2
		if h := msg.Height - 6; h > 4 {
			m.results.Height = h
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loadedMsg:
		return m.handleLoaded(msg)

	case fileChangedMsg:
		m.status = fmt.Sprintf("%s changed; reloading", msg.path)
		m.statusErr = false
		return m, tea.Batch(m.injectCmd(msg.path), waitForChange(m.watch))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text prompts swallow everything except enter/esc/ctrl+c.
	if m.screen == ScreenFilePrompt || m.screen == ScreenSearchPrompt {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.screen = ScreenMenu
			m.status = ""
			return m, nil
		case "enter":
			return m.submitPrompt()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Back):
		if m.screen != ScreenMenu {
			m.screen = ScreenMenu
			m.status = ""
		}
		return m, nil
	}

	switch m.screen {
	case ScreenMenu:
		return m.handleMenuKey(msg)
	case ScreenSearchMenu:
		return m.handleSearchMenuKey(msg)
	case ScreenResults:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.Keys.Down):
		if m.cursor < len(mainChoices)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.Keys.Enter):
		return m.selectMain(mainChoices[m.cursor].digit)
	}

	// Direct digit selection, like the classic numbered menu.
	for _, c := range mainChoices {
		if msg.String() == c.digit {
			return m.selectMain(c.digit)
		}
	}
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		m.status = fmt.Sprintf("%s is not a valid menu option", s)
		m.statusErr = true
	}
	return m, nil
}

func (m Model) selectMain(digit string) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false
	switch digit {
	case "1":
		m.screen = ScreenFilePrompt
		m.input.SetValue(m.Cfg.DataFile)
		m.input.Focus()
		return m, textinput.Blink
	case "2":
		if !m.dataLoaded {
			m.status = "Please load data first before displaying courses."
			m.statusErr = true
			return m, nil
		}
		prefix := m.Cfg.DisplayPrefix
		m.showResults(fmt.Sprintf("%s Courses", prefix), query.WithPrefix(m.Catalog, prefix))
		return m, nil
	case "3":
		if !m.dataLoaded {
			m.status = "Please load data first before searching courses."
			m.statusErr = true
			return m, nil
		}
		m.screen = ScreenSearchMenu
		m.cursor = 0
		return m, nil
	case "9":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleSearchMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.Keys.Down):
		if m.cursor < len(searchChoices)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.Keys.Enter):
		return m.selectSearch(m.cursor)
	}

	for i, c := range searchChoices {
		if msg.String() == c.digit {
			return m.selectSearch(i)
		}
	}
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		m.status = "Invalid selection"
		m.statusErr = true
	}
	return m, nil
}

func (m Model) selectSearch(idx int) (tea.Model, tea.Cmd) {
	m.category = searchCategories[idx]
	m.screen = ScreenSearchPrompt
	m.input.SetValue("")
	m.input.Focus()
	m.status = ""
	m.statusErr = false
	return m, textinput.Blink
}

func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	m.input.Blur()

	switch m.screen {
	case ScreenFilePrompt:
		if text == "" {
			m.status = "Invalid file name"
			m.statusErr = true
			m.screen = ScreenMenu
			return m, nil
		}
		m.status = "Loading " + text + "..."
		m.statusErr = false
		m.screen = ScreenMenu
		return m, m.injectCmd(text)

	case ScreenSearchPrompt:
		if text == "" {
			m.status = "Search criteria cannot be empty."
			m.statusErr = true
			m.screen = ScreenSearchMenu
			return m, nil
		}
		matches, err := query.Search(m.Catalog, m.category, text)
		if err != nil {
			m.status = err.Error()
			m.statusErr = true
			m.screen = ScreenSearchMenu
			return m, nil
		}
		m.showResults(fmt.Sprintf("Search: %s", text), matches)
		return m, nil
	}
	return m, nil
}

// handleLoaded applies a finished load to the catalog and records it.
func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = msg.err.Error()
		m.statusErr = true
		return m, nil
	}

	stats, err := m.Catalog.Inject(msg.courses)
	if err != nil {
		m.status = fmt.Sprintf("%s: %v", msg.report.File, err)
		m.statusErr = true
		return m, nil
	}

	m.dataLoaded = true
	m.statusErr = false
	m.status = fmt.Sprintf("Loaded %d course(s) from %s", stats.Loaded, msg.report.File)
	if skipped := stats.Skipped + len(msg.report.BadLines); skipped > 0 {
		m.status += fmt.Sprintf(" (%d skipped)", skipped)
	}

	if m.History == nil {
		return m, nil
	}
	store, report := m.History, msg.report
	loaded, dup := stats.Loaded, stats.Skipped
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// Best effort; history must never break the menu.
		_ = store.Record(ctx, report.File, loaded, dup, len(report.BadLines))
		return nil
	}
}

// injectCmd reads the file in a command and hands the parsed courses back
// as a loadedMsg.
func (m Model) injectCmd(path string) tea.Cmd {
	delimiter := m.Cfg.Delimiter
	return func() tea.Msg {
		courses, badLines, err := loader.ReadFile(path, delimiter)
		return loadedMsg{
			report:  loader.Report{File: path, BadLines: badLines},
			courses: courses,
			err:     err,
		}
	}
}

// showResults fills the results viewport and switches to the results screen.
func (m *Model) showResults(header string, matches []*course.Course) {
	var b strings.Builder
	if len(matches) == 0 {
		b.WriteString("No matching courses found.\n")
	} else {
		for _, c := range matches {
			b.WriteString(c.String())
			b.WriteByte('\n')
		}
	}
	m.resultsFor = header
	m.results.SetContent(b.String())
	m.results.GotoTop()
	m.screen = ScreenResults
}
