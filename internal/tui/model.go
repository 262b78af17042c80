package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
	mdwlog "github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/timex"
	"github.com/msto63/gauss/internal/gauss/holidays"
	"github.com/msto63/gauss/internal/gauss/service"
)

// View represents different views in the TUI
type View int

const (
	ViewEval View = iota
	ViewFunctions
	ViewHolidays
)

const viewCount = 3

// Evaluator is the part of the service the REPL needs
type Evaluator interface {
	Call(name string, values ...any) (any, error)
	Functions() []service.FunctionInfo
	Holidays() []holidays.Holiday
}

// Entry is one evaluated input line, or a system notice when System is set
type Entry struct {
	Input  string
	Output string
	Err    error
	System bool
}

// ReloadMsg replaces the evaluator after a watched file changed. With Err
// set the previous evaluator is kept.
type ReloadMsg struct {
	Eval Evaluator
	Path string
	Err  error
}

// Model is the REPL model
type Model struct {
	// State
	view    View
	width   int
	height  int
	ready   bool
	loading bool

	// Components
	textarea textarea.Model
	viewport viewport.Model

	entries []Entry

	// recalled input lines, newest last
	history []string
	histPos int

	eval    Evaluator
	reloads <-chan ReloadMsg
	logger  *mdwlog.Logger
}

// NewModel creates a REPL over eval
func NewModel(eval Evaluator, logger *mdwlog.Logger) Model {
	if logger == nil {
		logger = mdwlog.Discard()
	}

	ta := textarea.New()
	ta.Placeholder = "Funktion und Argumente eingeben, z.B. getDateTime D+1:h=0:m=0"
	ta.Focus()
	ta.CharLimit = 1000
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	return Model{
		view:     ViewEval,
		textarea: ta,
		eval:     eval,
		logger:   logger.WithField("component", "repl"),
	}
}

// WithReloads makes the model swap its evaluator on messages from ch
func (m Model) WithReloads(ch <-chan ReloadMsg) Model {
	m.reloads = ch
	return m
}

// Entries returns the evaluated lines
func (m Model) Entries() []Entry {
	return m.entries
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, waitForReload(m.reloads))
}

// waitForReload delivers the next message from ch
func waitForReload(ch <-chan ReloadMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.view = (m.view + 1) % viewCount
			m.updateContent()
			return m, nil

		case "enter":
			if m.view != ViewEval || m.loading {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			m.history = append(m.history, input)
			m.histPos = len(m.history)
			m.loading = true
			return m, m.evaluate(input)

		case "up":
			if m.view == ViewEval && m.histPos > 0 {
				m.histPos--
				m.textarea.SetValue(m.history[m.histPos])
			}
			return m, nil

		case "down":
			if m.view == ViewEval && m.histPos < len(m.history) {
				m.histPos++
				if m.histPos == len(m.history) {
					m.textarea.Reset()
				} else {
					m.textarea.SetValue(m.history[m.histPos])
				}
			}
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-8)
			m.viewport.YPosition = 3
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 8
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.updateContent()

	case evalResponseMsg:
		m.loading = false
		m.entries = append(m.entries, msg.entry)
		m.updateContent()

	case ReloadMsg:
		m.applyReload(msg)
		cmds = append(cmds, waitForReload(m.reloads))
	}

	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	if m.view == ViewEval {
		s.WriteString(FocusedInputStyle.Render(m.textarea.View()))
		s.WriteString("\n")
	}
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m *Model) renderHeader() string {
	tabs := []string{"Auswerten", "Funktionen", "Feiertage"}
	var renderedTabs []string

	for i, tab := range tabs {
		if View(i) == m.view {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tab))
		}
	}

	title := TitleStyle.Render("gauss")
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m *Model) renderFooter() string {
	help := "Tab: Wechseln • ↑/↓: Verlauf • Ctrl+L: Leeren • Ctrl+C: Beenden"
	count := fmt.Sprintf("%d Auswertungen", len(m.entries))

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-len(count)-4)),
			count,
		),
	)
}

func (m *Model) updateContent() {
	var content string
	switch m.view {
	case ViewEval:
		content = m.renderEntries()
	case ViewFunctions:
		content = m.renderFunctions()
	case ViewHolidays:
		content = m.renderHolidays()
	}

	m.viewport.SetContent(content)
	if m.view == ViewEval {
		m.viewport.GotoBottom()
	} else {
		m.viewport.GotoTop()
	}
}

func (m *Model) renderEntries() string {
	if len(m.entries) == 0 {
		return SystemMessageStyle.Render("Gib einen Funktionsaufruf ein und drücke Enter. Argumente mit Leerzeichen in \"...\" setzen.")
	}

	var s strings.Builder
	for _, e := range m.entries {
		if e.System {
			if e.Err != nil {
				s.WriteString(RenderError(e.Err.Error()))
			} else {
				s.WriteString(SystemMessageStyle.Render(e.Output))
			}
			s.WriteString("\n\n")
			continue
		}
		s.WriteString(InputLineStyle.Render("> "))
		s.WriteString(e.Input)
		s.WriteString("\n")
		if e.Err != nil {
			s.WriteString(RenderError(e.Err.Error()))
		} else {
			s.WriteString(ResultStyle.Render(e.Output))
		}
		s.WriteString("\n\n")
	}
	return s.String()
}

func (m *Model) renderFunctions() string {
	var rows [][]string
	for _, fn := range m.eval.Functions() {
		rows = append(rows, []string{fn.Signature, fn.Description})
	}
	return RenderTable([]string{"Signatur", "Beschreibung"}, rows)
}

func (m *Model) renderHolidays() string {
	hs := m.eval.Holidays()
	if len(hs) == 0 {
		return SystemMessageStyle.Render("Keine Feiertage konfiguriert (calendar.holidays_file).")
	}

	rows := make([][]string, len(hs))
	for i, h := range hs {
		rows[i] = []string{h.Date.String(), h.Date.Weekday().String(), h.Name}
	}
	return RenderTable([]string{"Datum", "Wochentag", "Name"}, rows)
}

func (m *Model) applyReload(msg ReloadMsg) {
	name := filepath.Base(msg.Path)
	switch {
	case msg.Err != nil:
		m.logger.Warn("reload failed, keeping previous configuration", mdwlog.Fields{
			"file": msg.Path,
			"code": mdwerror.GetCode(msg.Err),
		})
		m.entries = append(m.entries, Entry{System: true, Err: mdwerror.Wrap(msg.Err, name+" nicht neu geladen")})
	case msg.Eval != nil:
		m.eval = msg.Eval
		m.logger.Info("configuration reloaded", mdwlog.Field("file", msg.Path))
		m.entries = append(m.entries, Entry{System: true, Output: name + " neu geladen"})
	}
	m.updateContent()
}

// evalResponseMsg carries the result of an evaluation
type evalResponseMsg struct {
	entry Entry
}

// evaluate runs one input line against the evaluator
func (m *Model) evaluate(input string) tea.Cmd {
	eval, logger := m.eval, m.logger
	return func() tea.Msg {
		entry := Entry{Input: input}

		tokens, err := Tokenize(input)
		if err != nil {
			entry.Err = err
			return evalResponseMsg{entry: entry}
		}

		values := make([]any, len(tokens)-1)
		for i, t := range tokens[1:] {
			values[i] = t
		}

		res, err := eval.Call(tokens[0], values...)
		if err != nil {
			logger.Debug("evaluation failed", mdwlog.Fields{
				"function": tokens[0],
				"code":     mdwerror.GetCode(err),
			})
			entry.Err = err
			return evalResponseMsg{entry: entry}
		}

		entry.Output = formatResult(res)
		return evalResponseMsg{entry: entry}
	}
}

func formatResult(v any) string {
	switch v := v.(type) {
	case timex.Temporal:
		return v.String()
	case []string:
		if len(v) == 0 {
			return "[]"
		}
		return strings.Join(v, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// Run starts the REPL on the terminal. reloads may be nil.
func Run(eval Evaluator, logger *mdwlog.Logger, reloads <-chan ReloadMsg) error {
	p := tea.NewProgram(NewModel(eval, logger).WithReloads(reloads), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
