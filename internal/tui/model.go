// Package tui hosts the form list in a bubbletea terminal program.
package tui

import (
	"strings"
	"time"

	"formkeep/internal/i18n"
	"formkeep/internal/screen"
	"formkeep/internal/tui/styles"
	"formkeep/internal/watch"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type resumeMsg struct{}

type noticeExpiredMsg struct {
	seq int
}

// RootsChangedMsg reports that a root changed on disk.
type RootsChangedMsg struct {
	Change watch.Change
}

// Options wires a Model.
type Options struct {
	Roots     screen.Config
	Store     screen.Store
	Text      *i18n.Catalog
	Styles    styles.Styles
	NotifyFor time.Duration
	Changes   <-chan watch.Change
}

// Model is the tea.Model of the form list.
type Model struct {
	screen *screen.Screen
	view   *termView
	text   *i18n.Catalog

	keys     KeyMap
	help     help.Model
	styles   styles.Styles
	showHelp bool

	cursor    int
	notifyFor time.Duration
	changes   <-chan watch.Change
	width     int
	quitting  bool
}

// New builds the model. The list is read when the program starts.
func New(opts Options) *Model {
	if opts.Text == nil {
		opts.Text = i18n.NewCatalog("en")
	}
	v := newTermView()
	return &Model{
		screen:    screen.New(opts.Roots, opts.Store, v, v, opts.Text),
		view:      v,
		text:      opts.Text,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    opts.Styles,
		notifyFor: opts.NotifyFor,
		changes:   opts.Changes,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return resumeMsg{} },
		waitForChange(m.changes),
	)
}

func waitForChange(ch <-chan watch.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return RootsChangedMsg{Change: c}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	seq := m.view.noticeSeq
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case resumeMsg, tea.FocusMsg:
		m.screen.Resume()
	case tea.BlurMsg:
		m.screen.Pause()
	case RootsChangedMsg:
		m.screen.Reload()
		cmds = append(cmds, waitForChange(m.changes))
	case noticeExpiredMsg:
		if msg.seq == m.view.noticeSeq {
			m.view.notice = ""
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if d := m.view.openDialog(); d != nil {
			cmds = append(cmds, m.handleDialogKey(d, msg))
		} else {
			cmds = append(cmds, m.handleListKey(msg))
		}
	}

	m.clampCursor()
	if m.view.noticeSeq != seq {
		cmds = append(cmds, m.expireNotice(m.view.noticeSeq))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.screen.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.screen.Select(m.cursor)
		m.view.choice = m.screen.Selected()
	case key.Matches(msg, m.keys.Delete):
		m.screen.MenuSelected(screen.MenuDelete)
	case key.Matches(msg, m.keys.Refresh):
		m.screen.Resume()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return nil
}

// handleDialogKey answers the open confirmation. Esc is not bound; the
// dialog only closes through its buttons.
func (m *Model) handleDialogKey(d *termDialog, msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()
	case key.Matches(msg, m.keys.Yes):
		d.press(true)
	case key.Matches(msg, m.keys.No):
		d.press(false)
	case key.Matches(msg, m.keys.Toggle):
		d.focusNo = !d.focusNo
	case key.Matches(msg, m.keys.Press):
		d.press(!d.focusNo)
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.screen.Pause()
	m.quitting = true
	return tea.Quit
}

func (m *Model) expireNotice(seq int) tea.Cmd {
	if m.notifyFor <= 0 {
		return nil
	}
	return tea.Tick(m.notifyFor, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m *Model) clampCursor() {
	n := m.screen.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Tab.Render(m.view.tabs[screen.TabID]))
	sb.WriteString("\n")

	if m.view.empty || len(m.view.names) == 0 {
		sb.WriteString(s.Empty.Render(m.text.NoItems()))
		sb.WriteString("\n")
	}
	for i, name := range m.view.names {
		mark := "( )"
		if i == m.view.choice {
			mark = s.Checked.Render("(•)")
		}
		row := s.Row.Render(name)
		if i == m.cursor {
			row = s.Cursor.Render(name)
		}
		sb.WriteString(mark + " " + row + "\n")
	}

	if d := m.view.openDialog(); d != nil {
		sb.WriteString("\n")
		sb.WriteString(m.renderDialog(d))
		sb.WriteString("\n")
	}

	if m.view.notice != "" {
		sb.WriteString("\n")
		sb.WriteString(s.Notice.Render(m.view.notice))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.view.openDialog() != nil {
		sb.WriteString(m.help.View(dialogKeys{m.keys}))
	} else {
		sb.WriteString(m.help.View(m.keys))
	}
	return s.App.Render(sb.String())
}

func (m *Model) renderDialog(d *termDialog) string {
	s := m.styles
	yes, no := s.ActiveBtn.Render(d.yes), s.Button.Render(d.no)
	if d.focusNo {
		yes, no = s.Button.Render(d.yes), s.ActiveBtn.Render(d.no)
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		d.message,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, yes, " ", no),
	)
	return s.Dialog.Render(body)
}

// Screen exposes the hosted screen.
func (m *Model) Screen() *screen.Screen {
	return m.screen
}

// Run starts the program on the alternate screen. Focus reports drive
// Resume and Pause.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}
