package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

type soundItem struct {
	name    string
	playing bool
}

func (s soundItem) Title() string {
	if s.playing {
		return "▶ " + s.name
	}
	return s.name
}
func (s soundItem) Description() string {
	if s.playing {
		return "playing"
	}
	return ""
}
func (s soundItem) FilterValue() string { return s.name }

type model struct {
	theme Theme
	deps  Deps

	board list.Model

	status       serverStatus
	statusKnown  bool
	lastAction   string
	lastErr      error
	libraryReady bool
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Sound board"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		board: l,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(cmdLoadLibrary(m.deps), cmdLoadStatus(m.deps))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.board.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case libraryLoadedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			if m.deps.Logger != nil {
				m.deps.Logger.Warn("library load failed", "error", msg.err)
			}
			return m, nil
		}
		m.lastErr = nil
		m.libraryReady = true
		return m, m.setSounds(msg.sounds)

	case statusLoadedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.status = msg.status
		m.statusKnown = true
		return m, m.refreshPlayingMarks()

	case callDoneMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			m.lastAction = fmt.Sprintf("%s failed", msg.cmd)
			if m.deps.Logger != nil {
				m.deps.Logger.Warn("call failed", "command", msg.cmd, "error", msg.err)
			}
			return m, nil
		}
		m.lastErr = nil
		m.lastAction = fmt.Sprintf("%s ok (%dms)", msg.cmd, msg.res.LatencyMS)
		// Server state changed, pick up the new status.
		return m, cmdLoadStatus(m.deps)

	case tea.KeyMsg:
		if m.board.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			if it, ok := m.board.SelectedItem().(soundItem); ok {
				return m, cmdInvoke(m.deps, domain.CommandTrigger, it.name)
			}
			return m, nil

		case "v":
			if it, ok := m.board.SelectedItem().(soundItem); ok {
				return m, cmdInvoke(m.deps, domain.CommandPreview, it.name)
			}
			return m, nil

		case "p":
			if m.statusKnown && m.status.Playing {
				return m, cmdInvoke(m.deps, domain.CommandPause, "")
			}
			return m, cmdInvoke(m.deps, domain.CommandPlay, "")

		case "r":
			return m, cmdInvoke(m.deps, domain.CommandReload, "")

		case "s":
			return m, tea.Batch(cmdLoadLibrary(m.deps), cmdLoadStatus(m.deps))
		}
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

func (m *model) setSounds(sounds []string) tea.Cmd {
	items := make([]list.Item, 0, len(sounds))
	for _, name := range sounds {
		items = append(items, soundItem{name: name, playing: m.isPlaying(name)})
	}
	return m.board.SetItems(items)
}

// refreshPlayingMarks rebuilds the board items so the playing markers
// track the latest status snapshot.
func (m *model) refreshPlayingMarks() tea.Cmd {
	names := make([]string, 0, len(m.board.Items()))
	for _, it := range m.board.Items() {
		if s, ok := it.(soundItem); ok {
			names = append(names, s.name)
		}
	}
	return m.setSounds(names)
}

func (m model) isPlaying(name string) bool {
	for _, s := range m.status.SoundsPlaying {
		if s == name {
			return true
		}
	}
	return false
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("Sinfonia") + "\n" +
		m.theme.Subtitle.Render(m.deps.ServerURL) + "\n"

	var statusLine string
	switch {
	case !m.statusKnown || !m.libraryReady:
		statusLine = m.theme.Help.Render("Status: connecting…")
	case m.status.Playing:
		statusLine = m.theme.Playing.Render(fmt.Sprintf("Status: playing (%d sounds)", len(m.status.SoundsPlaying)))
	case m.status.ThemeLoaded:
		statusLine = m.theme.Help.Render("Status: paused")
	default:
		statusLine = m.theme.Help.Render("Status: no theme loaded")
	}

	var errLine string
	if m.lastErr != nil {
		errLine = "\n" + m.theme.Error.Render("✗ "+m.lastErr.Error())
	} else if m.lastAction != "" {
		errLine = "\n" + m.theme.Help.Render(m.lastAction)
	}

	help := m.theme.Help.Render(strings.Join([]string{
		"enter trigger", "v preview", "p play/pause", "r reload", "s refresh", "/ search", "q quit",
	}, " • "))

	return wrap.Render(header + "\n" + statusLine + errLine + "\n\n" +
		m.theme.Card.Render(m.board.View()) + "\n" + help)
}
