// Package tui is the terminal gallery: category tabs over the portfolio, a
// lightbox viewer, and persisted theme and background preferences.
package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/internal/lightbox"
)

const heading = "Portfolio"

// Loader fetches the items of one category.
type Loader func(ctx context.Context, category domain.PortfolioCategory) ([]domain.PortfolioItem, error)

// PreferenceSaver persists display preferences.
type PreferenceSaver interface {
	Save(p domain.Preferences) error
}

type loadedMsg struct {
	gen   int
	items []domain.PortfolioItem
	err   error
}

type scrambleMsg struct{}

type Model struct {
	ctx   context.Context
	load  Loader
	saver PreferenceSaver

	prefs  domain.Preferences
	styles styles
	keys   keyMap
	help   help.Model
	spin   spinner.Model

	active  int
	gen     int
	loading bool
	items   []domain.PortfolioItem
	cursor  int
	err     error

	viewer *lightbox.Lightbox
	locked bool

	frame int
	title string
	rng   *rand.Rand

	width int
}

// New builds the gallery model. saver may be nil, in which case preference
// changes last only for the session.
func New(ctx context.Context, load Loader, prefs domain.Preferences, saver PreferenceSaver) *Model {
	m := &Model{
		ctx:    ctx,
		load:   load,
		saver:  saver,
		prefs:  prefs,
		styles: newStyles(prefs.Theme),
		keys:   defaultKeys(),
		help:   help.New(),
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.viewer = lightbox.New(0, func(locked bool) { m.locked = locked })
	m.title, _ = Scramble(heading, 0, m.rng)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.spin.Tick, scrambleTick())
}

// Category is the active tab.
func (m *Model) Category() domain.PortfolioCategory {
	return domain.PortfolioCategories[m.active]
}

func (m *Model) Preferences() domain.Preferences { return m.prefs }
func (m *Model) Items() []domain.PortfolioItem   { return m.items }
func (m *Model) Viewer() *lightbox.Lightbox       { return m.viewer }
func (m *Model) Err() error                       { return m.err }

func scrambleTick() tea.Cmd {
	return tea.Tick(scrambleInterval, func(time.Time) tea.Msg { return scrambleMsg{} })
}

// fetch starts a load for the active category. Results carry the generation
// they were requested under so a late reply for an old tab is dropped.
func (m *Model) fetch() tea.Cmd {
	m.gen++
	m.loading = true
	gen, category, ctx := m.gen, m.Category(), m.ctx

	return func() tea.Msg {
		items, err := m.load(ctx, category)
		return loadedMsg{gen: gen, items: items, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.items = msg.items
		m.cursor = 0
		m.viewer.SetGallery(len(m.items))
		return m, nil

	case scrambleMsg:
		m.frame++
		var done bool
		m.title, done = Scramble(heading, m.frame, m.rng)
		if done {
			return m, nil
		}
		return m, scrambleTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.viewer.IsOpen() {
			return m, m.viewerKey(msg)
		}
		return m, m.galleryKey(msg)
	}

	return m, nil
}

func (m *Model) viewerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.viewer.HandleKey(lightbox.KeyRight)
	case key.Matches(msg, m.keys.Prev):
		m.viewer.HandleKey(lightbox.KeyLeft)
	case key.Matches(msg, m.keys.Close):
		m.viewer.HandleKey(lightbox.KeyEscape)
		m.cursor = m.viewer.Index()
	case key.Matches(msg, m.keys.Info):
		m.viewer.HandleKey(lightbox.KeyInfo)
	case msg.String() == "ctrl+c":
		return tea.Quit
	}
	return nil
}

func (m *Model) galleryKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab(-1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if err := m.viewer.Open(m.cursor); err != nil {
			m.err = err
		}
	case key.Matches(msg, m.keys.Theme):
		m.prefs.Theme = m.prefs.Theme.Toggle()
		m.styles = newStyles(m.prefs.Theme)
		m.persist()
	case key.Matches(msg, m.keys.Background):
		m.prefs.Background = domain.NextBackground(m.prefs.Background)
		m.persist()
	}
	return nil
}

func (m *Model) switchTab(step int) tea.Cmd {
	n := len(domain.PortfolioCategories)
	m.active = ((m.active+step)%n + n) % n
	m.items = nil
	m.cursor = 0
	m.err = nil
	m.viewer.SetGallery(0)
	return m.fetch()
}

func (m *Model) persist() {
	if m.saver == nil {
		return
	}
	if err := m.saver.Save(m.prefs); err != nil {
		m.err = err
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	switch {
	case m.viewer.IsOpen():
		b.WriteString(m.viewerView())
	case m.loading:
		b.WriteString(m.spin.View() + " loading")
	case len(m.items) == 0:
		b.WriteString(m.styles.muted.Render("No items in this gallery yet."))
	default:
		for i, it := range m.items {
			if i == m.cursor {
				b.WriteString(m.styles.selected.Render(it.Title))
			} else {
				b.WriteString(m.styles.item.Render(it.Title))
			}
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n" + m.styles.err.Render(m.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("theme %s · background %s", m.prefs.Theme, m.prefs.Background)))
	b.WriteString("\n")
	if m.viewer.IsOpen() {
		b.WriteString(m.help.View(viewerKeys{m.keys}))
	} else {
		b.WriteString(m.help.View(galleryKeys{m.keys}))
	}
	return b.String()
}

func (m *Model) tabs() string {
	tabs := make([]string, 0, len(domain.PortfolioCategories))
	for i, c := range domain.PortfolioCategories {
		if i == m.active {
			tabs = append(tabs, m.styles.activeTab.Render(string(c)))
		} else {
			tabs = append(tabs, m.styles.tab.Render(string(c)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) viewerView() string {
	it := m.items[m.viewer.Index()]

	lines := []string{
		m.styles.muted.Render(fmt.Sprintf("%d / %d", m.viewer.Index()+1, m.viewer.Len())),
		it.ImageURL,
	}
	if m.viewer.InfoVisible() {
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render(it.Title), it.Description)
		if len(it.Tags) > 0 {
			tags := make([]string, len(it.Tags))
			for i, t := range it.Tags {
				tags[i] = m.styles.tag.Render("#" + t)
			}
			lines = append(lines, strings.Join(tags, " "))
		}
	}
	if !m.viewer.CanNavigate() {
		lines = append(lines, "", m.styles.muted.Render("only item in this gallery"))
	}
	return m.styles.frame.Render(strings.Join(lines, "\n"))
}

// Run starts the program on the alternate screen.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx)).Run()
	return err
}
