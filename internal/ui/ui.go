package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/services"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	GuildListView ViewState = iota
	GuildDetailView
)

var _ list.Item = guildItem{}

// guildItem wraps [models.GuildCard] to implement [list.Item].
type guildItem struct {
	guild models.GuildCard
}

func (i guildItem) FilterValue() string { return i.guild.Name }
func (i guildItem) Title() string       { return i.guild.Name }
func (i guildItem) Description() string { return i.guild.ID }

// Model represents the TUI application state.
type Model struct {
	ctx         context.Context
	view        ViewState
	discord     services.Discord
	accessToken string
	cdn         models.CDN
	width       int
	height      int
	loading     bool
	dashboard   *models.Dashboard
	guildList   list.Model
	selected    *models.GuildCard
	err         error
	help        help.Model
	keys        keyMap
}

// NewModel creates a new TUI model that browses the guilds accessToken shares with the bot.
func NewModel(ctx context.Context, discord services.Discord, accessToken string, cdn models.CDN) *Model {
	return &Model{
		ctx:         ctx,
		view:        GuildListView,
		discord:     discord,
		accessToken: accessToken,
		cdn:         cdn,
		loading:     true,
		guildList:   list.New(nil, list.NewDefaultDelegate(), 0, 0),
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init starts loading the dashboard.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.guildList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case GuildListView:
			return m.handleListKeys(msg)
		case GuildDetailView:
			return m.handleDetailKeys(msg)
		}

	case Msg:
		switch msg.kind {
		case MsgDashboardLoaded:
			res := msg.data.(dashboardResult)
			m.loading = false
			if res.err != nil {
				m.err = res.err
				return m, nil
			}
			m.setDashboard(res.dashboard)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.view == GuildListView {
		m.guildList, cmd = m.guildList.Update(msg)
	}
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.refresh, m.keys.quit})
		return fmt.Sprintf("%s\n\n%s", styles.err.Render(fmt.Sprintf("Error: %v", m.err)), helpView)
	}
	if m.loading {
		return styles.warn.Render("Loading servers...")
	}

	switch m.view {
	case GuildListView:
		return m.renderList()
	case GuildDetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) setDashboard(d *models.Dashboard) {
	m.dashboard = d

	items := make([]list.Item, len(d.Guilds))
	for i, g := range d.Guilds {
		items[i] = guildItem{guild: g}
	}
	m.guildList.SetItems(items)
	m.guildList.Title = fmt.Sprintf("Servers shared with %s", d.User.Tag())
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.guildList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.guildList, cmd = m.guildList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.refresh):
		m.loading = true
		m.err = nil
		return m, m.load()
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.guildList.SelectedItem().(guildItem); ok {
			g := item.guild
			m.selected = &g
			m.view = GuildDetailView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.guildList, cmd = m.guildList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = GuildListView
		m.selected = nil
	}
	return m, nil
}

func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		d, err := services.LoadDashboard(m.ctx, m.discord, m.accessToken, m.cdn)
		return dashboardLoadedMsg(d, err)
	}
}

func (m *Model) renderList() string {
	if m.dashboard != nil && len(m.dashboard.Guilds) == 0 {
		title := styles.title.Render(fmt.Sprintf("Servers shared with %s", m.dashboard.User.Tag()))
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.refresh, m.keys.quit})
		return fmt.Sprintf("%s\n%s\n\n%s", title, styles.help.Render("No shared servers yet."), helpView)
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.refresh, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", m.guildList.View(), helpView)
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(m.selected.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", styles.label.Render("ID"), m.selected.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", styles.label.Render("Icon"), m.selected.IconURL))
	b.WriteString(styles.ok.Render("✓ Bot is a member"))
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit}))
	return b.String()
}
