package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/guildboard/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgDashboardLoaded MsgKind = iota
)

type dashboardResult struct {
	dashboard *models.Dashboard
	err       error
}

// dashboardLoadedMsg is the constructor for [MsgDashboardLoaded]
func dashboardLoadedMsg(d *models.Dashboard, err error) Msg {
	return Msg{kind: MsgDashboardLoaded, data: dashboardResult{d, err}}
}
