// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI browses the servers a user shares with the bot:
//  1. [GuildListView] : Filterable list of common guilds
//  2. [GuildDetailView] : ID and icon URL of the selected guild
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Data is loaded through the same dashboard loader the web handler uses, so the TUI and the browser always agree.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, r, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
