// Package models defines the domain types for the guild dashboard.
//
// The package contains two categories of types:
//
// 1. Provider data: lightweight structs mapped from Discord API responses
//   - [Tokens] : access and refresh tokens returned by the code exchange
//   - [UserProfile] : the authenticated user
//   - [Guild] : a server the user or the bot belongs to
//
// 2. View models: what the HTTP handler hands to the renderer
//   - [Dashboard] : user header plus one [GuildCard] per common guild
//   - [Landing] : the unauthenticated login page
//
// Nothing here is persisted. Every value is built per request and discarded with the response.
package models
