// Package services defines the [Discord] interface for the identity provider and implements it over Discord's REST API.
//
// # Discord Implementation
//
// [DiscordService] uses [oauth2] for the authorization code exchange and plain authenticated GETs for everything else.
// The client credentials are sent in the form body ([oauth2.AuthStyleInParams]), which is what Discord expects.
//
// User-scoped calls authenticate with "Bearer <access token>", bot-scoped calls with "Bot <bot token>".
// Both hit the same guild list endpoint; Discord answers with whichever account the credential belongs to.
//
// Responses are decoded into discordgo wire types and mapped to [models.UserProfile] and [models.Guild].
//
// # Dashboard Assembly
//
// [LoadDashboard] runs the profile fetch, then the user and bot guild fetches concurrently, and builds a [models.Dashboard].
// Every failure is wrapped with the sentinel for the step that failed so callers can pick a response with [errors.Is]:
//   - [shared.ErrProfileFetch]
//   - [shared.ErrGuildFetch]
//   - [shared.ErrBotGuildFetch]
//
// # Error Handling
//
// Non-2xx answers become [*APIError], which carries the status and body and unwraps to [shared.ErrAPIRequest].
// Nothing is retried. The stored refresh token is never used to recover an expired access token.
package services
