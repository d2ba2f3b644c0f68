// Package server provides HTTP routing, middleware, and OAuth handling for the guild dashboard.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] runs in the order it's added: the first middleware passed to Use is the outermost.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # OAuth Callback Handler
//
// [CallbackHandler] completes the OAuth2 authorization code flow for Discord:
//
//	Start ─┬─ access_token cookie ─→ profile ─→ guilds (user ‖ bot) ─→ render
//	       ├─ ?code= ───────────────→ exchange ─→ Set-Cookie ×2, 302 /
//	       └─ neither ──────────────→ 401
//
// Every failure is terminal for the request and answers with a fixed plain-text body:
//
//	401 Authorization required          no cookie, no code
//	401 Invalid token or token expired  profile fetch failed
//	405 Method not allowed              code sent with a method other than GET
//	500 Error during OAuth process      code exchange failed
//	500 Error fetching user guilds
//	500 Error fetching bot guilds
//
// The refresh token cookie is written but never read; an expired access token sends the user back through login.
//
// # Other Routes
//
//	GET /         → dashboard when signed in, landing page otherwise
//
// The session cookies are HttpOnly, so the dashboard's logout script cannot remove them. It navigates to
// [models.LogoutURL] instead, which always renders the landing page. A token the profile fetch rejects also falls
// back to the landing page on / rather than the callback's 401.
//
//	GET /login    → 302 to Discord's authorize URL
//	GET /healthz  → "ok"
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
