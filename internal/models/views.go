package models

// Cookies that carry [Tokens] between requests.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// SessionCookies lists every cookie that makes up a session.
var SessionCookies = []string{AccessTokenCookie, RefreshTokenCookie}

// LoggedOutParam marks the site root request that follows a logout.
//
// Session cookies are HttpOnly, so the logout script cannot actually remove them;
// the root page shows the landing page for this request instead of the dashboard.
const LoggedOutParam = "logged_out"

// LogoutURL is where the dashboard's logout script navigates.
const LogoutURL = "/?" + LoggedOutParam + "=1"

// GuildCard is one rendered tile on the dashboard.
type GuildCard struct {
	ID      string
	Name    string
	IconURL string
}

// Dashboard is the view model for an authenticated request.
type Dashboard struct {
	User          UserProfile
	AvatarURL     string
	Guilds        []GuildCard
	LogoutCookies []string // cleared client-side on logout
	LogoutURL     string
}

// NewDashboard intersects userGuilds with botGuilds and resolves every asset URL through cdn.
func NewDashboard(user UserProfile, userGuilds, botGuilds []Guild, cdn CDN) *Dashboard {
	common := CommonGuilds(userGuilds, botGuilds)

	cards := make([]GuildCard, 0, len(common))
	for _, g := range common {
		cards = append(cards, GuildCard{
			ID:      g.ID,
			Name:    g.Name,
			IconURL: cdn.GuildIconURL(g),
		})
	}

	return &Dashboard{
		User:          user,
		AvatarURL:     cdn.AvatarURL(user),
		Guilds:        cards,
		LogoutCookies: SessionCookies,
		LogoutURL:     LogoutURL,
	}
}

// Landing is the view model for the unauthenticated home page.
type Landing struct {
	LoginURL string
	Notice   string // optional status line, e.g. after logout
}

// GuildExport is a titled guild list written out by the CLI.
type GuildExport struct {
	Title  string  `json:"title"`
	Guilds []Guild `json:"guilds"`
}
