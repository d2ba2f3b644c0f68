// package models defines the data model for the guild dashboard
package models

import (
	"fmt"
	"strings"
)

// DefaultCDNURL is Discord's asset host.
const DefaultCDNURL = "https://cdn.discordapp.com"

// Tokens holds the credentials issued by the authorization code exchange.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// UserProfile is the authenticated Discord user.
type UserProfile struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	GlobalName    string `json:"global_name,omitempty"`
	Avatar        string `json:"avatar,omitempty"` // empty when the user has no custom avatar
}

// Tag renders the legacy username#discriminator form.
func (u UserProfile) Tag() string {
	return fmt.Sprintf("%s#%s", u.Username, u.Discriminator)
}

// Guild is a Discord server as returned by the guild list endpoint.
type Guild struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Owner bool   `json:"owner"`
}

// CommonGuilds returns the guilds in user whose ID also appears in bot.
//
// Order follows user.
func CommonGuilds(user, bot []Guild) []Guild {
	botIDs := make(map[string]struct{}, len(bot))
	for _, g := range bot {
		botIDs[g.ID] = struct{}{}
	}

	common := make([]Guild, 0, len(user))
	for _, g := range user {
		if _, ok := botIDs[g.ID]; ok {
			common = append(common, g)
		}
	}
	return common
}

// CDN builds asset URLs against a Discord CDN host.
type CDN struct {
	BaseURL string
}

// NewCDN returns a [CDN] rooted at baseURL, defaulting to [DefaultCDNURL].
func NewCDN(baseURL string) CDN {
	if baseURL == "" {
		baseURL = DefaultCDNURL
	}
	return CDN{BaseURL: strings.TrimRight(baseURL, "/")}
}

// AvatarURL returns the user's avatar, animated hashes (prefixed "a_") as .gif and everything else as .png.
// Users without an avatar get the default embed avatar.
func (c CDN) AvatarURL(u UserProfile) string {
	if u.Avatar == "" {
		return c.BaseURL + "/embed/avatars/0.png"
	}

	ext := ".png"
	if strings.HasPrefix(u.Avatar, "a_") {
		ext = ".gif"
	}
	return fmt.Sprintf("%s/avatars/%s/%s%s", c.BaseURL, u.ID, u.Avatar, ext)
}

// GuildIconURL returns the guild icon, or the default asset path when the guild has none.
func (c CDN) GuildIconURL(g Guild) string {
	icon := "default"
	if g.Icon != "" {
		icon = g.Icon
	}
	return fmt.Sprintf("%s/icons/%s/%s.png", c.BaseURL, g.ID, icon)
}
