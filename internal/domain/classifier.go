package domain

import (
	"regexp"
	"strings"
)

// Curated substring lists per tier. Matching is case-insensitive and the
// tiers are checked in a fixed order: productive, then neutral, then
// unproductive. First list containing a match wins; no match is neutral.
var productiveApps = []string{
	"visual studio", "vscode", "code", "intellij", "pycharm", "webstorm",
	"goland", "xcode", "android studio", "terminal", "iterm", "excel",
	"word", "powerpoint", "outlook", "figma", "sketch", "photoshop",
	"illustrator", "postman", "docker", "sublime", "vim", "emacs",
	"notion", "obsidian", "tableau",
}

var neutralApps = []string{
	"slack", "teams", "zoom", "mail", "calendar", "finder", "explorer",
	"preview", "notes", "skype", "webex",
}

var unproductiveApps = []string{
	"steam", "epic games", "battle.net", "spotify", "vlc", "netflix",
	"discord", "telegram", "whatsapp", "minecraft", "solitaire",
}

var productiveSites = []string{
	"github.com", "gitlab.com", "stackoverflow.com", "figma.com",
	"docs.google.com", "drive.google.com", "notion.so", "atlassian.net",
	"jira", "confluence", "linear.app", "developer.mozilla.org",
	"go.dev", "godoc.org",
}

var neutralSites = []string{
	"google.com", "wikipedia.org", "gmail.com", "mail.google.com",
	"calendar.google.com", "linkedin.com", "medium.com",
}

var unproductiveSites = []string{
	"youtube.com", "facebook.com", "twitter.com", "x.com",
	"instagram.com", "reddit.com", "netflix.com", "tiktok.com",
	"twitch.tv", "pinterest.com", "9gag.com", "buzzfeed.com",
}

// Browser process names recognized by the web sub-tracker.
var browserNames = []string{
	"chrome", "chromium", "firefox", "safari", "edge", "brave", "opera",
	"vivaldi", "arc",
}

// First label.tld-shaped token in a window title. Best-effort heuristic:
// it can match unrelated dotted text, which is accepted behavior.
var domainPattern = regexp.MustCompile(`[a-z0-9][a-z0-9-]*(\.[a-z0-9][a-z0-9-]*)*\.[a-z]{2,}`)

func matchAny(s string, list []string) bool {
	for _, item := range list {
		if strings.Contains(s, item) {
			return true
		}
	}
	return false
}

// CategorizeApp classifies an application name. Total: unknown names are
// neutral, never an error.
func CategorizeApp(name string) Tier {
	name = strings.ToLower(name)
	switch {
	case matchAny(name, productiveApps):
		return TierProductive
	case matchAny(name, neutralApps):
		return TierNeutral
	case matchAny(name, unproductiveApps):
		return TierUnproductive
	default:
		return TierNeutral
	}
}

// CategorizeSite classifies a browsed domain.
func CategorizeSite(domain string) Tier {
	domain = strings.ToLower(domain)
	switch {
	case matchAny(domain, productiveSites):
		return TierProductive
	case matchAny(domain, neutralSites):
		return TierNeutral
	case matchAny(domain, unproductiveSites):
		return TierUnproductive
	default:
		return TierNeutral
	}
}

// IsBrowser reports whether the application name matches a recognized
// browser.
func IsBrowser(appName string) bool {
	return matchAny(strings.ToLower(appName), browserNames)
}

// ExtractDomain pulls the first domain-shaped token out of a window
// title. Returns "" when the title carries no recognizable domain.
func ExtractDomain(windowTitle string) string {
	return domainPattern.FindString(strings.ToLower(windowTitle))
}
