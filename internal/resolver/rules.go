package resolver

import (
	"strings"
)

// exclusionRule names one reason a candidate link is skipped. Rules are an
// explicit ordered list so the filtering precedence stays auditable.
type exclusionRule struct {
	name    string
	matches func(url string) bool
}

var staticAssetSuffixes = []string{
	".css", ".js", ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico", ".woff", ".woff2",
}

// denyListPaths are known unrelated pages that share the detail-page link
// shape but never point at a title.
var denyListPaths = []string{
	"/login", "/register", "/contact", "/about", "/dmca", "/faq", "/rss", "/donate",
}

var exclusionRules = []exclusionRule{
	{
		name: "search-page",
		matches: func(u string) bool {
			return strings.Contains(u, "/search") || strings.Contains(u, "?q=") || strings.Contains(u, "&q=")
		},
	},
	{
		name: "tag-page",
		matches: func(u string) bool {
			return strings.Contains(u, "/tag/") || strings.Contains(u, "/tags/")
		},
	},
	{
		name: "category-page",
		matches: func(u string) bool {
			return strings.Contains(u, "/category/") || strings.Contains(u, "/categoria/") || strings.Contains(u, "/genre/")
		},
	},
	{
		name: "pagination",
		matches: func(u string) bool {
			return strings.Contains(u, "/page/") || strings.Contains(u, "?page=") || strings.Contains(u, "&page=")
		},
	},
	{
		name: "static-asset",
		matches: func(u string) bool {
			trimmed := strings.ToLower(u)
			if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
				trimmed = trimmed[:i]
			}
			for _, suffix := range staticAssetSuffixes {
				if strings.HasSuffix(trimmed, suffix) {
					return true
				}
			}
			return false
		},
	},
	{
		name: "deny-list",
		matches: func(u string) bool {
			trimmed := strings.TrimSuffix(u, "/")
			for _, p := range denyListPaths {
				if strings.HasSuffix(trimmed, p) {
					return true
				}
			}
			return false
		},
	},
}

// excluded reports whether any exclusion rule rejects the URL.
func excluded(url string) bool {
	for _, rule := range exclusionRules {
		if rule.matches(url) {
			return true
		}
	}
	return false
}
