// Package docs is the static migration-documentation lookup table served by
// the getMigrationDocs tool and the docs CLI command.
package docs

import (
	"sort"
	"strings"
)

// Entry is one documentation topic.
type Entry struct {
	Topic   string `json:"topic"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

var entries = map[string]Entry{
	"selectors": {
		Topic:   "selectors",
		Title:   "Locators",
		Summary: "Playwright replaces $/$$ element lookups with locator factories: getByTestId, getByLabel, getByRole, getByPlaceholder, and page.locator as the CSS fallback. Prefer test ids for resilience.",
		URL:     "https://playwright.dev/docs/locators",
	},
	"assertions": {
		Topic:   "assertions",
		Title:   "Assertions",
		Summary: "expect() from @playwright/test auto-retries web-first assertions like toBeVisible and toHaveText; WebdriverIO matchers map almost one to one.",
		URL:     "https://playwright.dev/docs/test-assertions",
	},
	"hooks": {
		Topic:   "hooks",
		Title:   "Hooks",
		Summary: "before/after become test.beforeAll/test.afterAll; beforeEach/afterEach keep their names under the test namespace. Hook callbacks receive fixtures such as { page }.",
		URL:     "https://playwright.dev/docs/api/class-test",
	},
	"commands": {
		Topic:   "commands",
		Title:   "Command equivalents",
		Summary: "Element commands move to locator methods (setValue to fill, waitForDisplayed to waitFor) and browser.* commands to page/context methods (browser.url to page.goto).",
		URL:     "https://playwright.dev/docs/api/class-page",
	},
	"tags": {
		Topic:   "tags",
		Title:   "Test tags",
		Summary: "Inline [TAG] markers in titles become the { tag: ['@tag'] } option; run subsets with --grep @tag.",
		URL:     "https://playwright.dev/docs/test-annotations#tag-tests",
	},
	"page-objects": {
		Topic:   "page-objects",
		Title:   "Page objects",
		Summary: "Bundle one page's locators and navigation in a class taking the page fixture; tests depend on the class, not on raw selectors.",
		URL:     "https://playwright.dev/docs/pom",
	},
	"config": {
		Topic:   "config",
		Title:   "Configuration",
		Summary: "wdio.conf.js baseUrl, specs and capabilities translate to use.baseURL, testMatch and projects in playwright.config.ts.",
		URL:     "https://playwright.dev/docs/test-configuration",
	},
	"fixtures": {
		Topic:   "fixtures",
		Title:   "Fixtures",
		Summary: "The global browser handle is replaced by per-test fixtures: destructure { page } (and { context } for cookies or windows) in the test callback.",
		URL:     "https://playwright.dev/docs/test-fixtures",
	},
}

// Lookup returns the entry for a topic. Topic matching is case-insensitive.
func Lookup(topic string) (Entry, bool) {
	e, ok := entries[strings.ToLower(strings.TrimSpace(topic))]
	return e, ok
}

// Topics returns all known topics, sorted.
func Topics() []string {
	out := make([]string, 0, len(entries))
	for t := range entries {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// All returns every entry ordered by topic.
func All() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, t := range Topics() {
		out = append(out, entries[t])
	}
	return out
}
