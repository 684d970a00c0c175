// Package confmig translates a WebdriverIO configuration file into a
// Playwright one. This is plain regex extraction of baseUrl, spec globs and
// capability browser names; anything beyond those three settings is left to
// manual review.
package confmig

import (
	"fmt"
	"regexp"
	"strings"
)

// Extracted holds the settings recovered from wdio.conf.js.
type Extracted struct {
	BaseURL  string   `json:"baseUrl,omitempty"`
	Specs    []string `json:"specs,omitempty"`
	Browsers []string `json:"browsers,omitempty"`
}

var (
	baseURLPattern     = regexp.MustCompile(`baseUrl\s*:\s*["'](.*?)["']`)
	specsBlockPattern  = regexp.MustCompile(`specs\s*:\s*\[([^\]]*)\]`)
	stringItemPattern  = regexp.MustCompile(`["'](.*?)["']`)
	browserNamePattern = regexp.MustCompile(`browserName\s*:\s*["'](.*?)["']`)
)

// browserProjects maps WebdriverIO browser names onto Playwright project
// device entries.
var browserProjects = map[string]string{
	"chrome":            "chromium",
	"chromium":          "chromium",
	"firefox":           "firefox",
	"safari":            "webkit",
	"webkit":            "webkit",
	"MicrosoftEdge":     "chromium",
	"microsoftedge":     "chromium",
	"internet explorer": "chromium",
}

// Extract pulls the translatable settings out of a wdio.conf.js source.
func Extract(source string) Extracted {
	var out Extracted

	if m := baseURLPattern.FindStringSubmatch(source); m != nil {
		out.BaseURL = m[1]
	}
	if m := specsBlockPattern.FindStringSubmatch(source); m != nil {
		for _, item := range stringItemPattern.FindAllStringSubmatch(m[1], -1) {
			out.Specs = append(out.Specs, item[1])
		}
	}
	seen := make(map[string]bool)
	for _, m := range browserNamePattern.FindAllStringSubmatch(source, -1) {
		name := m[1]
		if !seen[name] {
			seen[name] = true
			out.Browsers = append(out.Browsers, name)
		}
	}

	return out
}

// Translate renders a playwright.config.ts equivalent of a wdio.conf.js
// source. Settings that could not be extracted fall back to Playwright
// defaults.
func Translate(source string) (string, Extracted) {
	ex := Extract(source)

	var b strings.Builder
	b.WriteString("import { defineConfig, devices } from '@playwright/test';\n\n")
	b.WriteString("export default defineConfig({\n")

	if len(ex.Specs) > 0 {
		b.WriteString("  testMatch: [\n")
		for _, spec := range ex.Specs {
			b.WriteString(fmt.Sprintf("    '%s',\n", translateGlob(spec)))
		}
		b.WriteString("  ],\n")
	}

	b.WriteString("  use: {\n")
	if ex.BaseURL != "" {
		b.WriteString(fmt.Sprintf("    baseURL: '%s',\n", ex.BaseURL))
	}
	b.WriteString("    trace: 'on-first-retry',\n")
	b.WriteString("  },\n")

	projects := projectsFor(ex.Browsers)
	b.WriteString("  projects: [\n")
	for _, p := range projects {
		b.WriteString(fmt.Sprintf("    { name: '%s', use: { ...devices['%s'] } },\n", p, deviceFor(p)))
	}
	b.WriteString("  ],\n")
	b.WriteString("});\n")

	return b.String(), ex
}

// translateGlob strips the wdio-style leading ./ from spec globs.
func translateGlob(glob string) string {
	return strings.TrimPrefix(glob, "./")
}

func projectsFor(browsers []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, name := range browsers {
		project, ok := browserProjects[name]
		if !ok {
			project, ok = browserProjects[strings.ToLower(name)]
		}
		if !ok {
			project = "chromium"
		}
		if !seen[project] {
			seen[project] = true
			out = append(out, project)
		}
	}
	if len(out) == 0 {
		out = []string{"chromium"}
	}
	return out
}

func deviceFor(project string) string {
	switch project {
	case "firefox":
		return "Desktop Firefox"
	case "webkit":
		return "Desktop Safari"
	default:
		return "Desktop Chrome"
	}
}
