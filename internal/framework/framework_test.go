package framework

import (
	"context"
	"testing"

	"github.com/lucad87/mcp-server-tests-migration/internal/jsparse"
)

func classify(t *testing.T, source string) Verdict {
	t.Helper()
	tree, err := jsparse.Parse(context.Background(), []byte(source), jsparse.DialectJavaScript)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return Classify(tree)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "element shorthand is legacy",
			source: `it('x', () => { $('#a').click(); });`,
			want:   "webdriverio",
		},
		{
			name:   "browser handle is legacy",
			source: `it('x', () => { browser.url('/'); });`,
			want:   "webdriverio",
		},
		{
			name:   "wdio require is legacy",
			source: `const { expect } = require('expect-webdriverio');`,
			want:   "webdriverio",
		},
		{
			name:   "wdio import is legacy",
			source: `import { browser } from '@wdio/globals';`,
			want:   "webdriverio",
		},
		{
			name:   "playwright import is target",
			source: `import { test, expect } from '@playwright/test';`,
			want:   "playwright",
		},
		{
			name:   "page member call is target",
			source: `test('x', async ({ page }) => { await page.goto('/'); });`,
			want:   "playwright",
		},
		{
			name: "both families is mixed",
			source: `import { test } from '@playwright/test';
it('x', () => { $('#a').click(); });`,
			want: "mixed",
		},
		{
			name:   "plain script is unknown",
			source: `const x = 1; console.log(x);`,
			want:   "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(t, tt.source)
			if got.String() != tt.want {
				t.Errorf("Classify = %s (%+v), want %s", got.String(), got, tt.want)
			}
		})
	}
}

// Exactly one flag holds, and mixed supersedes the single-family flags.
func TestVerdictExclusivity(t *testing.T) {
	sources := []string{
		`$('#a').click();`,
		`import { test } from '@playwright/test';`,
		`import { test } from '@playwright/test'; browser.url('/');`,
		`const x = 1;`,
	}
	for _, src := range sources {
		v := classify(t, src)
		if v.IsLegacy && v.IsTarget {
			t.Errorf("source %q: IsLegacy and IsTarget both set", src)
		}
		count := 0
		for _, b := range []bool{v.IsLegacy, v.IsTarget, v.IsMixed, v.IsUnknown} {
			if b {
				count++
			}
		}
		if count != 1 {
			t.Errorf("source %q: %d verdict flags set, want 1 (%+v)", src, count, v)
		}
	}
}
