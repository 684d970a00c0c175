package rewrite

import (
	"context"
	"strings"
	"testing"

	"github.com/lucad87/mcp-server-tests-migration/internal/mapping"
)

func newTestEngine() *Engine {
	return NewEngine(mapping.NewRegistry())
}

func migrate(t *testing.T, source string, opts Options) *Result {
	t.Helper()
	res, err := newTestEngine().Migrate(context.Background(), source, opts)
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return res
}

func TestMigrateTagScenario(t *testing.T) {
	res := migrate(t, `it('should login [SMOKE] [P1]', () => {});`, Options{})

	if !strings.Contains(res.Code, `test('should login', { tag: ['@smoke', '@p1'] }, `) {
		t.Errorf("tag injection missing:\n%s", res.Code)
	}
	if strings.Contains(res.Code, "[SMOKE]") {
		t.Errorf("tags not stripped from title:\n%s", res.Code)
	}
	if len(res.TagsMigrated) != 2 || res.TagsMigrated[0] != "smoke" || res.TagsMigrated[1] != "p1" {
		t.Errorf("TagsMigrated = %v", res.TagsMigrated)
	}
}

func TestMigrateSelectorScenario(t *testing.T) {
	res := migrate(t, `it('x', () => { $("[data-test-id='submit-button']").click(); });`, Options{})

	if !strings.Contains(res.Code, "page.getByTestId('submit-button').click()") {
		t.Errorf("selector rewrite missing:\n%s", res.Code)
	}
}

func TestMigrateCommandScenario(t *testing.T) {
	res := migrate(t, `it('x', () => {
  $('#email').setValue('a@b.c');
  $('#spinner').waitForDisplayed();
});`, Options{})

	if !strings.Contains(res.Code, ".fill('a@b.c')") {
		t.Errorf("setValue not rewritten to fill:\n%s", res.Code)
	}
	if !strings.Contains(res.Code, ".waitFor({ state: 'visible' })") {
		t.Errorf("waitForDisplayed not rewritten:\n%s", res.Code)
	}
}

func TestMigrateDescribeAndHooks(t *testing.T) {
	res := migrate(t, `describe('login', () => {
  before(() => { browser.url('/login'); });
  beforeEach(() => {});
  afterAll(() => {});
  it('works', () => {});
});`, Options{})

	checks := []string{
		"test.describe('login'",
		"test.beforeAll(({ page }) => { page.goto('/login'); })",
		"test.beforeEach(({ page }) => {})",
		"test.afterAll(({ page }) => {})",
		"test('works', ({ page }) => {})",
	}
	for _, want := range checks {
		if !strings.Contains(res.Code, want) {
			t.Errorf("missing %q in:\n%s", want, res.Code)
		}
	}
}

func TestMigrateImportReplacement(t *testing.T) {
	res := migrate(t, `import { expect } from 'expect-webdriverio';
it('x', () => {});`, Options{})

	if !strings.Contains(res.Code, "import { test, expect } from '@playwright/test';") {
		t.Errorf("runner import missing:\n%s", res.Code)
	}
	if strings.Contains(res.Code, "expect-webdriverio") {
		t.Errorf("legacy import survived:\n%s", res.Code)
	}
	if strings.Count(res.Code, "@playwright/test") != 1 {
		t.Errorf("runner import duplicated:\n%s", res.Code)
	}
}

func TestMigrateRequireReplacement(t *testing.T) {
	res := migrate(t, `const { expect } = require('expect-webdriverio');
it('x', () => {});`, Options{})

	if !strings.Contains(res.Code, "import { test, expect } from '@playwright/test';") {
		t.Errorf("runner import missing:\n%s", res.Code)
	}
	if strings.Contains(res.Code, "require('expect-webdriverio')") {
		t.Errorf("legacy require survived:\n%s", res.Code)
	}
}

func TestMigrateUnshiftsImportWhenNoneReplaced(t *testing.T) {
	res := migrate(t, `it('x', () => {});`, Options{})

	if !strings.HasPrefix(res.Code, "import { test, expect } from '@playwright/test';\n") {
		t.Errorf("import not unshifted to top:\n%s", res.Code)
	}
}

func TestMigrateQualifiedBrowserCommands(t *testing.T) {
	res := migrate(t, `it('x', () => {
  browser.url('/cart');
  browser.pause(500);
  browser.unknownCommand();
});`, Options{})

	if !strings.Contains(res.Code, "page.goto('/cart')") {
		t.Errorf("browser.url not rewritten:\n%s", res.Code)
	}
	if !strings.Contains(res.Code, "page.waitForTimeout(500)") {
		t.Errorf("browser.pause not rewritten:\n%s", res.Code)
	}
	// Unknown commands stay untouched and are reported, not guessed.
	if !strings.Contains(res.Code, "browser.unknownCommand()") {
		t.Errorf("unmapped command was altered:\n%s", res.Code)
	}
	foundNote := false
	for _, n := range res.Notes {
		if strings.Contains(n, "unknownCommand") {
			foundNote = true
		}
	}
	if !foundNote {
		t.Errorf("unmapped command not reported in notes: %v", res.Notes)
	}
}

func TestMigrateTypedOutput(t *testing.T) {
	res := migrate(t, `it('x', () => {});`, Options{TypedOutput: true})

	if !strings.Contains(res.Code, "({ page }: { page: Page })") {
		t.Errorf("typed parameter missing:\n%s", res.Code)
	}
	if !strings.Contains(res.Code, "import type { Page } from '@playwright/test';") {
		t.Errorf("type import missing:\n%s", res.Code)
	}
}

func TestMigrateIdempotence(t *testing.T) {
	first := migrate(t, `describe('login', () => {
  it('works [SMOKE]', () => {
    $('[data-testid="user"]').setValue('admin');
    browser.url('/login');
  });
});`, Options{})

	second := migrate(t, first.Code, Options{})
	if second.Code != first.Code {
		t.Errorf("second migration changed output:\nfirst:\n%s\nsecond:\n%s", first.Code, second.Code)
	}
	if len(second.ChangeLog) != 0 {
		t.Errorf("second migration logged changes: %v", second.ChangeLog)
	}
	if len(second.Notes) != 1 || !strings.Contains(second.Notes[0], "already uses Playwright") {
		t.Errorf("missing already-migrated note: %v", second.Notes)
	}
}

func TestMigrateTargetOnlyShortCircuit(t *testing.T) {
	source := `import { test, expect } from '@playwright/test';
test('x', async ({ page }) => { await page.goto('/'); });`

	res := migrate(t, source, Options{})
	if res.Code != source {
		t.Errorf("target-only input was modified:\n%s", res.Code)
	}
	if len(res.ChangeLog) != 0 {
		t.Errorf("target-only input produced changes: %v", res.ChangeLog)
	}
}

func TestMigratePreservesExistingOptionsArgument(t *testing.T) {
	// A non-callback second argument means the call shape is already
	// structured; tag injection must not guess a merge.
	source := `it('flaky [SMOKE]', { retries: 2 }, () => {});`
	res := migrate(t, source, Options{})

	if !strings.Contains(res.Code, "'flaky [SMOKE]', { retries: 2 }") {
		t.Errorf("pre-existing options argument was disturbed:\n%s", res.Code)
	}
	if len(res.TagsMigrated) != 0 {
		t.Errorf("tags migrated despite existing options: %v", res.TagsMigrated)
	}
}

func TestMigrateChangeLogOrder(t *testing.T) {
	res := migrate(t, `describe('s', () => {
  it('c', () => { $('#a').click(); });
});`, Options{})

	// describe conversion is seen before the case conversion, which is seen
	// before the nested selector rewrite.
	var describeIdx, testIdx, selectorIdx = -1, -1, -1
	for i, entry := range res.ChangeLog {
		switch {
		case strings.Contains(entry, "test.describe"):
			describeIdx = i
		case strings.Contains(entry, "it() to test()"):
			testIdx = i
		case strings.Contains(entry, "Rewrote $"):
			selectorIdx = i
		}
	}
	if describeIdx == -1 || testIdx == -1 || selectorIdx == -1 {
		t.Fatalf("expected entries missing from change log: %v", res.ChangeLog)
	}
	if !(describeIdx < testIdx && testIdx < selectorIdx) {
		t.Errorf("change log out of traversal order: %v", res.ChangeLog)
	}
}

func TestMigrateCustomMapping(t *testing.T) {
	engine := newTestEngine()
	engine.Registry().Register("swipeUp", mapping.Mapping{Target: "hover", Description: "custom"})

	res, err := engine.Migrate(context.Background(), `it('x', () => { $('#a').swipeUp(); });`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Code, ".hover()") {
		t.Errorf("custom mapping not applied:\n%s", res.Code)
	}
}

func TestMigrateBrokenInputStillMigrates(t *testing.T) {
	// tree-sitter recovers at statement scope; the valid statements are
	// still rewritten.
	res := migrate(t, `it('x', () => { $('#a').click(); });
!!!not javascript!!!`, Options{})

	if !strings.Contains(res.Code, "page.locator('#a').click()") {
		t.Errorf("recoverable file not rewritten:\n%s", res.Code)
	}
}
