package facts

import (
	"context"
	"testing"

	"github.com/lucad87/mcp-server-tests-migration/internal/jsparse"
)

func extract(t *testing.T, source string) *Facts {
	t.Helper()
	tree, err := jsparse.Parse(context.Background(), []byte(source), jsparse.DialectJavaScript)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return Extract(tree)
}

const sampleSpec = `const { expect } = require('expect-webdriverio');
import LoginPage from './pages/login.page';

describe('checkout flow [REGRESSION]', () => {
  before(() => {
    browser.url('/checkout');
  });

  beforeEach(() => {
    browser.pause(100);
  });

  it('pays with card [SMOKE] [P1]', () => {
    const page = new CheckoutPage();
    $('[data-testid="card-number"]').setValue('4111');
    $$('.line-item').forEach(li => li);
    expect($('#total')).toHaveText('$10');
  });

  afterAll(() => {
    browser.deleteCookies();
  });
});`

func TestExtractSample(t *testing.T) {
	f := extract(t, sampleSpec)

	if len(f.Imports) != 2 {
		t.Fatalf("imports = %d, want 2", len(f.Imports))
	}
	if !f.Imports[0].Require || f.Imports[0].Source != "expect-webdriverio" {
		t.Errorf("first import = %+v, want require of expect-webdriverio", f.Imports[0])
	}
	if len(f.Imports[0].Bindings) != 1 || f.Imports[0].Bindings[0].Local != "expect" {
		t.Errorf("require bindings = %+v", f.Imports[0].Bindings)
	}
	if f.Imports[1].Source != "./pages/login.page" || f.Imports[1].Require {
		t.Errorf("second import = %+v", f.Imports[1])
	}
	if len(f.Imports[1].Bindings) != 1 || f.Imports[1].Bindings[0].Local != "LoginPage" {
		t.Errorf("default import bindings = %+v", f.Imports[1].Bindings)
	}

	if len(f.TestGroups) != 1 {
		t.Fatalf("groups = %d, want 1", len(f.TestGroups))
	}
	if f.TestGroups[0].Name != "checkout flow [REGRESSION]" {
		t.Errorf("group name = %q", f.TestGroups[0].Name)
	}
	if len(f.TestGroups[0].Tags) != 1 || f.TestGroups[0].Tags[0] != "regression" {
		t.Errorf("group tags = %v", f.TestGroups[0].Tags)
	}

	if len(f.TestCases) != 1 {
		t.Fatalf("cases = %d, want 1", len(f.TestCases))
	}
	wantTags := []string{"smoke", "p1"}
	if len(f.TestCases[0].Tags) != 2 || f.TestCases[0].Tags[0] != wantTags[0] || f.TestCases[0].Tags[1] != wantTags[1] {
		t.Errorf("case tags = %v, want %v", f.TestCases[0].Tags, wantTags)
	}

	if len(f.Hooks) != 3 {
		t.Fatalf("hooks = %d, want 3: %+v", len(f.Hooks), f.Hooks)
	}
	wantHooks := []HookKind{HookPreSuite, HookPreCase, HookPostCaseList}
	for i, want := range wantHooks {
		if f.Hooks[i].Kind != want {
			t.Errorf("hook %d kind = %s, want %s", i, f.Hooks[i].Kind, want)
		}
	}

	if len(f.Selectors) != 3 {
		t.Fatalf("selectors = %d, want 3: %+v", len(f.Selectors), f.Selectors)
	}
	if f.Selectors[0].Raw != `[data-testid="card-number"]` || f.Selectors[0].Multiple {
		t.Errorf("selector 0 = %+v", f.Selectors[0])
	}
	if f.Selectors[1].Raw != ".line-item" || !f.Selectors[1].Multiple {
		t.Errorf("selector 1 = %+v", f.Selectors[1])
	}

	// browser.url, browser.pause, browser.deleteCookies qualified; setValue and
	// forEach as bare member commands.
	var qualified, bare int
	for _, c := range f.Commands {
		if c.Name == "browser.url" || c.Name == "browser.pause" || c.Name == "browser.deleteCookies" {
			qualified++
		}
		if c.Name == "setValue" {
			bare++
		}
	}
	if qualified != 3 {
		t.Errorf("qualified browser commands = %d, want 3: %+v", qualified, f.Commands)
	}
	if bare != 1 {
		t.Errorf("setValue commands = %d, want 1", bare)
	}

	// expect(...) plus the chained toHaveText terminal.
	if len(f.Assertions) != 2 {
		t.Errorf("assertions = %d, want 2: %+v", len(f.Assertions), f.Assertions)
	}

	if len(f.PageObjectRefs) != 1 || f.PageObjectRefs[0].ClassName != "CheckoutPage" {
		t.Errorf("page object refs = %+v", f.PageObjectRefs)
	}

	// Tag multiplicity across the file: regression, smoke, p1.
	if len(f.Tags) != 3 {
		t.Errorf("tags = %v, want 3 entries", f.Tags)
	}
}

func TestExtractNamespacedForms(t *testing.T) {
	f := extract(t, `import { test, expect } from '@playwright/test';
test.describe('suite', () => {
  test.beforeEach(async ({ page }) => { await page.goto('/'); });
  test('case', async ({ page }) => {});
});`)

	if len(f.TestGroups) != 1 || f.TestGroups[0].Name != "suite" {
		t.Errorf("groups = %+v", f.TestGroups)
	}
	if len(f.Hooks) != 1 || f.Hooks[0].Kind != HookPreCase || !f.Hooks[0].Namespaced {
		t.Errorf("hooks = %+v", f.Hooks)
	}
	if len(f.TestCases) != 1 || f.TestCases[0].Name != "case" {
		t.Errorf("cases = %+v", f.TestCases)
	}
}

func TestExtractSpansPresent(t *testing.T) {
	f := extract(t, "\n\nit('x', () => {});")
	if len(f.TestCases) != 1 {
		t.Fatal("case not found")
	}
	if f.TestCases[0].Span.StartLine != 3 {
		t.Errorf("span = %+v, want start line 3", f.TestCases[0].Span)
	}
}

func TestExtractRenamedBindings(t *testing.T) {
	f := extract(t, `import { remote as browser } from 'webdriverio';`)
	if len(f.Imports) != 1 {
		t.Fatal("import not found")
	}
	b := f.Imports[0].Bindings
	if len(b) != 1 || b[0].Local != "browser" || b[0].Origin != "remote" {
		t.Errorf("bindings = %+v, want local browser origin remote", b)
	}
}

func TestExtractEmptyFile(t *testing.T) {
	f := extract(t, "")
	if len(f.Imports)+len(f.TestCases)+len(f.TestGroups)+len(f.Selectors) != 0 {
		t.Errorf("empty file yielded facts: %+v", f)
	}
}
