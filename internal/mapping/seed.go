package mapping

// seed is the static WebdriverIO to Playwright translation table. Element
// commands are keyed by bare method name; global driver commands are keyed
// "browser.<name>" and translate to a dotted target.
var seed = map[string]Mapping{
	// Value setting and input
	"setValue": {
		Target:      "fill",
		Description: "setValue(value) becomes fill(value)",
	},
	"addValue": {
		Target:      "pressSequentially",
		Description: "addValue appends keystrokes; pressSequentially types into the existing value",
	},
	"clearValue": {
		Target:      "clear",
		Description: "clearValue becomes clear",
	},
	"keys": {
		Target:      "press",
		Description: "keys(key) becomes press(key)",
	},

	// Text, attribute and property getters
	"getText": {
		Target:      "innerText",
		Description: "getText becomes innerText",
	},
	"getValue": {
		Target:      "inputValue",
		Description: "getValue becomes inputValue",
	},
	"getAttribute": {
		Target:      "getAttribute",
		Description: "getAttribute carries over unchanged",
	},
	"getHTML": {
		Target:      "innerHTML",
		Description: "getHTML becomes innerHTML",
	},
	"getTagName": {
		Target:        "evaluate",
		OptionLiteral: "el => el.tagName.toLowerCase()",
		Description:   "getTagName has no direct equivalent; evaluate on the element",
	},
	"getCSSProperty": {
		Target:        "evaluate",
		OptionLiteral: "el => getComputedStyle(el)",
		Description:   "getCSSProperty has no direct equivalent; evaluate getComputedStyle",
	},
	"getSize": {
		Target:      "boundingBox",
		Description: "getSize becomes boundingBox (width/height fields)",
	},
	"getLocation": {
		Target:      "boundingBox",
		Description: "getLocation becomes boundingBox (x/y fields)",
	},

	// Visibility and state checks
	"isDisplayed": {
		Target:      "isVisible",
		Description: "isDisplayed becomes isVisible",
	},
	"isDisplayedInViewport": {
		Target:      "isVisible",
		Description: "viewport-scoped visibility collapses to isVisible; verify manually",
	},
	"isExisting": {
		Target:      "count",
		Description: "isExisting becomes a count() > 0 check; verify call sites",
	},
	"isSelected": {
		Target:      "isChecked",
		Description: "isSelected becomes isChecked",
	},
	"isEnabled": {
		Target:      "isEnabled",
		Description: "isEnabled carries over unchanged",
	},
	"isClickable": {
		Target:      "isEnabled",
		Description: "isClickable approximated by isEnabled; Playwright actionability covers the rest",
	},
	"isFocused": {
		Target:        "evaluate",
		OptionLiteral: "el => el === document.activeElement",
		Description:   "isFocused has no direct equivalent; evaluate against activeElement",
	},

	// Waits
	"waitForDisplayed": {
		Target:        "waitFor",
		OptionLiteral: "{ state: 'visible' }",
		Description:   "waitForDisplayed becomes waitFor({ state: 'visible' })",
	},
	"waitForExist": {
		Target:        "waitFor",
		OptionLiteral: "{ state: 'attached' }",
		Description:   "waitForExist becomes waitFor({ state: 'attached' })",
	},
	"waitForClickable": {
		Target:        "waitFor",
		OptionLiteral: "{ state: 'visible' }",
		Description:   "waitForClickable becomes waitFor({ state: 'visible' }); clicks auto-wait",
	},
	"waitForEnabled": {
		Target:        "waitFor",
		OptionLiteral: "{ state: 'visible' }",
		Description:   "waitForEnabled becomes waitFor; actions auto-wait for enabled state",
	},
	"waitForStable": {
		Target:        "waitFor",
		OptionLiteral: "{ state: 'visible' }",
		Description:   "waitForStable is implicit in Playwright actionability checks",
	},

	// Interaction
	"click": {
		Target:      "click",
		Description: "click carries over unchanged",
	},
	"doubleClick": {
		Target:      "dblclick",
		Description: "doubleClick becomes dblclick",
	},
	"moveTo": {
		Target:      "hover",
		Description: "moveTo becomes hover",
	},
	"dragAndDrop": {
		Target:      "dragTo",
		Description: "dragAndDrop(target) becomes dragTo(target)",
	},
	"scrollIntoView": {
		Target:      "scrollIntoViewIfNeeded",
		Description: "scrollIntoView becomes scrollIntoViewIfNeeded",
	},
	"touchAction": {
		Target:      "tap",
		Description: "touchAction approximated by tap; review gesture sequences manually",
	},

	// Dropdown selection
	"selectByVisibleText": {
		Target:        "selectOption",
		OptionLiteral: "{ label: value }",
		Description:   "selectByVisibleText becomes selectOption({ label })",
	},
	"selectByAttribute": {
		Target:        "selectOption",
		OptionLiteral: "{ value: value }",
		Description:   "selectByAttribute becomes selectOption({ value })",
	},
	"selectByIndex": {
		Target:        "selectOption",
		OptionLiteral: "{ index: value }",
		Description:   "selectByIndex becomes selectOption({ index })",
	},

	// Screenshots
	"saveScreenshot": {
		Target:      "screenshot",
		Description: "saveScreenshot becomes screenshot",
	},

	// Global driver commands
	"browser.url": {
		Target:      "page.goto",
		Description: "browser.url becomes page.goto",
	},
	"browser.getUrl": {
		Target:      "page.url",
		Description: "browser.getUrl becomes page.url()",
	},
	"browser.getTitle": {
		Target:      "page.title",
		Description: "browser.getTitle becomes page.title()",
	},
	"browser.pause": {
		Target:      "page.waitForTimeout",
		Description: "browser.pause becomes page.waitForTimeout; prefer condition waits",
	},
	"browser.refresh": {
		Target:      "page.reload",
		Description: "browser.refresh becomes page.reload",
	},
	"browser.back": {
		Target:      "page.goBack",
		Description: "browser.back becomes page.goBack",
	},
	"browser.forward": {
		Target:      "page.goForward",
		Description: "browser.forward becomes page.goForward",
	},
	"browser.setCookies": {
		Target:      "context.addCookies",
		Description: "browser.setCookies becomes context.addCookies",
	},
	"browser.getCookies": {
		Target:      "context.cookies",
		Description: "browser.getCookies becomes context.cookies",
	},
	"browser.deleteCookies": {
		Target:      "context.clearCookies",
		Description: "browser.deleteCookies becomes context.clearCookies",
	},
	"browser.newWindow": {
		Target:      "context.newPage",
		Description: "browser.newWindow becomes context.newPage",
	},
	"browser.switchWindow": {
		Target:      "page.bringToFront",
		Description: "browser.switchWindow approximated by bringToFront on the target page",
	},
	"browser.closeWindow": {
		Target:      "page.close",
		Description: "browser.closeWindow becomes page.close",
	},
	"browser.switchToFrame": {
		Target:      "page.frameLocator",
		Description: "browser.switchToFrame becomes a frameLocator chain; review call sites",
	},
	"browser.switchToParentFrame": {
		Target:      "page.mainFrame",
		Description: "frame context is per-locator in Playwright; mainFrame restores the default",
	},
	"browser.acceptAlert": {
		Target:        "page.on",
		OptionLiteral: "'dialog', dialog => dialog.accept()",
		Description:   "dialogs are handled by a page.on('dialog') listener registered before the trigger",
	},
	"browser.dismissAlert": {
		Target:        "page.on",
		OptionLiteral: "'dialog', dialog => dialog.dismiss()",
		Description:   "dialogs are handled by a page.on('dialog') listener registered before the trigger",
	},
	"browser.saveScreenshot": {
		Target:      "page.screenshot",
		Description: "browser.saveScreenshot becomes page.screenshot",
	},
	"browser.execute": {
		Target:      "page.evaluate",
		Description: "browser.execute becomes page.evaluate",
	},
	"browser.executeAsync": {
		Target:      "page.evaluate",
		Description: "browser.executeAsync becomes page.evaluate with an async function",
	},
	"browser.setWindowSize": {
		Target:      "page.setViewportSize",
		Description: "browser.setWindowSize becomes page.setViewportSize",
	},
	"browser.maximizeWindow": {
		Target:      "page.setViewportSize",
		Description: "no maximize in Playwright; set an explicit viewport size",
	},
	"browser.keys": {
		Target:      "page.keyboard.press",
		Description: "browser.keys becomes page.keyboard.press",
	},
	"browser.debug": {
		Target:      "page.pause",
		Description: "browser.debug becomes page.pause",
	},
	"browser.waitUntil": {
		Target:      "expect.poll",
		Description: "browser.waitUntil becomes expect.poll or expect(...).toPass",
	},
	"browser.deleteSession": {
		Target:      "context.close",
		Description: "browser.deleteSession becomes context.close; usually unnecessary under the test runner",
	},
	"browser.reloadSession": {
		Target:      "context.clearCookies",
		Description: "fresh context per test is the Playwright default; clearCookies covers mid-test resets",
	},
}
