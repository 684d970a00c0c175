package mcp

// Tool represents a migration tool exposed via MCP
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolHandler is a function that handles a tool call
type ToolHandler func(params map[string]interface{}) (interface{}, error)

// RegisterTools registers all tool handlers
func (s *MCPServer) RegisterTools() {
	s.tools["migrateTest"] = s.toolMigrateTest
	s.tools["analyzeTest"] = s.toolAnalyzeTest
	s.tools["generatePageObject"] = s.toolGeneratePageObject
	s.tools["migrateConfig"] = s.toolMigrateConfig
	s.tools["registerMapping"] = s.toolRegisterMapping
	s.tools["getMigrationDocs"] = s.toolGetMigrationDocs
	s.tools["migrationReport"] = s.toolMigrationReport
	s.tools["getStatus"] = s.toolGetStatus
}

// GetToolDefinitions returns all tool definitions
func (s *MCPServer) GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "migrateTest",
			Description: "Migrate a WebdriverIO test source to Playwright. Returns the rewritten code, a change log, and notes flagging anything that needs manual review.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"code": map[string]interface{}{
						"type":        "string",
						"description": "The test source to migrate",
					},
					"filePath": map[string]interface{}{
						"type":        "string",
						"description": "Original file path; selects the JavaScript or TypeScript grammar and labels history records",
					},
					"typed": map[string]interface{}{
						"type":        "boolean",
						"description": "Annotate injected page parameters with the Page type and add the type-only import",
					},
				},
				"required": []string{"code"},
			},
		},
		{
			Name:        "analyzeTest",
			Description: "Inspect a test source without changing it. Reports the detected framework, test structure, selectors, commands, assertions and tags.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"code": map[string]interface{}{
						"type":        "string",
						"description": "The test source to analyze",
					},
					"filePath": map[string]interface{}{
						"type":        "string",
						"description": "Original file path; selects the JavaScript or TypeScript grammar",
					},
				},
				"required": []string{"code"},
			},
		},
		{
			Name:        "generatePageObject",
			Description: "Synthesize a Playwright page-object class skeleton from a migrated test source. Collects navigation URLs, locators and actions into a class named after the file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"code": map[string]interface{}{
						"type":        "string",
						"description": "Migrated Playwright test source",
					},
					"filePath": map[string]interface{}{
						"type":        "string",
						"description": "Test file path the class name is derived from, e.g. login.spec.js -> LoginPage",
					},
				},
				"required": []string{"code", "filePath"},
			},
		},
		{
			Name:        "migrateConfig",
			Description: "Translate a wdio.conf.js into a playwright.config.ts. Carries over baseUrl, spec globs and browser projects; everything else is left to manual review.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"code": map[string]interface{}{
						"type":        "string",
						"description": "The wdio.conf.js source",
					},
				},
				"required": []string{"code"},
			},
		},
		{
			Name:        "registerMapping",
			Description: "Register a custom command mapping for unmapped WebdriverIO commands. Existing mappings are never overwritten.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Legacy command name, e.g. 'scrollIntoView' or 'browser.keys'",
					},
					"target": map[string]interface{}{
						"type":        "string",
						"description": "Playwright call name, e.g. 'scrollIntoViewIfNeeded'",
					},
					"optionLiteral": map[string]interface{}{
						"type":        "string",
						"description": "Optional argument fragment inserted into the rewritten call",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "Short note shown in change logs",
					},
				},
				"required": []string{"name", "target"},
			},
		},
		{
			Name:        "getMigrationDocs",
			Description: "Look up Playwright documentation pointers for a migration topic. Omit the topic to list available topics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"topic": map[string]interface{}{
						"type":        "string",
						"description": "Topic name, e.g. 'selectors', 'assertions', 'hooks', 'tags'",
					},
				},
			},
		},
		{
			Name:        "migrationReport",
			Description: "Render the accumulated migration report for this session as markdown or structured records.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"markdown", "json"},
						"default":     "markdown",
						"description": "Output format",
					},
				},
			},
		},
		{
			Name:        "getStatus",
			Description: "Get server status: version, registered tools, mapping table size and history availability",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
