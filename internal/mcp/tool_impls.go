package mcp

import (
	"context"

	"github.com/lucad87/mcp-server-tests-migration/internal/confmig"
	"github.com/lucad87/mcp-server-tests-migration/internal/docs"
	"github.com/lucad87/mcp-server-tests-migration/internal/errors"
	"github.com/lucad87/mcp-server-tests-migration/internal/facts"
	"github.com/lucad87/mcp-server-tests-migration/internal/framework"
	"github.com/lucad87/mcp-server-tests-migration/internal/jsparse"
	"github.com/lucad87/mcp-server-tests-migration/internal/mapping"
	"github.com/lucad87/mcp-server-tests-migration/internal/pageobject"
	"github.com/lucad87/mcp-server-tests-migration/internal/report"
	"github.com/lucad87/mcp-server-tests-migration/internal/rewrite"
	"github.com/lucad87/mcp-server-tests-migration/internal/storage"
)

// defaultFilePath labels history records when the client omits filePath
const defaultFilePath = "test.spec.js"

// toolMigrateTest implements the migrateTest tool
func (s *MCPServer) toolMigrateTest(params map[string]interface{}) (interface{}, error) {
	code, ok := params["code"].(string)
	if !ok {
		return nil, errors.NewInvalidParameter("code", "expected string")
	}

	filePath, _ := params["filePath"].(string)
	if filePath == "" {
		filePath = defaultFilePath
	}

	typed := s.typedOutput
	if t, ok := params["typed"].(bool); ok {
		typed = t
	}

	result, err := s.engine.Migrate(context.Background(), code, rewrite.Options{
		Dialect:     jsparse.DialectFromPath(filePath),
		TypedOutput: typed,
	})
	if err != nil {
		s.report.Add(filePath, report.StatusFailed, 0, []string{err.Error()}, nil)
		s.recordHistory(filePath, string(report.StatusFailed), 0, nil, nil, code, "")
		return nil, err
	}

	status := report.StatusMigrated
	if len(result.ChangeLog) == 0 {
		status = report.StatusSkipped
	}
	s.report.Add(filePath, status, len(result.ChangeLog), result.Notes, result.TagsMigrated)
	s.recordHistory(filePath, string(status), len(result.ChangeLog),
		result.TagsMigrated, result.Notes, code, result.Code)

	return map[string]interface{}{
		"file":         filePath,
		"status":       string(status),
		"framework":    result.Verdict.String(),
		"code":         result.Code,
		"changeLog":    result.ChangeLog,
		"notes":        result.Notes,
		"tagsMigrated": result.TagsMigrated,
	}, nil
}

// toolAnalyzeTest implements the analyzeTest tool
func (s *MCPServer) toolAnalyzeTest(params map[string]interface{}) (interface{}, error) {
	code, ok := params["code"].(string)
	if !ok {
		return nil, errors.NewInvalidParameter("code", "expected string")
	}

	filePath, _ := params["filePath"].(string)
	if filePath == "" {
		filePath = defaultFilePath
	}

	tree, err := jsparse.Parse(context.Background(), []byte(code), jsparse.DialectFromPath(filePath))
	if err != nil {
		return nil, errors.NewParseFailure(filePath, err)
	}

	verdict := framework.Classify(tree)
	extracted := facts.Extract(tree)

	return map[string]interface{}{
		"file":      filePath,
		"framework": verdict.String(),
		"facts":     extracted,
		"summary": map[string]interface{}{
			"testGroups": len(extracted.TestGroups),
			"testCases":  len(extracted.TestCases),
			"hooks":      len(extracted.Hooks),
			"selectors":  len(extracted.Selectors),
			"commands":   len(extracted.Commands),
			"assertions": len(extracted.Assertions),
			"tags":       extracted.Tags,
		},
	}, nil
}

// toolGeneratePageObject implements the generatePageObject tool
func (s *MCPServer) toolGeneratePageObject(params map[string]interface{}) (interface{}, error) {
	code, ok := params["code"].(string)
	if !ok {
		return nil, errors.NewInvalidParameter("code", "expected string")
	}
	filePath, ok := params["filePath"].(string)
	if !ok || filePath == "" {
		return nil, errors.NewInvalidParameter("filePath", "expected non-empty string")
	}

	class, info, err := pageobject.Synthesize(context.Background(), code, filePath)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"className":  class.ClassName,
		"fileName":   class.FileName,
		"sourceText": class.SourceText,
		"info":       info,
	}, nil
}

// toolMigrateConfig implements the migrateConfig tool
func (s *MCPServer) toolMigrateConfig(params map[string]interface{}) (interface{}, error) {
	code, ok := params["code"].(string)
	if !ok {
		return nil, errors.NewInvalidParameter("code", "expected string")
	}

	translated, extracted := confmig.Translate(code)

	return map[string]interface{}{
		"fileName":  "playwright.config.ts",
		"code":      translated,
		"extracted": extracted,
	}, nil
}

// toolRegisterMapping implements the registerMapping tool
func (s *MCPServer) toolRegisterMapping(params map[string]interface{}) (interface{}, error) {
	name, ok := params["name"].(string)
	if !ok || name == "" {
		return nil, errors.NewInvalidParameter("name", "expected non-empty string")
	}
	target, ok := params["target"].(string)
	if !ok || target == "" {
		return nil, errors.NewInvalidParameter("target", "expected non-empty string")
	}

	optionLiteral, _ := params["optionLiteral"].(string)
	description, _ := params["description"].(string)

	added := s.engine.Registry().Register(name, mapping.Mapping{
		Target:        target,
		OptionLiteral: optionLiteral,
		Description:   description,
	})

	s.logger.Info("Mapping registration", map[string]interface{}{
		"name":  name,
		"added": added,
	})

	return map[string]interface{}{
		"name":     name,
		"added":    added,
		"mappings": s.engine.Registry().Len(),
	}, nil
}

// toolGetMigrationDocs implements the getMigrationDocs tool
func (s *MCPServer) toolGetMigrationDocs(params map[string]interface{}) (interface{}, error) {
	topic, _ := params["topic"].(string)

	if topic == "" {
		return map[string]interface{}{
			"topics": docs.Topics(),
		}, nil
	}

	entry, ok := docs.Lookup(topic)
	if !ok {
		return nil, errors.NewInvalidParameter("topic", "unknown topic; call without a topic to list them")
	}

	return entry, nil
}

// toolMigrationReport implements the migrationReport tool
func (s *MCPServer) toolMigrationReport(params map[string]interface{}) (interface{}, error) {
	format, _ := params["format"].(string)

	switch format {
	case "", "markdown":
		return map[string]interface{}{
			"format":   "markdown",
			"report":   s.report.Markdown(),
			"summary":  s.report.Summary(),
			"tagIndex": s.report.TagIndex(),
		}, nil
	case "json":
		return map[string]interface{}{
			"format":  "json",
			"records": s.report.Records(),
			"summary": s.report.Summary(),
		}, nil
	default:
		return nil, errors.NewInvalidParameter("format", "expected 'markdown' or 'json'")
	}
}

// toolGetStatus implements the getStatus tool
func (s *MCPServer) toolGetStatus(params map[string]interface{}) (interface{}, error) {
	return map[string]interface{}{
		"name":           "testmig",
		"version":        s.version,
		"tools":          len(s.tools),
		"mappings":       s.engine.Registry().Len(),
		"historyEnabled": s.history != nil,
		"filesProcessed": s.report.Summary().Files,
	}, nil
}

// recordHistory persists one outcome when the history store is wired. A
// store failure is logged and never surfaces to the client.
func (s *MCPServer) recordHistory(file, status string, changes int, tags, notes []string, input, output string) {
	if s.history == nil {
		return
	}

	_, err := s.history.Record(storage.HistoryEntry{
		File:    file,
		Status:  status,
		Changes: changes,
		Tags:    tags,
		Notes:   notes,
	}, input, output)
	if err != nil {
		s.logger.Warn("Failed to record migration history", map[string]interface{}{
			"file":  file,
			"error": err.Error(),
		})
	}
}
