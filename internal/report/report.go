// Package report accumulates per-file migration outcomes and renders them as
// a markdown summary suitable for pasting into a pull request description.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
)

// Status classifies the outcome of migrating one file.
type Status string

const (
	StatusMigrated Status = "migrated"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// FileRecord is the result of running the migration over a single file.
type FileRecord struct {
	ID      string    `json:"id"`
	File    string    `json:"file"`
	Status  Status    `json:"status"`
	Changes int       `json:"changes"`
	Notes   []string  `json:"notes,omitempty"`
	Tags    []string  `json:"tags,omitempty"`
	When    time.Time `json:"when"`
}

// Report collects FileRecords across a migration run. Safe for concurrent
// use.
type Report struct {
	mu      sync.Mutex
	records []FileRecord
	started time.Time
}

func New() *Report {
	return &Report{started: time.Now()}
}

// Add records the outcome for one file and returns the record id.
func (r *Report) Add(file string, status Status, changes int, notes, tags []string) string {
	rec := FileRecord{
		ID:      uuid.NewString(),
		File:    file,
		Status:  status,
		Changes: changes,
		Notes:   notes,
		Tags:    tags,
		When:    time.Now(),
	}

	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()

	return rec.ID
}

// Records returns a copy of the accumulated records in insertion order.
func (r *Report) Records() []FileRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]FileRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Summary holds aggregate counts over a report.
type Summary struct {
	Files    int `json:"files"`
	Migrated int `json:"migrated"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
	Changes  int `json:"changes"`
}

func (r *Report) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	var s Summary
	for _, rec := range r.records {
		s.Files++
		s.Changes += rec.Changes
		switch rec.Status {
		case StatusMigrated:
			s.Migrated++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Markdown renders the report as a markdown document with a per-file table
// and a notes section for anything that needs manual review.
func (r *Report) Markdown() string {
	records := r.Records()
	summary := r.Summary()

	var b bytes.Buffer
	b.WriteString("# Migration Report\n\n")
	fmt.Fprintf(&b, "Generated %s\n\n", r.started.Format(time.RFC3339))
	fmt.Fprintf(&b, "**%d** file(s): %d migrated, %d skipped, %d failed, %d change(s) applied.\n\n",
		summary.Files, summary.Migrated, summary.Skipped, summary.Failed, summary.Changes)

	if len(records) == 0 {
		b.WriteString("No files processed.\n")
		return b.String()
	}

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"File", "Status", "Changes", "Tags"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})
	for _, rec := range records {
		table.Append([]string{
			rec.File,
			string(rec.Status),
			fmt.Sprintf("%d", rec.Changes),
			strings.Join(rec.Tags, ", "),
		})
	}
	table.Render()

	noted := false
	for _, rec := range records {
		if len(rec.Notes) == 0 {
			continue
		}
		if !noted {
			b.WriteString("\n## Manual review\n\n")
			noted = true
		}
		fmt.Fprintf(&b, "### %s\n\n", rec.File)
		for _, note := range rec.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// TagIndex returns every tag seen across the run with the files carrying it,
// tags sorted alphabetically.
func (r *Report) TagIndex() map[string][]string {
	records := r.Records()

	idx := make(map[string][]string)
	for _, rec := range records {
		for _, tag := range rec.Tags {
			idx[tag] = append(idx[tag], rec.File)
		}
	}
	for tag := range idx {
		sort.Strings(idx[tag])
	}
	return idx
}
