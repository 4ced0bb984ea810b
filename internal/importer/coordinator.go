// Package importer coordinates batch imports of survey workbooks: directory
// scanning, per-file failure isolation, persistence, and progress reporting.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wayfarerboy/lintstock-cli/internal/model"
	"github.com/wayfarerboy/lintstock-cli/internal/parser"
	"github.com/wayfarerboy/lintstock-cli/internal/service/excel"
	"github.com/wayfarerboy/lintstock-cli/internal/store"
)

// Coordinator drives survey imports against one store.
type Coordinator struct {
	store   *store.Store
	jsonDir string // when set, each parsed document is also written here
}

// NewCoordinator creates an import coordinator. jsonDir may be empty to skip
// writing JSON files alongside the store.
func NewCoordinator(s *store.Store, jsonDir string) *Coordinator {
	return &Coordinator{store: s, jsonDir: jsonDir}
}

// ProgressEvent is one step of an import, streamed to the caller.
type ProgressEvent struct {
	Type      string      `json:"type"` // start/file_start/file_done/file_error/done
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// FileResult is the outcome of importing one file.
type FileResult struct {
	FileName   string `json:"fileName"`
	DocumentID string `json:"documentId,omitempty"`
	ClientName string `json:"clientName,omitempty"`
	Status     string `json:"status"` // imported/error
	Error      string `json:"error,omitempty"`
}

// Report summarizes one batch import.
type Report struct {
	TotalFiles int           `json:"totalFiles"`
	Imported   int           `json:"imported"`
	Failed     int           `json:"failed"`
	Duration   time.Duration `json:"duration"`
	Files      []FileResult  `json:"files"`
}

// ImportFile parses, validates, and stores a single workbook file. Parse
// failures are returned to the caller and recorded in the import log; nothing
// partial is stored.
func (c *Coordinator) ImportFile(path string) (FileResult, error) {
	fileName := filepath.Base(path)
	result := FileResult{FileName: fileName, Status: "error"}

	logID, logErr := c.store.CreateImportLog(fileName)

	wb, err := excel.LoadWorkbookFile(path)
	if err != nil {
		c.completeLog(logID, logErr, "error", err)
		result.Error = err.Error()
		return result, err
	}

	doc, err := parser.Parse(wb)
	if err != nil {
		c.completeLog(logID, logErr, "error", err)
		result.Error = err.Error()
		return result, err
	}

	id := uuid.New().String()
	if err := c.store.SaveDocument(id, fileName, doc); err != nil {
		c.completeLog(logID, logErr, "error", err)
		result.Error = err.Error()
		return result, err
	}

	if c.jsonDir != "" {
		if err := c.writeJSON(fileName, doc); err != nil {
			// The document is stored; a failed JSON copy is not fatal.
			result.Error = err.Error()
		}
	}

	c.completeLog(logID, logErr, "imported", nil)

	result.Status = "imported"
	result.DocumentID = id
	result.ClientName = doc.ClientName
	return result, nil
}

// ImportDir imports every .xlsx file in dir (sorted by name), isolating
// per-file failures, and streams progress events. The channel closes after
// the final done event, which carries the batch Report.
func (c *Coordinator) ImportDir(dir string) <-chan ProgressEvent {
	events := make(chan ProgressEvent, 100)

	go func() {
		defer close(events)
		c.importDir(dir, events)
	}()

	return events
}

func (c *Coordinator) importDir(dir string, events chan ProgressEvent) {
	start := time.Now()

	files, err := listWorkbooks(dir)
	if err != nil {
		c.send(events, ProgressEvent{
			Type:      "file_error",
			Message:   fmt.Sprintf("failed to scan %s: %v", dir, err),
			Timestamp: time.Now(),
		})
		return
	}

	c.send(events, ProgressEvent{
		Type:      "start",
		Message:   fmt.Sprintf("found %d survey files", len(files)),
		Data:      map[string]int{"totalFiles": len(files)},
		Timestamp: time.Now(),
	})

	report := Report{TotalFiles: len(files), Files: []FileResult{}}

	for _, path := range files {
		c.send(events, ProgressEvent{
			Type:      "file_start",
			Message:   fmt.Sprintf("parsing %s", filepath.Base(path)),
			Timestamp: time.Now(),
		})

		result, err := c.ImportFile(path)
		report.Files = append(report.Files, result)
		if err != nil {
			report.Failed++
			c.send(events, ProgressEvent{
				Type:      "file_error",
				Message:   fmt.Sprintf("failed %s: %v", filepath.Base(path), err),
				Data:      result,
				Timestamp: time.Now(),
			})
			continue
		}

		report.Imported++
		c.send(events, ProgressEvent{
			Type:      "file_done",
			Message:   fmt.Sprintf("imported %s (%s)", result.FileName, result.ClientName),
			Data:      result,
			Timestamp: time.Now(),
		})
	}

	report.Duration = time.Since(start)

	c.send(events, ProgressEvent{
		Type:      "done",
		Message:   fmt.Sprintf("imported %d/%d files", report.Imported, report.TotalFiles),
		Data:      report,
		Timestamp: time.Now(),
	})
}

func (c *Coordinator) send(events chan ProgressEvent, ev ProgressEvent) {
	events <- ev
}

func (c *Coordinator) completeLog(logID int64, logErr error, status string, cause error) {
	if logErr != nil {
		return
	}
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	_ = c.store.CompleteImportLog(logID, status, msg)
}

// writeJSON mirrors a parsed document to the json output directory under the
// workbook's base name.
func (c *Coordinator) writeJSON(fileName string, doc *model.Document) error {
	if err := os.MkdirAll(c.jsonDir, 0755); err != nil {
		return fmt.Errorf("failed to create json dir: %w", err)
	}

	base := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ".json"
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := os.WriteFile(filepath.Join(c.jsonDir, base), body, 0644); err != nil {
		return fmt.Errorf("failed to write json file: %w", err)
	}
	return nil
}

// listWorkbooks returns the .xlsx files directly inside dir, sorted by name.
// Excel lock files (~$ prefix) are skipped.
func listWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ".xlsx") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}
