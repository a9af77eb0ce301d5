// Package file provides helpers for loading vecmath job files and persisting
// debug transcripts to disk.
package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/CK6170/vecmath-go/matrix"
	models "github.com/CK6170/vecmath-go/models"
	ui "github.com/CK6170/vecmath-go/ui"
)

// Re-export the job types so callers can import `file` alone.
type JOB = models.JOB
type OP = models.OP

// LoadJob reads and validates the job file at path.
func LoadJob(path string) (*JOB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job: %w", err)
	}
	var job JOB
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job %s: %w", path, err)
	}
	for i, op := range job.OPS {
		if op == nil {
			return nil, fmt.Errorf("op %d: empty", i)
		}
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
	}
	if job.VECTORS == nil {
		job.VECTORS = map[string][]float64{}
	}
	return &job, nil
}

// AppendToFile appends content + newline to file, creating it if it does not
// exist.
func AppendToFile(file, content string) {
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		ui.Warningf("Warning: failed to open file for append: %v\n", err)
		return
	}
	defer func() { _ = f.Close() }()
	if _, err := f.WriteString(content + "\n"); err != nil {
		ui.Warningf("Warning: failed to write to file: %v\n", err)
	}
}

// RecordData prints vec and returns debug with vec's one-line form appended.
func RecordData(debug string, vec *matrix.Vector, title, format string) string {
	text, line := vec.ToStrings(title, format)
	fmt.Println(text)
	return debug + line + "\n"
}
