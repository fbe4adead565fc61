package outofscope

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"vaccine-assistant/internal/models"
)

// CSVHeader is written once when the log file is created.
var CSVHeader = []string{"user_input", "intent", "entities", "timestamp"}

// CSVSink keeps the log in a delimited file.
type CSVSink struct {
	path string
}

func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

func (s *CSVSink) Name() string { return "csv" }

func (s *CSVSink) Contains(_ context.Context, userInput string) (bool, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("read %s: %w", s.path, err)
		}
		if first {
			first = false
			continue
		}
		if len(row) > 0 && row[0] == userInput {
			return true, nil
		}
	}
}

func (s *CSVSink) Append(_ context.Context, entry models.OutOfScopeEntry) (bool, error) {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, err
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(CSVHeader); err != nil {
			return false, err
		}
	}
	if err := w.Write([]string{entry.UserInput, entry.Intent, entry.EntitiesString(), entry.TimestampString()}); err != nil {
		return false, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return false, err
	}
	return true, nil
}
