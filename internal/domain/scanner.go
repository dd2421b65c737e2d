package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"codectx.dev/pkg/codectx/internal/adapter"
	m "codectx.dev/pkg/codectx/internal/model"
)

// ErrInvalidLowerBound is returned when a scan is asked to go above line 1.
var ErrInvalidLowerBound = errors.New("scan lower bound must be at least 1")

// ContextScanner walks a document backwards collecting enclosing openers.
type ContextScanner struct {
	reader     adapter.LineReader
	classifier *LineClassifier
}

// NewContextScanner creates a scanner over reader. A nil classifier selects
// the default opener set.
func NewContextScanner(reader adapter.LineReader, classifier *LineClassifier) *ContextScanner {
	if classifier == nil {
		classifier = NewLineClassifier()
	}

	return &ContextScanner{reader: reader, classifier: classifier}
}

// Scan returns the opener lines from upperLine back to lowerBound whose
// indents are successively shorter and at least indentFloor, ordered by line
// number, together with the smallest indent observed.
//
// Scanning stops as soon as the indent drops to indentFloor. upperLine itself
// is never reported.
func (s *ContextScanner) Scan(upperLine, lowerBound, indentFloor int) ([]m.ContextEntry, int, error) {
	if lowerBound < 1 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidLowerBound, lowerBound)
	}

	var entries []m.ContextEntry

	ceiling := m.Infinity
	visited := 0

	for lineNumber := upperLine; lineNumber >= lowerBound; lineNumber-- {
		text, err := s.reader.Line(lineNumber)
		if err != nil {
			return nil, 0, fmt.Errorf("read line %d: %w", lineNumber, err)
		}

		visited++

		line := s.classifier.Classify(text)
		if line.Indent >= ceiling {
			continue
		}

		ceiling = line.Indent

		// else/elif continue the block of the matching if/for/try: keep that
		// header eligible at the same indent.
		if line.Opener == m.KeywordElse || line.Opener == m.KeywordElif {
			ceiling++
		}

		if line.Opener != m.KeywordNone && lineNumber < upperLine && line.Indent >= indentFloor {
			entries = append(entries, m.ContextEntry{
				LineNumber: lineNumber,
				Indent:     line.Indent,
				Text:       line.Text,
				Opener:     line.Opener,
			})
		}

		if ceiling <= indentFloor {
			break
		}
	}

	slices.Reverse(entries)

	slog.Debug("scanned context",
		"upper", upperLine, "lower", lowerBound, "floor", indentFloor,
		"visited", visited, "found", len(entries), "ceiling", ceiling)

	return entries, ceiling, nil
}
