// Package report renders an AnalysisResult for a human or another tool to
// consume: one JSON-line-per-record export and a self-contained Mermaid
// HTML dependency map. Grounded on the teacher's output package
// (output/jsonl.go's JSONLWriter, output/mermaid.go's ExportMermaidHTML),
// adapted from exporting Java class/relation elements to exporting file
// results, findings, and dependency edges.
package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// JSONLWriter writes one JSON value per line, matching the teacher's
// JSONLWriter.
type JSONLWriter struct {
	encoder *json.Encoder
}

// NewJSONLWriter wraps w for line-delimited JSON output.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{encoder: json.NewEncoder(w)}
}

// Write encodes v as one JSON line.
func (w *JSONLWriter) Write(v interface{}) error {
	return w.encoder.Encode(v)
}

// fileRecord and findingRecord give each JSONL line a "kind" discriminator
// so a downstream reader can distinguish record types without inspecting
// shape, the same role the teacher's model.CodeElement.Kind field plays in
// output/jsonl.go.
type fileRecord struct {
	Kind string                       `json:"kind"`
	File *codeintel.FileAnalysisResult `json:"file"`
}

type findingRecord struct {
	Kind    string             `json:"kind"`
	Finding *codeintel.Finding `json:"finding"`
}

type edgeRecord struct {
	Kind string `json:"kind"`
	From string `json:"from"`
	To   string `json:"to"`
}

// ExportJSONL writes result's file results, every finding in
// result.Findings (file-level and project-level alike), and
// dependency-graph edges to path as line-delimited JSON, one record per
// line. Returns the number of records written.
func ExportJSONL(path string, result *codeintel.AnalysisResult) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	writer := NewJSONLWriter(f)
	count := 0

	for _, file := range result.Files {
		if err := writer.Write(fileRecord{Kind: "file", File: file}); err != nil {
			return count, err
		}
		count++
	}

	for _, finding := range result.Findings {
		if err := writer.Write(findingRecord{Kind: "finding", Finding: finding}); err != nil {
			return count, err
		}
		count++
	}

	if result.Graph != nil {
		for from, node := range result.Graph.Nodes {
			for _, to := range node.Imports {
				if err := writer.Write(edgeRecord{Kind: "edge", From: from, To: to}); err != nil {
					return count, err
				}
				count++
			}
		}
	}

	return count, nil
}
