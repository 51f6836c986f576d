package depgraph_test

import (
	"fmt"
	"testing"

	"github.com/codelens-dev/codeintel-core/internal/depgraph"
	"github.com/codelens-dev/codeintel-core/internal/logging"
	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

func fileResult(path, language string, deps ...string) *codeintel.FileAnalysisResult {
	f := codeintel.NewFileAnalysisResult(path, language)
	f.Dependencies = deps
	return f
}

func TestBuild_RelativeImportResolvesWithinProject(t *testing.T) {
	files := []*codeintel.FileAnalysisResult{
		fileResult("/proj/a.ts", "typescript", "./b"),
		fileResult("/proj/b.ts", "typescript"),
	}
	graph := depgraph.Build(files, logging.Nop())

	a := graph.Nodes["/proj/a.ts"]
	if a == nil || len(a.Imports) != 1 || a.Imports[0] != "/proj/b.ts" {
		t.Fatalf("expected a.ts to import b.ts, got %+v", a)
	}
	b := graph.Nodes["/proj/b.ts"]
	if b == nil || len(b.ImportedBy) != 1 || b.ImportedBy[0] != "/proj/a.ts" {
		t.Fatalf("expected b.ts importedBy a.ts, got %+v", b)
	}
}

func TestBuild_PackageSpecifierDropped(t *testing.T) {
	files := []*codeintel.FileAnalysisResult{
		fileResult("/proj/a.ts", "typescript", "lodash"),
	}
	graph := depgraph.Build(files, logging.Nop())

	a := graph.Nodes["/proj/a.ts"]
	if len(a.Imports) != 0 {
		t.Fatalf("expected no edges for external package, got %v", a.Imports)
	}
}

func TestBuild_TwoFileCycle(t *testing.T) {
	files := []*codeintel.FileAnalysisResult{
		fileResult("/proj/a.ts", "typescript", "./b"),
		fileResult("/proj/b.ts", "typescript", "./a"),
	}
	graph := depgraph.Build(files, logging.Nop())

	cycles := graph.GetCircularDependencies()
	if len(cycles) != 1 {
		t.Fatalf("GetCircularDependencies() = %v, want exactly one cycle", cycles)
	}
	cycle := cycles[0]
	if cycle[0] != cycle[len(cycle)-1] {
		t.Fatalf("cycle %v is not closed", cycle)
	}
}

func TestBuild_DTSSpecifierResolvesToDotDotTS(t *testing.T) {
	files := []*codeintel.FileAnalysisResult{
		fileResult("/proj/a.ts", "typescript", "./shim.d"),
		fileResult("/proj/shim.d.ts", "typescript"),
	}
	graph := depgraph.Build(files, logging.Nop())

	a := graph.Nodes["/proj/a.ts"]
	if a == nil || len(a.Imports) != 1 || a.Imports[0] != "/proj/shim.d.ts" {
		t.Fatalf("expected a.ts to import shim.d.ts, got %+v", a)
	}
}

type recordingLogger struct {
	debugMsgs []string
}

func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Debug(msg string, args ...any) {
	r.debugMsgs = append(r.debugMsgs, msg)
}

func TestBuild_UnresolvedSpecifierLogsAtDebug(t *testing.T) {
	files := []*codeintel.FileAnalysisResult{
		fileResult("/proj/a.ts", "typescript", "./missing"),
	}
	logger := &recordingLogger{}
	graph := depgraph.Build(files, logger)

	a := graph.Nodes["/proj/a.ts"]
	if len(a.Imports) != 0 {
		t.Fatalf("expected no edge for an unresolved specifier, got %v", a.Imports)
	}
	if len(logger.debugMsgs) != 1 {
		t.Fatalf("expected exactly one debug log for the unresolved specifier, got %v", logger.debugMsgs)
	}
}

func TestBuild_ThirtyDependentsGivesZeroStability(t *testing.T) {
	files := []*codeintel.FileAnalysisResult{fileResult("/proj/utils.ts", "typescript")}
	for i := 0; i < 30; i++ {
		files = append(files, fileResult(fmt.Sprintf("/proj/caller%d.ts", i), "typescript", "./utils"))
	}
	graph := depgraph.Build(files, logging.Nop())

	utils := graph.Nodes["/proj/utils.ts"]
	if utils.Instability == nil || *utils.Instability != 0 {
		t.Fatalf("expected utils.ts instability 0, got %v", utils.Instability)
	}
	if len(utils.ImportedBy) != 30 {
		t.Fatalf("expected 30 importers, got %d", len(utils.ImportedBy))
	}
}
