package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codelens-dev/codeintel-core/pkg/codeintel"
)

// ExportMermaidHTML writes a self-contained HTML page rendering result's
// dependency graph as a Mermaid flowchart, grouped by directory the way
// the teacher's ExportMermaidHTML groups by Java package
// (output/mermaid.go). Circular-dependency edges are drawn with a
// distinct arrow style so a reviewer can spot them visually.
func ExportMermaidHTML(outputPath string, result *codeintel.AnalysisResult) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	f.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Dependency Map</title>
    <script src="https://cdn.jsdelivr.net/npm/mermaid/dist/mermaid.min.js"></script>
    <style>
        body { font-family: -apple-system, sans-serif; background: #f0f2f5; margin: 20px; }
        .mermaid { background: white; padding: 20px; border-radius: 12px; box-shadow: 0 4px 15px rgba(0,0,0,0.1); }
        h1 { color: #1a1a1a; text-align: center; }
    </style>
</head>
<body>
    <h1>Dependency Map</h1>
    <div class="mermaid">
    graph LR
`)

	if result.Graph == nil {
		f.WriteString("    </div>\n</body>\n</html>")
		return nil
	}

	cycleEdges := cycleEdgeSet(result.Graph.GetCircularDependencies())

	dirGroups := make(map[string][]string)
	for path := range result.Graph.Nodes {
		dir := filepath.Dir(path)
		dirGroups[dir] = append(dirGroups[dir], path)
	}

	dirs := make([]string, 0, len(dirGroups))
	for d := range dirGroups {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		files := dirGroups[dir]
		sort.Strings(files)
		fmt.Fprintf(f, "    subgraph \"%s\"\n", dir)
		for _, path := range files {
			fmt.Fprintf(f, "        %s[\"%s\"]\n", safeID(path), filepath.Base(path))
		}
		f.WriteString("    end\n")
	}

	edges := make([]string, 0)
	for from, node := range result.Graph.Nodes {
		for _, to := range node.Imports {
			edges = append(edges, from+"\x00"+to)
		}
	}
	sort.Strings(edges)

	for _, e := range edges {
		parts := strings.SplitN(e, "\x00", 2)
		from, to := parts[0], parts[1]
		arrow := "-->"
		if cycleEdges[from+"\x00"+to] {
			arrow = "==circular==>"
		}
		fmt.Fprintf(f, "    %s %s %s\n", safeID(from), arrow, safeID(to))
	}

	f.WriteString(`    </div>
    <script>
        mermaid.initialize({
            startOnLoad: true,
            maxTextSize: 100000,
            theme: 'default',
            flowchart: { useMaxWidth: false, htmlLabels: true }
        });
    </script>
</body>
</html>`)

	return nil
}

// cycleEdgeSet flattens GetCircularDependencies into a from\x00to lookup
// set so ExportMermaidHTML can style each edge in one pass.
func cycleEdgeSet(cycles [][]string) map[string]bool {
	set := make(map[string]bool)
	for _, cycle := range cycles {
		for i := 0; i+1 < len(cycle); i++ {
			set[cycle[i]+"\x00"+cycle[i+1]] = true
		}
	}
	return set
}

// safeID mirrors the teacher's safeID: sanitize a file path into a
// Mermaid-legal node identifier.
func safeID(id string) string {
	r := strings.NewReplacer(".", "_", "/", "_", "-", "_", "\\", "_", ":", "_", "@", "_")
	return "n_" + r.Replace(id)
}
