// Package impact implements the Impact & Stability Analyzer (component
// C6): per-file stability metrics and a change-risk score computed by
// BFS over the reverse dependency edges. The general shape -- derive one
// per-node scalar score from the dependency graph's topology -- is the
// same move the wider example pack makes in
// petar-djukic-go-coder's internal/repomap/pagerank.go (there via
// eigenvector iteration rather than BFS); this package implements the
// spec's own weighted-reachability formula directly instead of adopting
// PageRank's algorithm.
package impact

import "github.com/codelens-dev/codeintel-core/pkg/codeintel"

// ComputeStabilityMetrics returns one StabilityMetric per node in graph,
// per spec §4.6: ca = |importedBy|, ce = |imports|, stability =
// ce/(ca+ce), 0 when the node is isolated.
func ComputeStabilityMetrics(graph *codeintel.DependencyGraph) map[string]*codeintel.StabilityMetric {
	out := make(map[string]*codeintel.StabilityMetric, len(graph.Nodes))
	for path, n := range graph.Nodes {
		ca, ce := len(n.ImportedBy), len(n.Imports)
		var stability float64
		if ca+ce > 0 {
			stability = float64(ce) / float64(ca+ce)
		}
		out[path] = &codeintel.StabilityMetric{Ca: ca, Ce: ce, Stability: stability}
	}
	return out
}

// ComputeRiskScores returns one RiskScore per node in graph, per spec
// §4.6: for file f, BFS over the reverse edges (importedBy) from f,
// summing (1 - stability(f)) * 1/(depth(n)+1) over every node n reached
// at depth > 0, so a stable file with many dependents scores highest.
func ComputeRiskScores(graph *codeintel.DependencyGraph, stability map[string]*codeintel.StabilityMetric) map[string]codeintel.RiskScore {
	out := make(map[string]codeintel.RiskScore, len(graph.Nodes))
	for path := range graph.Nodes {
		out[path] = codeintel.RiskScore(riskScoreFor(graph, stability, path))
	}
	return out
}

func riskScoreFor(graph *codeintel.DependencyGraph, stability map[string]*codeintel.StabilityMetric, start string) float64 {
	type queued struct {
		path  string
		depth int
	}

	visited := map[string]bool{start: true}
	queue := []queued{{path: start, depth: 0}}

	var startStability float64
	if s, ok := stability[start]; ok {
		startStability = s.Stability
	}

	var score float64
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		node := graph.Nodes[cur.path]
		if node == nil {
			continue
		}
		for _, next := range node.ImportedBy {
			if visited[next] {
				continue
			}
			visited[next] = true
			depth := cur.depth + 1

			score += (1 - startStability) * (1 / float64(depth+1))
			queue = append(queue, queued{path: next, depth: depth})
		}
	}
	return score
}
