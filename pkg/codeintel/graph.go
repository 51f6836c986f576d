package codeintel

import "sort"

// DependencyNode is one file's position in the dependency graph: the set
// of files it imports (efferent) and the set of files that import it
// (afferent), plus the derived instability score once computed.
//
// Per spec invariant: for every edge A -> B in any Imports list there is
// an inverse entry A in B.ImportedBy, and symmetrically. Neighbor lists
// store paths (keys into the owning graph), not node references, which is
// what lets the graph break the natural A.Imports <-> B.ImportedBy cycle.
type DependencyNode struct {
	FilePath     string   `json:"filePath"`
	Imports      []string `json:"imports"`
	ImportedBy   []string `json:"importedBy"`
	Instability  *float64 `json:"instability,omitempty"`
}

// DependencyGraph owns its nodes, keyed by file path.
type DependencyGraph struct {
	Nodes map[string]*DependencyNode `json:"nodes"`
}

// NewDependencyGraph returns an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{Nodes: make(map[string]*DependencyNode)}
}

// EnsureNode returns the node for path, creating and pre-seeding an empty
// one if it doesn't exist yet. Every analyzed file must be pre-seeded this
// way even if it ends up with zero edges (spec §3 invariant).
func (g *DependencyGraph) EnsureNode(path string) *DependencyNode {
	if n, ok := g.Nodes[path]; ok {
		return n
	}
	n := &DependencyNode{FilePath: path}
	g.Nodes[path] = n
	return n
}

// AddEdge records that "from" imports "to". Both nodes are created on
// demand if absent. Neighbor lists are deduplicated and kept sorted so
// that traversal and serialization are deterministic regardless of the
// order edges were inserted in.
// A file importing itself is permitted and produces a length-1 cycle
// (spec §8 boundary case) -- AddEdge does not special-case from == to.
func (g *DependencyGraph) AddEdge(from, to string) {
	fromNode := g.EnsureNode(from)
	toNode := g.EnsureNode(to)

	fromNode.Imports = insertSortedUnique(fromNode.Imports, to)
	toNode.ImportedBy = insertSortedUnique(toNode.ImportedBy, from)
}

func insertSortedUnique(list []string, v string) []string {
	idx := sort.SearchStrings(list, v)
	if idx < len(list) && list[idx] == v {
		return list
	}
	list = append(list, "")
	copy(list[idx+1:], list[idx:])
	list[idx] = v
	return list
}

// ComputeInstability sets Instability on every node per spec §3:
// instability(n) = ce / (ca + ce), 0 when both are zero.
func (g *DependencyGraph) ComputeInstability() {
	for _, n := range g.Nodes {
		ca, ce := len(n.ImportedBy), len(n.Imports)
		var v float64
		if ca+ce > 0 {
			v = float64(ce) / float64(ca+ce)
		}
		n.Instability = &v
	}
}

// GetCircularDependencies returns every circular dependency in the graph,
// deduplicated, each normalized to begin and end at its lexicographically
// smallest element (per spec §4.5). Deterministic and O(V+E).
func (g *DependencyGraph) GetCircularDependencies() [][]string {
	paths := make([]string, 0, len(g.Nodes))
	for p := range g.Nodes {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var (
		cycles []([]string)
		seen   = make(map[string]bool)

		onStack = make(map[string]bool)
		stack   []string
		visited = make(map[string]bool)
	)

	var dfs func(node string)
	dfs = func(node string) {
		visited[node] = true
		onStack[node] = true
		stack = append(stack, node)

		neighbors := g.Nodes[node].Imports
		for _, next := range neighbors {
			if onStack[next] {
				cycle := extractCycle(stack, next)
				key := joinCycle(cycle)
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, cycle)
				}
				continue
			}
			if !visited[next] {
				dfs(next)
			}
		}

		stack = stack[:len(stack)-1]
		onStack[node] = false
	}

	for _, p := range paths {
		if !visited[p] {
			dfs(p)
		}
	}

	sort.Slice(cycles, func(i, j int) bool { return joinCycle(cycles[i]) < joinCycle(cycles[j]) })
	return cycles
}

// extractCycle slices the DFS stack from the back-edge target to the
// current top of stack, then normalizes (rotates to start at the
// lexicographically smallest element) and closes the cycle by repeating
// that element at the end.
func extractCycle(stack []string, target string) []string {
	start := -1
	for i, v := range stack {
		if v == target {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}
	raw := append([]string{}, stack[start:]...)

	minIdx := 0
	for i, v := range raw {
		if v < raw[minIdx] {
			minIdx = i
		}
	}
	rotated := append(append([]string{}, raw[minIdx:]...), raw[:minIdx]...)
	rotated = append(rotated, rotated[0])
	return rotated
}

func joinCycle(cycle []string) string {
	out := ""
	for i, v := range cycle {
		if i > 0 {
			out += "\x00"
		}
		out += v
	}
	return out
}
