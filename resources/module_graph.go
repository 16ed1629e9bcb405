package resources

import (
	"errors"
	"fmt"
	"sort"

	graphlib "github.com/dominikbraun/graph"
)

// ModuleGraph is the tree of modules below a scanned root. Vertices are
// directories; edges point from a module (or the root) to the modules
// nested directly inside it.
type ModuleGraph struct {
	Root  string
	graph graphlib.Graph[string, string]
}

// BuildModuleGraph arranges modules found below root into a ModuleGraph.
func BuildModuleGraph(root string, modules []Module) (*ModuleGraph, error) {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed(), graphlib.Acyclic())

	if err := g.AddVertex(root); err != nil {
		return nil, fmt.Errorf("failed to add root %s: %w", root, err)
	}
	for _, module := range modules {
		if err := g.AddVertex(module.Dir); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return nil, fmt.Errorf("failed to add module %s: %w", module.Dir, err)
		}
	}

	for _, module := range modules {
		parent := module.Parent
		if parent == "" {
			parent = root
		}
		if err := g.AddEdge(parent, module.Dir); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
			return nil, fmt.Errorf("failed to link module %s to %s: %w", module.Dir, parent, err)
		}
	}

	return &ModuleGraph{Root: root, graph: g}, nil
}

// Children returns the modules nested directly inside dir, sorted.
func (m *ModuleGraph) Children(dir string) ([]string, error) {
	adjacency, err := m.graph.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	edges, ok := adjacency[dir]
	if !ok {
		return nil, fmt.Errorf("unknown module: %s", dir)
	}

	children := make([]string, 0, len(edges))
	for child := range edges {
		children = append(children, child)
	}
	sort.Strings(children)
	return children, nil
}

// Modules returns every vertex except the root, parents before their
// nested modules, ties broken by path.
func (m *ModuleGraph) Modules() ([]string, error) {
	order, err := graphlib.StableTopologicalSort(m.graph, func(a, b string) bool {
		return a < b
	})
	if err != nil {
		return nil, fmt.Errorf("failed to order modules: %w", err)
	}

	modules := make([]string, 0, len(order))
	for _, dir := range order {
		if dir != m.Root {
			modules = append(modules, dir)
		}
	}
	return modules, nil
}

// Edges returns every parent/child pair, sorted by parent then child.
func (m *ModuleGraph) Edges() ([][2]string, error) {
	adjacency, err := m.graph.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	var edges [][2]string
	for parent, children := range adjacency {
		for child := range children {
			edges = append(edges, [2]string{parent, child})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges, nil
}
