package nn

import (
	"fmt"

	"github.com/emicklei/dot"
)

// Graph renders the model structure as a directed DOT graph.
//
// Each layer becomes a cluster holding one node per parameter, labelled
// with the parameter name and shape. Consecutive layers are linked in
// model order.
func (m *Model) Graph() *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	var prev *dot.Node
	for i, l := range m.layers {
		cluster := g.Subgraph(fmt.Sprintf("%d:%s", i, l.name), dot.ClusterOption{})
		head := cluster.Node(fmt.Sprintf("layer_%d", i)).
			Label(l.name).
			Attr("shape", "box")
		for _, p := range l.Parameters() {
			pn := cluster.Node(fmt.Sprintf("layer_%d_%s", i, p.Name())).
				Label(fmt.Sprintf("%s %v", p.Name(), p.Tensor().Shape())).
				Attr("shape", "ellipse")
			cluster.Edge(head, pn).Attr("style", "dashed")
		}
		if prev != nil {
			g.Edge(*prev, head)
		}
		prev = &head
	}
	return g
}

// DOT returns the Graph rendered as DOT source.
func (m *Model) DOT() string {
	return m.Graph().String()
}
