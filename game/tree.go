package game

import "fmt"

// Node is an entry of a Tree. Links to other nodes are arena indices.
type Node struct {
	State      State
	Parent     int // -1 for the root
	Children   []int
	Evaluation float64
	Move       *Move // Move from the parent, nil for the root
	Depth      int
	Best       int // Child chosen by the search, -1 until one is recorded
}

// Tree is an append-only arena of explored states rooted at a single state.
// A tree belongs to one search call and is not safe for concurrent use.
type Tree struct {
	nodes []Node
}

func NewTree(root State) *Tree {
	return &Tree{
		nodes: []Node{{State: root, Parent: -1, Best: -1}},
	}
}

// Root returns the index of the root node.
func (t *Tree) Root() int {
	return 0
}

// Node returns the node at index i. It panics on an index the tree did not hand out.
func (t *Tree) Node(i int) *Node {
	if i < 0 || i >= len(t.nodes) {
		panic(fmt.Sprintf("tree has no node %d", i))
	}
	return &t.nodes[i]
}

// AddChild appends state as a child of parent reached by move and returns its index.
func (t *Tree) AddChild(parent int, state State, move Move) int {
	p := t.Node(parent)
	depth := p.Depth + 1

	index := len(t.nodes)
	t.nodes = append(t.nodes, Node{
		State:  state,
		Parent: parent,
		Move:   &move,
		Depth:  depth,
		Best:   -1,
	})
	// append may have moved the arena, index again
	t.nodes[parent].Children = append(t.nodes[parent].Children, index)
	return index
}

func (t *Tree) SetEvaluation(i int, evaluation float64) {
	t.Node(i).Evaluation = evaluation
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Line returns the moves leading from the root to node i.
func (t *Tree) Line(i int) []Move {
	depth := t.Node(i).Depth
	line := make([]Move, depth)
	for n := t.Node(i); n.Parent >= 0; n = t.Node(n.Parent) {
		depth--
		line[depth] = *n.Move
	}
	return line
}

// SetBest records child as the choice of the search at i.
func (t *Tree) SetBest(i, child int) {
	if t.Node(child).Parent != i {
		panic(fmt.Sprintf("node %d is not a child of %d", child, i))
	}
	t.nodes[i].Best = child
}

// PrincipalVariation follows the recorded choices from the root. Evaluations of
// pruned nodes are only bounds, so the line never compares them.
func (t *Tree) PrincipalVariation() []Move {
	node := t.Root()
	for t.nodes[node].Best >= 0 {
		node = t.nodes[node].Best
	}
	return t.Line(node)
}
