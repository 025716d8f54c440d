package decoder

import (
	"math/bits"
	"sort"

	"github.com/Manu343726/isagen/pkg/utils"
)

// Decision tree node. Inner nodes switch on the word bits selected by Mask, leaves hold
// the candidates left, sorted by decreasing specificity
type Node struct {
	// Word bits switched on. Zero for leaves
	Mask uint32
	// Children keyed by word & Mask, sorted by key
	Children []*Branch
	// Node searched when no keyed child matches the word, nil if there is none
	Fallback *Node
	// Leaf candidates
	Candidates []InstructionID
}

// Keyed child of a node
type Branch struct {
	Key  uint32
	Node *Node
}

// Returns true if the node is a leaf
func (n *Node) IsLeaf() bool {
	return n.Mask == 0
}

// Returns the child for the given key, nil if there is none
func (n *Node) Child(key uint32) *Node {
	i := sort.Search(len(n.Children), func(i int) bool { return n.Children[i].Key >= key })
	if i < len(n.Children) && n.Children[i].Key == key {
		return n.Children[i].Node
	}

	return nil
}

// Returns the number of levels of the tree
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}

	depth := 0

	for _, child := range n.Children {
		depth = max(depth, child.Node.Depth())
	}

	return 1 + max(depth, n.Fallback.Depth())
}

// Returns the largest number of candidates of a leaf of the tree
func (n *Node) MaxLeafSize() int {
	if n == nil {
		return 0
	}

	size := len(n.Candidates)

	for _, child := range n.Children {
		size = max(size, child.Node.MaxLeafSize())
	}

	return max(size, n.Fallback.MaxLeafSize())
}

func (n *Node) lookup(table *Table, word uint32) InstructionID {
	if n.IsLeaf() {
		for _, id := range n.Candidates {
			if table.Instructions[id].Pattern().Matches(word) {
				return id
			}
		}

		return NoInstruction
	}

	if child := n.Child(word & n.Mask); child != nil {
		if id := child.lookup(table, word); id != NoInstruction {
			return id
		}
	}

	if n.Fallback != nil {
		return n.Fallback.lookup(table, word)
	}

	return NoInstruction
}

type treeBuilder struct {
	table *Table
	width int
}

func (b *treeBuilder) pattern(id InstructionID) (mask uint32, value uint32) {
	pattern := b.table.Instructions[id].Pattern()
	return pattern.Mask, pattern.Value
}

// Picks the unconsumed bit fixed by most candidates, the highest one on ties. Returns -1 if
// candidates fix no unconsumed bit
func (b *treeBuilder) pickBit(candidates []InstructionID, consumed uint32) int {
	best, bestCount := -1, 0

	for bit := b.width - 1; bit >= 0; bit-- {
		if consumed&(1<<bit) != 0 {
			continue
		}

		count := 0
		for _, id := range candidates {
			if mask, _ := b.pattern(id); mask&(1<<bit) != 0 {
				count++
			}
		}

		if count > bestCount {
			best, bestCount = bit, count
		}
	}

	return best
}

func (b *treeBuilder) leaf(candidates []InstructionID) *Node {
	sorted := append([]InstructionID(nil), candidates...)

	sort.SliceStable(sorted, func(i, j int) bool {
		maskI, _ := b.pattern(sorted[i])
		maskJ, _ := b.pattern(sorted[j])
		return bits.OnesCount32(maskI) > bits.OnesCount32(maskJ)
	})

	return &Node{Candidates: sorted}
}

func (b *treeBuilder) build(candidates []InstructionID, consumed uint32) *Node {
	if len(candidates) <= 1 {
		return b.leaf(candidates)
	}

	bit := b.pickBit(candidates, consumed)
	if bit < 0 {
		return b.leaf(candidates)
	}

	var keyed, others []InstructionID
	split := utils.AllOnes[uint32](b.width) &^ consumed

	for _, id := range candidates {
		if mask, _ := b.pattern(id); mask&(1<<bit) != 0 {
			keyed = append(keyed, id)
			split &= mask
		} else {
			others = append(others, id)
		}
	}

	groups := make(map[uint32][]InstructionID)

	for _, id := range keyed {
		_, value := b.pattern(id)
		groups[value&split] = append(groups[value&split], id)
	}

	node := &Node{Mask: split}

	for _, key := range utils.SortedKeys(groups) {
		node.Children = append(node.Children, &Branch{
			Key:  key,
			Node: b.build(groups[key], consumed|split),
		})
	}

	if len(others) > 0 {
		node.Fallback = b.build(others, consumed)
	}

	return node
}
