// Package schema builds the SchemaTree from a FileMetaData's flat,
// depth-first schema list, and computes the max definition and repetition
// levels that drive every level-decoding bit width downstream.
package schema

import (
	"fmt"
	"io"
	"strings"

	"github.com/goparquet/goparquet/format"
)

// Node is one element of the schema tree. The root's Element is the first
// entry of the flat schema, as decoded; its name is not part of any Path.
type Node struct {
	Element  *format.SchemaElement
	Children []*Node
	Parent   *Node

	// Count is the total number of schema elements in this node's
	// subtree, including itself.
	Count int

	// Path is the sequence of names from the root to this node,
	// exclusive of the synthetic root name.
	Path []string

	// MaxDefinitionLevel and MaxRepetitionLevel are defined for leaves
	// (and are meaningful for any node): the count of non-REQUIRED, and
	// REPEATED respectively, ancestors on Path.
	MaxDefinitionLevel int
	MaxRepetitionLevel int
}

// IsLeaf reports whether this node corresponds to a column chunk.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Required reports whether every node on Path (root exclusive) is
// REQUIRED, in which case definition levels are omitted from pages
// entirely.
func (n *Node) Required() bool { return n.MaxDefinitionLevel == 0 }

func (n *Node) String() string {
	return strings.Join(n.Path, ".")
}

// Tree is the SchemaTree: a rooted tree over a file's flat
// schema, immutable once built.
type Tree struct {
	Root *Node
	// Leaves lists every leaf node in depth-first (write) order, which is
	// also column-chunk order within a row group.
	Leaves []*Node
	// ByPath indexes leaves by their dot-joined path for fast lookup.
	ByPath map[string]*Node
}

// Build constructs a Tree from a FileMetaData's flat schema list by a
// depth-first walk: at position i, a node consumes the next num_children
// elements recursively.
func Build(flat []format.SchemaElement) (*Tree, error) {
	if len(flat) == 0 {
		return nil, fmt.Errorf("parquet: schema has no elements")
	}
	rootElem := flat[0]
	root := &Node{Element: &rootElem, Count: 1}

	pos := 1
	var walk func(parent *Node, numChildren int) error
	walk = func(parent *Node, numChildren int) error {
		for i := 0; i < numChildren; i++ {
			if pos >= len(flat) {
				return fmt.Errorf("parquet: schema truncated: expected %d children of %q", numChildren, parent.String())
			}
			elem := flat[pos]
			pos++
			child := &Node{Element: &elem, Parent: parent, Count: 1}
			child.Path = append(append([]string(nil), parent.Path...), elem.Name)

			child.MaxDefinitionLevel = parent.MaxDefinitionLevel
			if elem.RepetitionType != nil && *elem.RepetitionType != format.Required {
				child.MaxDefinitionLevel++
			}
			child.MaxRepetitionLevel = parent.MaxRepetitionLevel
			if elem.RepetitionType != nil && *elem.RepetitionType == format.Repeated {
				child.MaxRepetitionLevel++
			}

			parent.Children = append(parent.Children, child)

			grandChildren := 0
			if elem.NumChildren != nil {
				grandChildren = int(*elem.NumChildren)
			}
			if grandChildren > 0 {
				if err := walk(child, grandChildren); err != nil {
					return err
				}
			}
			parent.Count += child.Count
		}
		return nil
	}

	rootChildren := 0
	if rootElem.NumChildren != nil {
		rootChildren = int(*rootElem.NumChildren)
	}
	root.Count = 1
	if err := walk(root, rootChildren); err != nil {
		return nil, err
	}
	root.Count = 1 + sumChildrenCounts(root)

	if pos != len(flat) {
		return nil, fmt.Errorf("parquet: schema has %d trailing elements not reachable from the root", len(flat)-pos)
	}

	t := &Tree{Root: root, ByPath: make(map[string]*Node)}
	collectLeaves(root, t)
	return t, nil
}

func sumChildrenCounts(n *Node) int {
	sum := 0
	for _, c := range n.Children {
		sum += c.Count
	}
	return sum
}

func collectLeaves(n *Node, t *Tree) {
	if n.IsLeaf() && n != t.Root {
		t.Leaves = append(t.Leaves, n)
		t.ByPath[n.String()] = n
		return
	}
	for _, c := range n.Children {
		collectLeaves(c, t)
	}
}

// Lookup resolves a dot-joined column path (e.g. "a.b.c") to its leaf node.
func (t *Tree) Lookup(path string) (*Node, bool) {
	n, ok := t.ByPath[path]
	return n, ok
}

// Print renders the tree as an indented outline, one line per node, with
// its physical type and repetition for leaves — the same shape `cmd/pgrep
// schema` prints to inspect a file without materializing rows.
func (t *Tree) Print(w io.Writer) {
	printNode(w, t.Root, 0)
}

func printNode(w io.Writer, n *Node, depth int) {
	name := n.Element.Name
	if name == "" {
		name = "<root>"
	}
	fmt.Fprintf(w, "%s%s", strings.Repeat(". ", depth), name)
	if n.IsLeaf() {
		if n.Element.Type != nil {
			fmt.Fprintf(w, " %s", *n.Element.Type)
		}
		if rt := n.Element.RepetitionType; rt != nil {
			fmt.Fprintf(w, " (%s)", *rt)
		}
	}
	fmt.Fprintln(w)
	for _, c := range n.Children {
		printNode(w, c, depth+1)
	}
}
