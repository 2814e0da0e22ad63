package parquet

// AssembleRecords implements the Dremel reassembly algorithm:
// folding parallel definition-level (D), repetition-level (R), and
// physical-value (V) sequences back into nested row structures.
//
// D and R may be nil when the corresponding level is absent (a REQUIRED
// column has no definition levels; a column with no repeated ancestor has
// no repetition levels); in that case they are synthesized as if every
// entry were at the maximum level. isNullable, maxDefinitionLevel and
// maxRepetitionLevel come from the column's SchemaTree leaf.
//
// The null/empty discrimination for nullable paths (append a null
// sentinel on an even definition level short of the maximum, an empty list
// on an odd one) assumes alternating OPTIONAL/REPEATED ancestors. Schemas
// with consecutive OPTIONAL ancestors at different depths can defeat this
// heuristic; see the design notes for the accepted limitation.
func AssembleRecords(definitionLevels, repetitionLevels []int32, values []any, isNullable bool, maxDefinitionLevel, maxRepetitionLevel int) []any {
	n := len(repetitionLevels)
	if n == 0 {
		n = len(definitionLevels)
	}

	if n == 0 {
		// Edge cases: no level streams were recorded at all.
		if maxRepetitionLevel == 0 {
			if len(values) > 0 {
				return []any{append([]any(nil), values...)}
			}
		}
		return []any{emptyNested(maxDefinitionLevel)}
	}

	d := definitionLevels
	if d == nil {
		d = make([]int32, n)
		for i := range d {
			d[i] = int32(maxDefinitionLevel)
		}
	}
	r := repetitionLevels
	if r == nil {
		r = make([]int32, n)
	}

	root := &listNode{}
	stack := []*listNode{root}
	next := 0

	for i := 0; i < n; i++ {
		ri := int(r[i])
		di := int(d[i])

		if ri < maxRepetitionLevel {
			for len(stack) > ri+1 {
				stack = stack[:len(stack)-1]
			}
		}

		targetDepth := maxRepetitionLevel + 1
		if isNullable {
			// (di+1)/2 rounded up: an even definition level opens the list
			// at its own depth before the value is appended.
			targetDepth = (di + 2) / 2
		}
		current := stack[len(stack)-1]
		for len(stack) < targetDepth {
			child := &listNode{}
			current.entries = append(current.entries, child)
			stack = append(stack, child)
			current = child
		}
		current = stack[len(stack)-1]

		switch {
		case di == maxDefinitionLevel:
			if next >= len(values) {
				continue
			}
			current.entries = append(current.entries, values[next])
			next++
		case isNullable && di%2 == 0:
			current.entries = append(current.entries, nil)
		case isNullable:
			current.entries = append(current.entries, []any{})
		}
	}

	return listToAny(root)
}

// listNode is the internal nested-list container used while walking level
// triples; listToAny flattens the tree of listNodes into plain []any.
type listNode struct {
	entries []any
}

func listToAny(n *listNode) []any {
	out := make([]any, len(n.entries))
	for i, e := range n.entries {
		if child, ok := e.(*listNode); ok {
			out[i] = listToAny(child)
		} else {
			out[i] = e
		}
	}
	return out
}

// emptyNested builds depth nested empty lists, the shape an entirely-empty
// repeated column assembles to when no values or levels were recorded.
func emptyNested(depth int) []any {
	if depth <= 0 {
		return []any{}
	}
	return []any{emptyNested(depth - 1)}
}
