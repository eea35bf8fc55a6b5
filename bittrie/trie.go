package bittrie

// Node is an inner node of a Trie. Children and value are exposed
// read-only; mutation goes through the Trie methods.
type Node[V any] struct {
	value *V
	left  *Node[V]
	right *Node[V]
}

// Left returns the child for bit false, or nil. Complexity: O(1).
func (n *Node[V]) Left() *Node[V] {
	return n.left
}

// Right returns the child for bit true, or nil. Complexity: O(1).
func (n *Node[V]) Right() *Node[V] {
	return n.right
}

// Value returns a pointer to the stored value, or nil when the node
// holds none. Complexity: O(1).
func (n *Node[V]) Value() *V {
	return n.value
}

// leaf reports whether n carries neither a value nor children.
func (n *Node[V]) leaf() bool {
	return n.value == nil && n.left == nil && n.right == nil
}

// Zip combines two values stored under the same key during Unite or
// Intersect.
type Zip[V any] func(a, b V) V

// Trie is a binary trie keyed by bit sequences. The root always
// exists; the empty key addresses it.
type Trie[V any] struct {
	root *Node[V]
}

// New returns an empty trie. Complexity: O(1).
func New[V any]() *Trie[V] {
	return &Trie[V]{root: &Node[V]{}}
}

// Root returns the root node for read-only traversal. Complexity: O(1).
func (t *Trie[V]) Root() *Node[V] {
	return t.root
}

// Insert stores v under seq, creating intermediate nodes as needed.
// Returns false (and stores nothing) when the key already holds a
// value. Complexity: O(len(seq)).
func (t *Trie[V]) Insert(seq []bool, v V) bool {
	node := t.root
	for _, bit := range seq {
		if bit {
			if node.right == nil {
				node.right = &Node[V]{}
			}
			node = node.right
		} else {
			if node.left == nil {
				node.left = &Node[V]{}
			}
			node = node.left
		}
	}
	if node.value != nil {
		return false
	}
	node.value = &v

	return true
}

// Search returns a pointer to the value stored under seq, or nil when
// the key is vacant. The pointer allows in-place mutation.
// Complexity: O(len(seq)).
func (t *Trie[V]) Search(seq []bool) *V {
	node := t.walk(seq)
	if node == nil {
		return nil
	}

	return node.value
}

// Remove clears the value stored under seq, if any, then prunes every
// chain of nodes left without values or children.
// Complexity: O(len(seq)) to locate, O(n) to prune.
func (t *Trie[V]) Remove(seq []bool) {
	node := t.walk(seq)
	if node == nil {
		return
	}
	node.value = nil
	t.clearLeaves(t.root)
}

// Clone returns a deep copy: fresh nodes, copied values.
// Complexity: O(n).
func (t *Trie[V]) Clone() *Trie[V] {
	c := New[V]()
	copyInto(c.root, t.root)

	return c
}

// Unite merges other into t: values present in both tries are combined
// with zip(mine, theirs); keys only in other are copied over. other is
// not modified. Complexity: O(n + m).
func (t *Trie[V]) Unite(other *Trie[V], zip Zip[V]) {
	unite(t.root, other.root, zip)
}

// Intersect keeps only keys present in both tries, combining the
// surviving values with zip(mine, theirs), then prunes emptied
// branches. other is not modified. Complexity: O(n + m).
func (t *Trie[V]) Intersect(other *Trie[V], zip Zip[V]) {
	intersect(t.root, other.root, zip)
	t.clearLeaves(t.root)
}

// walk follows seq from the root, returning the node it leads to or
// nil when the path does not exist.
func (t *Trie[V]) walk(seq []bool) *Node[V] {
	node := t.root
	for _, bit := range seq {
		if bit {
			node = node.right
		} else {
			node = node.left
		}
		if node == nil {
			return nil
		}
	}

	return node
}

// clearLeaves recursively detaches children that end up as valueless,
// childless leaves. The root itself is never detached.
func (t *Trie[V]) clearLeaves(node *Node[V]) {
	if node.left != nil {
		t.clearLeaves(node.left)
		if node.left.leaf() {
			node.left = nil
		}
	}
	if node.right != nil {
		t.clearLeaves(node.right)
		if node.right.leaf() {
			node.right = nil
		}
	}
}

// copyInto duplicates the subtree under from into to.
func copyInto[V any](to, from *Node[V]) {
	if from.value != nil {
		v := *from.value
		to.value = &v
	}
	if from.left != nil {
		to.left = &Node[V]{}
		copyInto(to.left, from.left)
	}
	if from.right != nil {
		to.right = &Node[V]{}
		copyInto(to.right, from.right)
	}
}

// unite merges the subtree under with into to.
func unite[V any](to, with *Node[V], zip Zip[V]) {
	if with.value != nil {
		if to.value != nil {
			merged := zip(*to.value, *with.value)
			to.value = &merged
		} else {
			v := *with.value
			to.value = &v
		}
	}
	if with.left != nil {
		if to.left == nil {
			to.left = &Node[V]{}
		}
		unite(to.left, with.left, zip)
	}
	if with.right != nil {
		if to.right == nil {
			to.right = &Node[V]{}
		}
		unite(to.right, with.right, zip)
	}
}

// intersect trims to down to the keys it shares with with, zipping
// values stored on both sides and dropping the rest.
func intersect[V any](to, with *Node[V], zip Zip[V]) {
	if with.value != nil {
		if to.value != nil {
			merged := zip(*to.value, *with.value)
			to.value = &merged
		}
	} else {
		to.value = nil
	}
	if with.left == nil {
		to.left = nil
	} else if to.left != nil {
		intersect(to.left, with.left, zip)
	}
	if with.right == nil {
		to.right = nil
	} else if to.right != nil {
		intersect(to.right, with.right, zip)
	}
}
