// Package bittrie provides a binary trie keyed by bit sequences, with
// set-union and set-intersection under a caller-supplied merge function.
//
// What
//
//   - Trie[V] maps []bool keys to values of type V. Each key bit picks
//     a child: false goes left, true goes right; the value, if any,
//     lives at the node the full key leads to. The empty key addresses
//     the root.
//   - Insert stores a value only if the key is vacant; Search returns a
//     pointer to the stored value for in-place mutation; Remove clears
//     the value and prunes chains of nodes that carry neither values
//     nor children.
//   - Unite merges another trie in: keys present in both have their
//     values combined by zip(mine, theirs); keys present only in the
//     other trie are copied over.
//   - Intersect keeps only keys present in both tries, combining the
//     surviving values with zip and pruning everything else.
//
// The node structure is walkable read-only via Root/Left/Right/Value,
// which tests and tooling use to assert shape.
//
// Complexity (k = key length, n/m = node counts)
//
//   - Insert/Search/Remove: O(k) (+ O(n) pruning on Remove)
//   - Unite/Intersect: O(n + m)
//   - Clone: O(n)
//
// The trie is not safe for concurrent use.
package bittrie
