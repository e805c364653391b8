package ledger

// Chunk splits items into consecutive groups of at most size elements. Empty
// input yields no groups. A size below 1 is treated as 1.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return [][]T{}
	}
	size = max(size, 1)

	groups := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		group := make([]T, end-start)
		copy(group, items[start:end])
		groups = append(groups, group)
	}
	return groups
}
