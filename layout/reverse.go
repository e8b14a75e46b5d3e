package layout

// Reverse the order of the provided items in place if the boolean is true.
// It serves flex children as well as paint order.
func Reverse[T any](shouldReverse bool, items ...T) []T {
	if !shouldReverse {
		return items
	}
	for head, tail := 0, len(items)-1; head < tail; head, tail = head+1, tail-1 {
		items[head], items[tail] = items[tail], items[head]
	}
	return items
}
