package backend

// Clear removes every node strictly between start and end, which must be
// siblings under parent with start preceding end. The delimiters
// themselves are kept.
func Clear(b Backend, parent, start, end Handle) {
	for {
		n := b.NextSibling(start)
		if n == nil || n == end {
			return
		}
		b.Remove(n)
	}
}

// RangeMover is implemented by backends that can move a whole sibling
// range in one operation, e.g. to batch it into a single wire message or
// to count it as a single move.
type RangeMover interface {
	MoveRange(parent, first, limit, anchor Handle)
}

// MoveRange moves the sibling range [first, limit) before anchor, under
// the same parent, preserving the internal order of the range. A nil
// limit means "through the last sibling"; a nil anchor appends. Backends
// implementing [RangeMover] receive the range as one operation.
func MoveRange(b Backend, parent, first, limit, anchor Handle) {
	if rm, ok := b.(RangeMover); ok {
		rm.MoveRange(parent, first, limit, anchor)
		return
	}
	var nodes []Handle
	for n := first; n != nil && n != limit; n = b.NextSibling(n) {
		nodes = append(nodes, n)
	}
	for _, n := range nodes {
		b.InsertBefore(parent, n, anchor)
	}
}
