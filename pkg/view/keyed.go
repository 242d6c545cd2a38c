package view

import (
	"fmt"
	"iter"

	"github.com/golang/glog"

	"github.com/ravelui/ravel/pkg/backend"
)

// Keyed renders a sequence of (key, child) pairs, reusing each child's
// retained state by key rather than by position. The sequence must be
// finite and keys unique within one cycle; a duplicate key panics under
// the raveldebug build tag and otherwise logs a warning, with the last
// occurrence winning.
//
// Each entry is preceded by a marker node and the whole sequence is
// terminated by one, so entries can be moved and removed as ranges
// without disturbing surrounding siblings. On rebuild, entries whose
// keys survive are updated in place; an entry is moved only when it is
// out of place relative to the longest increasing subsequence of
// surviving entries, so a permutation of n entries costs at most
// n − lis(n) moves.
func Keyed[K comparable](seq iter.Seq2[K, View]) View {
	return keyed[K]{seq: seq}
}

// KeyedSlice renders one child per slice item, keyed by the key
// function.
func KeyedSlice[K comparable, T any](items []T, key func(T) K, render func(T) View) View {
	return Keyed(func(yield func(K, View) bool) {
		for _, it := range items {
			if !yield(key(it), render(it)) {
				return
			}
		}
	})
}

type keyed[K comparable] struct {
	seq iter.Seq2[K, View]
}

type keyedEntry struct {
	header backend.Handle
	typ    typeToken
	st     State
}

type keyedState[K comparable] struct {
	footer  backend.Handle
	order   []K
	entries map[K]*keyedEntry
}

func (v keyed[K]) Build(cx *Cx) State {
	ks := &keyedState[K]{entries: make(map[K]*keyedEntry)}
	parent := cx.Cur.Parent()
	for k, child := range v.seq {
		if _, dup := ks.entries[k]; dup {
			if debugChecks {
				panic(fmt.Sprintf("ravel: duplicate key %v in keyed sequence", k))
			}
			glog.Warningf("ravel: duplicate key %v in keyed sequence; last occurrence wins", k)
			ks.teardown(cx, parent, k, cx.Cur.Current())
		}
		e := &keyedEntry{header: cx.Cur.InsertMarker(), typ: tokenOf(child)}
		e.st = child.Build(cx)
		ks.entries[k] = e
		ks.order = append(ks.order, k)
	}
	ks.footer = cx.Cur.InsertMarker()
	return ks
}

// teardown removes entry k's range and releases its state. fallback is
// the range limit to use when k is the last entry in order.
func (ks *keyedState[K]) teardown(cx *Cx, parent backend.Handle, k K, fallback backend.Handle) {
	i := 0
	for ; ks.order[i] != k; i++ {
	}
	limit := fallback
	if i+1 < len(ks.order) {
		limit = ks.entries[ks.order[i+1]].header
	}
	e := ks.entries[k]
	backend.Clear(cx.B, parent, e.header, limit)
	cx.B.Remove(e.header)
	e.st.Free(cx.Sink)
	delete(ks.entries, k)
	ks.order = append(ks.order[:i], ks.order[i+1:]...)
}

func (v keyed[K]) Rebuild(cx *Cx, st State) {
	ks := st.(*keyedState[K])
	b, parent := cx.B, cx.Cur.Parent()

	// Walk the new sequence once, buffering its order and views.
	// Last-write-wins on duplicates: the earlier occurrence is dropped
	// from the order entirely.
	var newOrder []K
	newViews := make(map[K]View)
	for k, child := range v.seq {
		if _, dup := newViews[k]; dup {
			if debugChecks {
				panic(fmt.Sprintf("ravel: duplicate key %v in keyed sequence", k))
			}
			glog.Warningf("ravel: duplicate key %v in keyed sequence; last occurrence wins", k)
			for i, k2 := range newOrder {
				if k2 == k {
					newOrder = append(newOrder[:i], newOrder[i+1:]...)
					break
				}
			}
		}
		newViews[k] = child
		newOrder = append(newOrder, k)
	}

	// Tear down entries whose keys are gone. Clearing up to the next
	// entry's header is correct even when that entry is itself doomed;
	// it is simply cleared on its own turn.
	for _, k := range append([]K(nil), ks.order...) {
		if _, ok := newViews[k]; !ok {
			ks.teardown(cx, parent, k, ks.footer)
		}
	}

	// cur tracks the current backend order of entries; oldPos the
	// surviving entries' positions before this cycle, for the LIS.
	cur := append([]K(nil), ks.order...)
	oldPos := make(map[K]int, len(cur))
	for i, k := range cur {
		oldPos[k] = i
	}

	// Rebuild surviving entries in place; build new ones at the end,
	// just before the footer. Moves come after, per traversal order.
	for _, k := range newOrder {
		child := newViews[k]
		if e, ok := ks.entries[k]; ok {
			if t := tokenOf(child); t != e.typ {
				// Same key, new shape: rebuild the entry in place.
				limit := ks.entryLimit(cur, k)
				backend.Clear(b, parent, e.header, limit)
				e.st.Free(cx.Sink)
				e.typ = t
				e.st = child.Build(cx.at(backend.Before(b, parent, limit)))
			} else {
				child.Rebuild(cx.at(backend.After(b, parent, e.header)), e.st)
			}
		} else {
			tail := backend.Before(b, parent, ks.footer)
			e := &keyedEntry{header: tail.InsertMarker(), typ: tokenOf(child)}
			e.st = child.Build(cx.at(tail))
			ks.entries[k] = e
			cur = append(cur, k)
		}
	}

	// Anchor-based move pass, right to left. Entries on the longest
	// increasing subsequence of old positions stay put; everything else
	// moves only if not already just before the anchor.
	var seqPos []int
	var survivors []K
	for _, k := range newOrder {
		if p, ok := oldPos[k]; ok {
			seqPos = append(seqPos, p)
			survivors = append(survivors, k)
		}
	}
	inLIS := make(map[K]bool, len(survivors))
	for _, i := range lis(seqPos) {
		inLIS[survivors[i]] = true
	}

	anchor := ks.footer // header of the entry that must follow, or footer
	anchorKey, anchorIsEntry := *new(K), false
	for i := len(newOrder) - 1; i >= 0; i-- {
		k := newOrder[i]
		if !inLIS[k] && !ks.inPlace(cur, k, anchorKey, anchorIsEntry) {
			backend.MoveRange(b, parent, ks.entries[k].header, ks.entryLimit(cur, k), anchor)
			cur = moveBefore(cur, k, anchorKey, anchorIsEntry)
		}
		anchor, anchorKey, anchorIsEntry = ks.entries[k].header, k, true
	}

	ks.order = newOrder
	cx.Cur.JumpPast(ks.footer)
}

// entryLimit returns the exclusive end of entry k's node range: the
// header of the entry currently following it, or the footer.
func (ks *keyedState[K]) entryLimit(cur []K, k K) backend.Handle {
	for i, ck := range cur {
		if ck == k {
			if i+1 < len(cur) {
				return ks.entries[cur[i+1]].header
			}
			return ks.footer
		}
	}
	panic("ravel: keyed entry missing from order")
}

// inPlace reports whether entry k is directly followed by the anchor
// entry (or by the footer when the anchor is the footer).
func (ks *keyedState[K]) inPlace(cur []K, k, anchorKey K, anchorIsEntry bool) bool {
	for i, ck := range cur {
		if ck == k {
			if i+1 < len(cur) {
				return anchorIsEntry && cur[i+1] == anchorKey
			}
			return !anchorIsEntry
		}
	}
	return false
}

// moveBefore reorders cur to reflect moving k before anchorKey (or to
// the end when the anchor is the footer).
func moveBefore[K comparable](cur []K, k, anchorKey K, anchorIsEntry bool) []K {
	out := make([]K, 0, len(cur))
	for _, ck := range cur {
		if ck == k {
			continue
		}
		if anchorIsEntry && ck == anchorKey {
			out = append(out, k)
		}
		out = append(out, ck)
	}
	if !anchorIsEntry {
		out = append(out, k)
	}
	return out
}

func (ks *keyedState[K]) Free(sink EventSink) {
	for _, e := range ks.entries {
		e.st.Free(sink)
	}
}
