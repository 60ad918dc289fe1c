package ir

import (
	"strings"
)

// XrefId is a branded type for a cross-reference ID. Ids are allocated per
// template level; each level numbers its ops independently.
type XrefId int

// Op is implemented by every operation that can be linked into an OpList.
// Each op carries its own prev/next links; a fresh op has both links nil.
type Op[T any] interface {
	GetKind() OpKind
	Prev() T
	SetPrev(op T)
	Next() T
	SetNext(op T)
}

// OpBase is the embeddable link storage for operations.
type OpBase[T any] struct {
	prev T
	next T
}

// Prev returns the previous operation
func (o *OpBase[T]) Prev() T {
	return o.prev
}

// SetPrev sets the previous operation
func (o *OpBase[T]) SetPrev(op T) {
	o.prev = op
}

// Next returns the next operation
func (o *OpBase[T]) Next() T {
	return o.next
}

// SetNext sets the next operation
func (o *OpBase[T]) SetNext(op T) {
	o.next = op
}

// opNode constrains OpList elements to nil-comparable op interface types.
type opNode[T any] interface {
	comparable
	Op[T]
}

// OpList is an intrusive doubly-linked list of IR operations. The list owns
// the chain: an op is linked into at most one list at a time. The zero value
// is an empty list.
type OpList[T opNode[T]] struct {
	head T
	tail T
}

// Head returns the first operation in the list, or nil if the list is empty.
func (l *OpList[T]) Head() T {
	return l.head
}

// Tail returns the last operation in the list, or nil if the list is empty.
func (l *OpList[T]) Tail() T {
	return l.tail
}

// Size returns the number of operations in the list.
func (l *OpList[T]) Size() int {
	var zero T
	size := 0
	for op := l.head; op != zero; op = op.Next() {
		size++
	}
	return size
}

// Push adds an operation to the tail of the list.
func (l *OpList[T]) Push(op T) {
	var zero T
	assertDetached(op)
	if l.tail == zero {
		l.head = op
		l.tail = op
		return
	}
	l.tail.SetNext(op)
	op.SetPrev(l.tail)
	l.tail = op
}

// InsertBefore inserts a new operation before a given member of the list.
func (l *OpList[T]) InsertBefore(before, op T) {
	var zero T
	assertDetached(op)
	prev := before.Prev()
	if prev == zero {
		if before != l.head {
			panic("AssertionError: non-head operation has no prev link")
		}
		l.head = op
	} else {
		prev.SetNext(op)
	}
	op.SetPrev(prev)
	op.SetNext(before)
	before.SetPrev(op)
}

// InsertAfter inserts a new operation after a given member of the list.
func (l *OpList[T]) InsertAfter(after, op T) {
	var zero T
	assertDetached(op)
	next := after.Next()
	if next == zero {
		if after != l.tail {
			panic("AssertionError: non-tail operation has no next link")
		}
		l.tail = op
	} else {
		next.SetPrev(op)
	}
	op.SetNext(next)
	op.SetPrev(after)
	after.SetNext(op)
}

// Remove detaches an operation from the list, clearing its links, and returns
// the operation that followed it (nil if the tail was removed). The return
// value lets callers resume iteration after a manual removal.
func (l *OpList[T]) Remove(op T) T {
	var zero T
	prev := op.Prev()
	next := op.Next()
	if next == zero {
		if op != l.tail {
			panic("AssertionError: non-tail operation has no next link")
		}
		l.tail = prev
	} else {
		next.SetPrev(prev)
	}
	if prev == zero {
		if op != l.head {
			panic("AssertionError: non-head operation has no prev link")
		}
		l.head = next
	} else {
		prev.SetNext(next)
	}
	op.SetPrev(zero)
	op.SetNext(zero)
	return next
}

// PrependList splices the entire chain of other before the head of this list
// in O(1). The donor list is left in an unspecified state and must not be
// reused as an independent list afterward.
func (l *OpList[T]) PrependList(other *OpList[T]) {
	var zero T
	if other.head == zero {
		return
	}
	if l.head == zero {
		l.head = other.head
		l.tail = other.tail
		return
	}
	other.tail.SetNext(l.head)
	l.head.SetPrev(other.tail)
	l.head = other.head
}

// ToSlice materializes the operations in traversal order, head to tail.
func (l *OpList[T]) ToSlice() []T {
	var zero T
	ops := make([]T, 0, 8)
	for op := l.head; op != zero; op = op.Next() {
		ops = append(ops, op)
	}
	return ops
}

// ForEach applies visit to every operation in traversal order.
func (l *OpList[T]) ForEach(visit func(op T)) {
	var zero T
	for op := l.head; op != zero; op = op.Next() {
		visit(op)
	}
}

// Print renders every operation with printer and joins the renderings with
// newlines, for diagnostics.
func (l *OpList[T]) Print(printer func(op T) string) string {
	var zero T
	var lines []string
	for op := l.head; op != zero; op = op.Next() {
		lines = append(lines, printer(op))
	}
	return strings.Join(lines, "\n")
}

// Transform rewrites an OpList in place. Later compiler phases are expressed
// as transforms; every hook is optional.
type Transform[T opNode[T]] struct {
	// VisitList runs once before traversal and may freely mutate the list.
	VisitList func(list *OpList[T])
	// VisitOp is called for each op and returns the op that now occupies that
	// position: the same op, a mutated one, or a replacement whose links have
	// been pointed at the old op's neighbors. The list rewires the neighbors
	// around the returned op; the hook must not leave it detached from the
	// position it claims.
	VisitOp func(op T, list *OpList[T]) T
	// Finalize runs once after traversal completes.
	Finalize func()
}

// ApplyTransform drives a transform over the list in a single traversal.
// Traversal resumes from the returned op's next link, read after re-linking,
// so a hook may delete the current op, insert ops after it, or replace it
// outright without derailing the walk. Not reentrant: a hook must not start
// another traversal of the same list.
func (l *OpList[T]) ApplyTransform(transform *Transform[T]) {
	var zero T
	if transform.VisitList != nil {
		transform.VisitList(l)
	}
	if transform.VisitOp != nil {
		for op := l.head; op != zero; {
			current := transform.VisitOp(op, l)
			if current.Prev() == zero {
				l.head = current
			} else {
				current.Prev().SetNext(current)
			}
			if current.Next() == zero {
				l.tail = current
			} else {
				current.Next().SetPrev(current)
			}
			op = current.Next()
		}
	}
	if transform.Finalize != nil {
		transform.Finalize()
	}
}

// SortSubset sorts the closed subrange [start, end] in place with an insertion
// sort. Both bounds must be members of the list, with start at or before end
// in traversal order. Equal-comparing ops keep their relative input order.
// Returns the ops now bounding the sorted run; the values passed in remain
// members of the list but may no longer be its extremes. O(n²) over the
// subrange length, acceptable because IR binding groups are small.
func (l *OpList[T]) SortSubset(start, end T, cmp func(a, b T) int) (T, T) {
	var zero T
	if start == end {
		return start, end
	}
	tmpStart := start
	tmpEnd := start
	op := start.Next()
	for {
		last := op == end
		// Read the successor before detaching; Remove clears the links.
		next := op.Next()
		l.Remove(op)
		placed := false
		for pos := tmpStart; ; pos = pos.Next() {
			if cmp(op, pos) < 0 {
				l.InsertBefore(pos, op)
				if pos == tmpStart {
					tmpStart = op
				}
				placed = true
				break
			}
			if pos == tmpEnd {
				break
			}
		}
		if !placed {
			// Not less than anything processed so far: the op goes at the end
			// of the sorted run, just before the next unprocessed op.
			if next == zero {
				l.Push(op)
			} else {
				l.InsertBefore(next, op)
			}
			tmpEnd = op
		}
		if last {
			break
		}
		op = next
	}
	return tmpStart, tmpEnd
}

// assertDetached panics if op still carries links from a previous list.
func assertDetached[T opNode[T]](op T) {
	var zero T
	if op.Prev() != zero || op.Next() != zero {
		panic("AssertionError: operation is already linked into a list")
	}
}
