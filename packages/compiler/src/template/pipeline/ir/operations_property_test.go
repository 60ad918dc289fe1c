package ir_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"tlc-go/packages/compiler/src/template/pipeline/ir"
)

const (
	actionPush = iota
	actionInsertBefore
	actionInsertAfter
	actionRemove
	actionCount
)

// listAction is one randomized mutation of an op list. pos is reduced modulo
// the current list length to address a member.
type listAction struct {
	kind int
	pos  int
}

func genListAction() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, actionCount-1),
		gen.IntRange(0, 1<<16),
	).Map(func(values []interface{}) listAction {
		return listAction{kind: values[0].(int), pos: values[1].(int)}
	})
}

// chainIntact reports whether the list's links are mutually consistent and
// its order matches the model.
func chainIntact(list *ir.CreateList, model []*ir.TextOp) bool {
	if len(model) == 0 {
		return list.Head() == nil && list.Tail() == nil
	}
	if list.Head() != model[0] || list.Tail() != model[len(model)-1] {
		return false
	}
	if list.Head().Prev() != nil || list.Tail().Next() != nil {
		return false
	}
	i := 0
	for op := list.Head(); op != nil; op = op.Next() {
		if i >= len(model) || op != model[i] {
			return false
		}
		if next := op.Next(); next != nil && next.Prev() != op {
			return false
		}
		i++
	}
	return i == len(model)
}

func TestOpListMutationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("any mutation sequence matches a slice model", prop.ForAll(
		func(actions []listAction) bool {
			list := ir.NewCreateList()
			model := []*ir.TextOp{}
			serial := 0
			newOp := func() *ir.TextOp {
				op := ir.NewTextOp(ir.XrefId(serial), "", nil)
				serial++
				return op
			}
			for _, action := range actions {
				switch {
				case action.kind == actionPush || len(model) == 0:
					if action.kind == actionRemove {
						break
					}
					op := newOp()
					list.Push(op)
					model = append(model, op)
				case action.kind == actionInsertBefore:
					idx := action.pos % len(model)
					op := newOp()
					list.InsertBefore(model[idx], op)
					model = append(model[:idx], append([]*ir.TextOp{op}, model[idx:]...)...)
				case action.kind == actionInsertAfter:
					idx := action.pos % len(model)
					op := newOp()
					list.InsertAfter(model[idx], op)
					rest := append([]*ir.TextOp{op}, model[idx+1:]...)
					model = append(model[:idx+1], rest...)
				case action.kind == actionRemove:
					idx := action.pos % len(model)
					next := list.Remove(model[idx])
					if idx == len(model)-1 {
						if next != nil {
							return false
						}
					} else if next != model[idx+1] {
						return false
					}
					model = append(model[:idx], model[idx+1:]...)
				}
				if !chainIntact(list, model) {
					return false
				}
				if list.Size() != len(model) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genListAction()),
	))

	properties.Property("prepending splices the donor before the receiver", prop.ForAll(
		func(left, right int) bool {
			receiver := ir.NewCreateList()
			donor := ir.NewCreateList()
			model := []*ir.TextOp{}
			for i := 0; i < left; i++ {
				op := ir.NewTextOp(ir.XrefId(i), "", nil)
				donor.Push(op)
				model = append(model, op)
			}
			for i := 0; i < right; i++ {
				op := ir.NewTextOp(ir.XrefId(left+i), "", nil)
				receiver.Push(op)
				model = append(model, op)
			}
			receiver.PrependList(donor)
			return chainIntact(receiver, model)
		},
		gen.IntRange(0, 16),
		gen.IntRange(0, 16),
	))

	properties.TestingRun(t)
}

func TestOpListSortProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	byKey := func(a, b ir.UpdateOp) int {
		return len(a.(*ir.PropertyOp).Name) - len(b.(*ir.PropertyOp).Name)
	}

	properties.Property("sorting a subrange permutes only that subrange", prop.ForAll(
		func(keys []int, rawLo, rawHi int) bool {
			lo := rawLo % len(keys)
			hi := rawHi % len(keys)
			if lo > hi {
				lo, hi = hi, lo
			}

			list := ir.NewUpdateList()
			ops := make([]*ir.PropertyOp, len(keys))
			for i, key := range keys {
				// The key is encoded as the name length; Target records the
				// input position for the stability check.
				ops[i] = ir.NewPropertyOp(ir.XrefId(i), makeName(key), ir.NewLexicalReadExpr("v"), nil)
				list.Push(ops[i])
			}

			retStart, retEnd := list.SortSubset(ops[lo], ops[hi], byKey)

			after := list.ToSlice()
			if len(after) != len(keys) {
				return false
			}
			// The prefix and suffix are untouched.
			for i := 0; i < lo; i++ {
				if after[i] != ir.UpdateOp(ops[i]) {
					return false
				}
			}
			for i := hi + 1; i < len(keys); i++ {
				if after[i] != ir.UpdateOp(ops[i]) {
					return false
				}
			}
			// The subrange is a permutation of its input, non-decreasing by
			// key, and stable for equal keys.
			seen := make(map[ir.UpdateOp]bool, hi-lo+1)
			for i := lo; i <= hi; i++ {
				seen[after[i]] = true
				if i > lo {
					prev := after[i-1].(*ir.PropertyOp)
					cur := after[i].(*ir.PropertyOp)
					if len(prev.Name) > len(cur.Name) {
						return false
					}
					if len(prev.Name) == len(cur.Name) && prev.Target > cur.Target {
						return false
					}
				}
			}
			for i := lo; i <= hi; i++ {
				if !seen[ir.UpdateOp(ops[i])] {
					return false
				}
			}
			// The returned bounds are the extremes of the sorted run.
			return retStart == after[lo] && retEnd == after[hi]
		},
		gen.SliceOf(gen.IntRange(0, 4)).SuchThat(func(keys []int) bool { return len(keys) > 0 }),
		gen.IntRange(0, 1<<16),
		gen.IntRange(0, 1<<16),
	))

	properties.Property("replacing every op preserves length and order", prop.ForAll(
		func(count int) bool {
			list := ir.NewUpdateList()
			for i := 0; i < count; i++ {
				list.Push(ir.NewPropertyOp(ir.XrefId(i), "p", ir.NewLexicalReadExpr("v"), nil))
			}
			list.ApplyTransform(&ir.Transform[ir.UpdateOp]{
				VisitOp: func(op ir.UpdateOp, _ *ir.UpdateList) ir.UpdateOp {
					old := op.(*ir.PropertyOp)
					replacement := ir.NewPropertyOp(old.Target, old.Name+"'", old.Expression, nil)
					replacement.SetPrev(op.Prev())
					replacement.SetNext(op.Next())
					return replacement
				},
			})
			after := list.ToSlice()
			if len(after) != count {
				return false
			}
			for i, op := range after {
				replaced := op.(*ir.PropertyOp)
				if replaced.Target != ir.XrefId(i) || replaced.Name != "p'" {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 32),
	))

	properties.TestingRun(t)
}

// makeName encodes a small integer key as a name of that length.
func makeName(key int) string {
	name := ""
	for i := 0; i < key; i++ {
		name += "x"
	}
	return name
}
