package style

// Set holds the active attribute for each category, or nothing for categories
// that are unset. The zero value is the pristine state with no styling active.
// Set is a comparable value type; copies are independent.
type Set struct {
	attrs [NumCategories]Attribute
	live  [NumCategories]bool
}

// Get returns the active attribute for cat, if any.
func (s *Set) Get(cat Category) (Attribute, bool) {
	return s.attrs[cat], s.live[cat]
}

// Put installs attr as the active attribute for its category, superseding any
// previous value.
func (s *Set) Put(attr Attribute) {
	s.attrs[attr.Cat] = attr
	s.live[attr.Cat] = true
}

// Clear unsets cat.
func (s *Set) Clear(cat Category) {
	s.attrs[cat] = Attribute{}
	s.live[cat] = false
}

// Restore reinstates a previously saved value: attr when ok, unset otherwise.
func (s *Set) Restore(cat Category, attr Attribute, ok bool) {
	if ok {
		s.Put(attr)
	} else {
		s.Clear(cat)
	}
}

// Empty reports whether no category is set.
func (s *Set) Empty() bool {
	for _, l := range s.live {
		if l {
			return false
		}
	}

	return true
}

// Attributes returns the active attributes in canonical category order.
func (s *Set) Attributes() []Attribute {
	var out []Attribute

	for cat := 0; cat < NumCategories; cat++ {
		if s.live[cat] {
			out = append(out, s.attrs[cat])
		}
	}

	return out
}

// Transition is the minimal set of operations needed to move from one Set to
// another: attributes to apply and categories to clear, both in canonical
// order. After is the complete target state; backends that cannot clear a
// single category independently use it to re-apply the surviving attributes
// after a full reset.
type Transition struct {
	Apply []Attribute
	Clear []Category
	After Set
}

// Empty reports whether the transition changes nothing.
func (t *Transition) Empty() bool { return len(t.Apply) == 0 && len(t.Clear) == 0 }

// Diff computes the transition from old to new. A category whose value is
// identical in both sets produces no operation, which is what makes nested
// repeats of the same attribute free.
func Diff(old, new Set) Transition {
	t := Transition{After: new}

	for i := 0; i < NumCategories; i++ {
		cat := Category(i)
		oldAttr, oldLive := old.Get(cat)
		newAttr, newLive := new.Get(cat)

		switch {
		case oldLive == newLive && oldAttr == newAttr:
			// No change.
		case newLive:
			t.Apply = append(t.Apply, newAttr)
		default:
			t.Clear = append(t.Clear, cat)
		}
	}

	return t
}
