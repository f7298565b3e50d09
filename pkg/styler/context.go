package styler

import (
	"awesome-dragon.science/go/tagstyle/pkg/style"
	"awesome-dragon.science/go/tagstyle/pkg/tokeniser"
)

// saved records the value a category held before a tag superseded it, so the
// outer value (or unset) comes back when the tag closes.
type saved struct {
	cat     style.Category
	attr    style.Attribute
	present bool
}

// tagNode is one frame of the nesting stack: the effective attribute set a tag
// introduced, what it superseded, and where it came from.
type tagNode struct {
	attrs []style.Attribute // effective set, unique categories
	prev  []saved           // superseded value per category in attrs
	src   string
	span  tokeniser.Span
}

// context tracks the open tag stack and the two style states that drive
// output: active, the state implied by every tag seen so far, and rendered,
// the state the output text already realises. Diffing the two only when
// literal text appears coalesces adjacent tags into a single minimal
// transition.
type context struct {
	stack    []tagNode
	active   style.Set
	rendered style.Set
	maxDepth int
}

func newContext(maxDepth int) *context {
	return &context{maxDepth: maxDepth}
}

// flush returns the transition from the rendered state to the active state
// and marks it as rendered.
func (c *context) flush() style.Transition {
	t := style.Diff(c.rendered, c.active)
	c.rendered = c.active

	return t
}

// open pushes a tag. Attributes repeating a category within one tag supersede
// each other; only the value active before the whole tag is saved.
func (c *context) open(attrs []style.Attribute, src string, span tokeniser.Span) error {
	if len(c.stack) >= c.maxDepth {
		return &MaxDepthError{Max: c.maxDepth, Span: span}
	}

	node := tagNode{src: src, span: span}

	for _, attr := range attrs {
		if i := indexCat(node.attrs, attr.Cat); i >= 0 {
			node.attrs[i] = attr
			c.active.Put(attr)

			continue
		}

		prevAttr, present := c.active.Get(attr.Cat)
		node.prev = append(node.prev, saved{cat: attr.Cat, attr: prevAttr, present: present})
		node.attrs = append(node.attrs, attr)
		c.active.Put(attr)
	}

	c.stack = append(c.stack, node)

	return nil
}

// close pops the top tag. A nil attribute list is the shorthand close; an
// explicit close must carry exactly the attribute set of the tag it closes,
// same categories and values in any order.
func (c *context) close(attrs []style.Attribute, src string, span tokeniser.Span) error {
	if len(c.stack) == 0 {
		return &UnmatchedCloseError{Src: src, Span: span}
	}

	node := c.stack[len(c.stack)-1]

	if attrs != nil && !sameAttributeSet(node.attrs, attrs) {
		return &MismatchedCloseError{Expected: node.src, Found: src, Span: span}
	}

	c.pop()

	return nil
}

// closeAll implicitly closes every remaining tag in LIFO order, returning the
// active state to pristine.
func (c *context) closeAll() {
	for len(c.stack) > 0 {
		c.pop()
	}
}

func (c *context) pop() {
	node := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	for _, p := range node.prev {
		c.active.Restore(p.cat, p.attr, p.present)
	}
}

func indexCat(attrs []style.Attribute, cat style.Category) int {
	for i, a := range attrs {
		if a.Cat == cat {
			return i
		}
	}

	return -1
}

// sameAttributeSet compares two attribute lists as sets keyed by category,
// with later entries of the same category superseding earlier ones.
func sameAttributeSet(a, b []style.Attribute) bool {
	var sa, sb style.Set

	for _, attr := range a {
		sa.Put(attr)
	}

	for _, attr := range b {
		sb.Put(attr)
	}

	return sa == sb
}
