package peg

import "fmt"

// DefaultMaxDepth is the rule-invocation depth limit
// used when no MaxDepth option is given.
const DefaultMaxDepth = 4096

// A Context holds the state of a single parse:
// the input text, the recursion guards, and the failure tracker.
// A Context must not be shared between parses or goroutines.
type Context struct {
	text     string
	maxDepth int
	depth    int
	mute     int
	active   map[frame]bool

	failPos int
	wants   []string
	limit   *LimitError
}

type frame struct {
	rule int
	pos  int
}

// An Option configures a Context.
type Option func(*Context)

// MaxDepth sets the rule-invocation depth limit.
func MaxDepth(n int) Option {
	return func(c *Context) { c.maxDepth = n }
}

// NewContext returns a Context for parsing text.
func NewContext(text string, opts ...Option) *Context {
	c := &Context{
		text:     text,
		maxDepth: DefaultMaxDepth,
		active:   make(map[frame]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Text returns the input text.
func (c *Context) Text() string { return c.text }

// Span returns the span [start, end) of the input text.
func (c *Context) Span(start, end int) Span { return NewSpan(c.text, start, end) }

// SpanPtr is Span for optional captures: the result is freshly allocated.
func (c *Context) SpanPtr(start, end int) *Span {
	s := NewSpan(c.text, start, end)
	return &s
}

// Enter begins a rule invocation at pos.
// It reports false when the parse must stop:
// the depth limit was hit, or the same rule is already
// running at the same position.
func (c *Context) Enter(rule, pos int) bool {
	if c.limit != nil {
		return false
	}
	if c.depth >= c.maxDepth {
		c.limit = &LimitError{
			Offset: pos,
			Pos:    posAt(c.text, pos),
			Reason: fmt.Sprintf("recursion depth %d exceeded", c.maxDepth),
		}
		return false
	}
	f := frame{rule: rule, pos: pos}
	if c.active[f] {
		c.limit = &LimitError{
			Offset: pos,
			Pos:    posAt(c.text, pos),
			Reason: "left-recursive rule invocation",
		}
		return false
	}
	c.active[f] = true
	c.depth++
	return true
}

// Leave ends the rule invocation begun by a successful Enter.
func (c *Context) Leave(rule, pos int) {
	delete(c.active, frame{rule: rule, pos: pos})
	c.depth--
}

// Mute suppresses failure recording until the matching Unmute.
// Mute pairs nest.
func (c *Context) Mute() { c.mute++ }

// Unmute undoes one Mute.
func (c *Context) Unmute() { c.mute-- }

// Fail records that want was expected at pos.
// Only the furthest failure position is kept: a greater pos
// resets the expected set, an equal pos appends to it,
// and a smaller pos is ignored.
func (c *Context) Fail(pos int, want string) {
	if c.mute > 0 || c.limit != nil {
		return
	}
	if pos < c.failPos {
		return
	}
	if pos > c.failPos {
		c.failPos = pos
		c.wants = c.wants[:0]
	}
	for _, w := range c.wants {
		if w == want {
			return
		}
	}
	c.wants = append(c.wants, want)
}

// Report returns the failure diagnostic for an unsuccessful parse:
// a *LimitError if a guard tripped, otherwise a *Error holding the
// furthest failure position and its expected set.
func (c *Context) Report() error {
	if c.limit != nil {
		return c.limit
	}
	err := &Error{
		Offset:   c.failPos,
		Pos:      posAt(c.text, c.failPos),
		Expected: append([]string(nil), c.wants...),
	}
	return err
}
