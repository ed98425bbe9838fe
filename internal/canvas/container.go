package canvas

// Container holds the latest snapshot and is the only place snapshots are
// replaced. Observers run after every dispatch that changed the state.
type Container struct {
	state     *State
	observers []func(prev, next *State, a Action)
}

func NewContainer(initial *State) *Container {
	if initial == nil {
		initial = Empty()
	}
	return &Container{state: initial}
}

func (c *Container) State() *State { return c.state }

// Dispatch reduces a into the current snapshot and returns the result.
func (c *Container) Dispatch(a Action) *State {
	prev := c.state
	next := Reduce(prev, a)
	c.state = next
	if next != prev {
		for _, fn := range c.observers {
			fn(prev, next, a)
		}
	}
	return next
}

func (c *Container) Observe(fn func(prev, next *State, a Action)) {
	c.observers = append(c.observers, fn)
}
