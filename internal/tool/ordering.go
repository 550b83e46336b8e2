package tool

import "sort"

// Ordering tracks the tool change sequence of a program. Every known
// tool holds exactly one position, positions start at 1 and explicit
// assignments win over automatic ones.
type Ordering struct {
	known    []Tool
	ordering map[Tool]int
	explicit map[Tool]int
}

// NewOrdering creates an empty tool ordering.
func NewOrdering() *Ordering {
	return &Ordering{
		ordering: make(map[Tool]int),
		explicit: make(map[Tool]int),
	}
}

// nextAuto returns the lowest position not used by any assignment.
func (o *Ordering) nextAuto() int {
	next := 1
	for {
		taken := false
		for _, position := range o.ordering {
			if position == next {
				taken = true
				break
			}
		}
		if !taken {
			for _, position := range o.explicit {
				if position == next {
					taken = true
					break
				}
			}
		}
		if !taken {
			return next
		}
		next++
	}
}

// remember appends the tool to the known list unless already present.
func (o *Ordering) remember(t Tool) {
	for _, known := range o.known {
		if known == t {
			return
		}
	}
	o.known = append(o.known, t)
}

// Auto assigns the first free position to the tool. Tools that already
// hold a position keep it.
func (o *Ordering) Auto(t Tool) {
	if _, ok := o.ordering[t]; ok {
		return
	}

	o.remember(t)
	o.ordering[t] = o.nextAuto()
}

// Set pins the tool to the given position. Positions below 1 clamp to
// 1 and another tool pinned to the same position loses its pin. All
// unpinned tools are then reassigned in the order they were first
// seen.
func (o *Ordering) Set(t Tool, position int) {
	if position < 1 {
		position = 1
	}

	o.remember(t)
	for other, held := range o.explicit {
		if held == position && other != t {
			delete(o.explicit, other)
		}
	}
	o.explicit[t] = position

	o.ordering = make(map[Tool]int, len(o.known))
	for pinned, held := range o.explicit {
		o.ordering[pinned] = held
	}
	for _, known := range o.known {
		if _, ok := o.ordering[known]; !ok {
			o.ordering[known] = o.nextAuto()
		}
	}
}

// Position returns the assigned position of the tool.
func (o *Ordering) Position(t Tool) (int, bool) {
	position, ok := o.ordering[t]
	return position, ok
}

// Tools returns the known tools sorted by position.
func (o *Ordering) Tools() []Tool {
	tools := make([]Tool, 0, len(o.ordering))
	for t := range o.ordering {
		tools = append(tools, t)
	}
	sort.Slice(tools, func(i, j int) bool {
		return o.ordering[tools[i]] < o.ordering[tools[j]]
	})
	return tools
}
