package chunk

// Delta is the start-independent effect of a chunk on a running position.
//
// Applying a delta advances Rows rows. If Rows > 0 the column is replaced by
// Cols, otherwise Cols is added to the current column. Deltas of consecutive
// chunks combine with Monoid.Add, which lets callers compute them in parallel
// and prefix-sum them afterwards.
type Delta struct {
	Rows uint64
	Cols uint64
}

// Apply moves pos by the delta.
func (d Delta) Apply(pos Position) Position {
	if d.Rows > 0 {
		return Position{Row: pos.Row + d.Rows, Column: d.Cols}
	}
	return Position{Row: pos.Row, Column: pos.Column + d.Cols}
}

// ForwardDelta captures EndPosition: c.ForwardDelta().Apply(p) == c.EndPosition(p).
func (c Chunk) ForwardDelta() Delta {
	if c.IsEmpty() {
		return Delta{}
	}
	if !c.EndsWithTerminator() {
		return Delta{Rows: uint64(c.LineCount())}
	}
	return Delta{Rows: uint64(c.LineCount() - 1), Cols: uint64(len(c.LastLine()))}
}

// BackwardDelta captures BackwardEnd: c.BackwardDelta().Apply(p) == c.BackwardEnd(p).
func (c Chunk) BackwardDelta() Delta {
	if c.IsEmpty() {
		return Delta{}
	}
	rows := uint64(c.LineCount() - 1)
	if c.EndsWithTerminator() {
		rows++
	}
	if rows == 0 {
		return Delta{Cols: uint64(len(c.LastLine()))}
	}
	return Delta{Rows: rows, Cols: backwardColumn(c)}
}

// Monoid aggregates deltas of consecutive chunks in document order.
type Monoid struct{}

// Zero returns the neutral delta.
func (Monoid) Zero() Delta { return Delta{} }

// Add combines two deltas, left applied first.
func (Monoid) Add(left, right Delta) Delta {
	if right.Rows > 0 {
		return Delta{Rows: left.Rows + right.Rows, Cols: right.Cols}
	}
	return Delta{Rows: left.Rows, Cols: left.Cols + right.Cols}
}
