package editable

// Selection is an anchored range. Anchor is where the selection started and
// stays fixed while Head follows the cursor; Head may order before Anchor.
// An empty selection (Anchor == Head) marks a bare cursor.
type Selection struct {
	Anchor Position
	Head   Position
}

// CollapsedAt returns an empty selection at pos.
func CollapsedAt(pos Position) Selection {
	return Selection{Anchor: pos, Head: pos}
}

// IsEmpty reports whether the selection spans no characters.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Start returns the earlier of Anchor and Head in document order.
func (s Selection) Start() Position {
	if s.Head.Less(s.Anchor) {
		return s.Head
	}
	return s.Anchor
}

// End returns the later of Anchor and Head in document order.
func (s Selection) End() Position {
	if s.Head.Less(s.Anchor) {
		return s.Anchor
	}
	return s.Head
}

// Contains reports whether pos lies within [Start, End).
func (s Selection) Contains(pos Position) bool {
	return !pos.Less(s.Start()) && pos.Less(s.End())
}

// Overlaps reports whether the two selections share any character,
// or touch while at least one of them is empty.
func (s Selection) Overlaps(o Selection) bool {
	if s.IsEmpty() || o.IsEmpty() {
		return !s.End().Less(o.Start()) && !o.End().Less(s.Start())
	}
	return s.Start().Less(o.End()) && o.Start().Less(s.End())
}
