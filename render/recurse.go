package render

// RecurseMode selects how much of a subtree Print covers.
type RecurseMode int

const (
	// RecurseNone prints the tag itself with a child-count summary.
	RecurseNone RecurseMode = iota
	// RecurseChildren prints the tag and its immediate children.
	RecurseChildren
	// RecurseChildrenOnly prints only the immediate children.
	RecurseChildrenOnly
	// RecurseFull prints the whole subtree.
	RecurseFull
)

func (m RecurseMode) printRoot() bool     { return m != RecurseChildrenOnly }
func (m RecurseMode) printChildren() bool { return m != RecurseNone }

// degradeForCompound is the mode used for a compound's children.
func (m RecurseMode) degradeForCompound() RecurseMode {
	if m == RecurseFull {
		return RecurseFull
	}
	return RecurseNone
}

// degradeForList is the mode used for a list's children. Unlike
// compounds, listing only-children still shows each element's own
// immediate children.
func (m RecurseMode) degradeForList() RecurseMode {
	switch m {
	case RecurseChildrenOnly:
		return RecurseChildren
	case RecurseFull:
		return RecurseFull
	default:
		return RecurseNone
	}
}
