package entities

// Ordering is the result of comparing two intervals. Intervals only form a partial order,
// so two of them may be Incomparable.
type Ordering int

const (
	OrderingIncomparable Ordering = iota
	OrderingLess
	OrderingEqual
	OrderingGreater
)

func (o Ordering) String() string {
	switch o {
	case OrderingLess:
		return "less"
	case OrderingEqual:
		return "equal"
	case OrderingGreater:
		return "greater"
	default:
		return "incomparable"
	}
}

// Compare places i relative to other:
//   - Equal when both bounds match;
//   - Less when i ends before other starts, or i starts lower with the same end, or i ends
//     lower with the same start;
//   - Greater in the mirrored cases;
//   - Incomparable otherwise, and whenever either interval is empty.
func (i Interval) Compare(other Interval) Ordering {
	if i.IsEmpty() || other.IsEmpty() {
		return OrderingIncomparable
	}
	if i == other {
		return OrderingEqual
	}
	if precedes(i, other) {
		return OrderingLess
	}
	if precedes(other, i) {
		return OrderingGreater
	}
	return OrderingIncomparable
}

func precedes(a, b Interval) bool {
	startCmp := a.Start.Compare(b.Start)
	endCmp := a.End.Compare(b.End)
	return a.End.Compare(b.Start) <= 0 ||
		(startCmp < 0 && endCmp == 0) ||
		(startCmp == 0 && endCmp < 0)
}
