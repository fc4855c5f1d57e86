package schema

// MSLevelFromOrder maps the collaborator's MS-order enumeration to an
// integer MS level. Orders 1-3 map to levels 1-3; any other order value
// passes through as its own integer so that higher orders reported by
// future collaborator versions keep working without a table update.
func MSLevelFromOrder(order int) int {
	switch order {
	case OrderMs:
		return 1
	case OrderMs2:
		return 2
	case OrderMs3:
		return 3
	default:
		return order
	}
}

// PolarityFromLabel collapses the collaborator's polarity label into the
// binary wire labels. Only textual equality with "Positive" yields
// "positive"; every other value, recognized or not, yields "negative".
// The asymmetry is intentional and kept for bit-compatibility with
// existing fixtures.
func PolarityFromLabel(label string) string {
	if label == RawPositiveLabel {
		return PositivePolarity
	}
	return NegativePolarity
}
