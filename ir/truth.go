package ir

// Truth reports whether node reads as true when used as a flag: non-zero
// numbers, the string "true", and non-empty containers.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case CompoundType, ListType:
		return len(node.Values) != 0
	case StringType:
		return node.String == "true"
	case NumberType:
		return node.Float64 != 0
	default:
		panic("type")
	}
}
