package reorder

// Pure id-list splicing. Keeping these free of store and network access
// means the order computation is trivially testable and the callers can
// stage "what the new order would be" before any mutation happens.

// spliceBefore removes draggedID from ids and reinserts it at targetID's
// index, so the dragged item takes the target's place and the target
// shifts one slot down. Returns ok=false when either id is missing.
func spliceBefore(ids []string, draggedID, targetID string) ([]string, bool) {
	if draggedID == targetID {
		return nil, false
	}
	without := make([]string, 0, len(ids))
	found := false
	for _, id := range ids {
		if id == draggedID {
			found = true
			continue
		}
		without = append(without, id)
	}
	if !found {
		return nil, false
	}

	at := -1
	for i, id := range without {
		if id == targetID {
			at = i
			break
		}
	}
	if at < 0 {
		return nil, false
	}

	out := make([]string, 0, len(ids))
	out = append(out, without[:at]...)
	out = append(out, draggedID)
	out = append(out, without[at:]...)
	return out, true
}

// moveToEnd removes draggedID and appends it. Returns ok=false when the
// id is missing.
func moveToEnd(ids []string, draggedID string) ([]string, bool) {
	out := make([]string, 0, len(ids))
	found := false
	for _, id := range ids {
		if id == draggedID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		return nil, false
	}
	return append(out, draggedID), true
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
