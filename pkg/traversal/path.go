package traversal

// ReconstructPath follows parent links backward from nodeID until
// startID is reached or a node with no recorded parent is hit, then
// reverses the walk. The assembled path is returned only when it begins
// at startID; otherwise the result is empty, which covers "unreachable"
// and "malformed parent chain" identically.
//
// The function is pure: it can be re-applied to any snapshot's own
// parent-map copy at any point in a run. The walk is bounded by the
// parent-map size, so a cyclic map terminates with an empty path
// instead of spinning.
func ReconstructPath(parents map[string]string, startID, nodeID string) []string {
	if nodeID == "" {
		return nil
	}

	path := []string{nodeID}
	current := nodeID
	for current != startID && len(path) <= len(parents)+1 {
		parent, ok := parents[current]
		if !ok {
			break
		}
		path = append(path, parent)
		current = parent
	}

	if path[len(path)-1] != startID {
		return nil
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
