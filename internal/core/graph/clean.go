package graph

import "strings"

// CleanFunc maps a raw identifier to the node name used in the graph.
type CleanFunc func(string) string

// Identity is the default CleanFunc.
func Identity(id string) string { return id }

// LocalName retrieves a node name from a URI: the last path or fragment
// segment. Plain names are returned unchanged.
func LocalName(id string) string {
	trimmed := strings.TrimRight(id, "/#")
	if i := strings.LastIndexAny(trimmed, "/#"); i >= 0 && i < len(trimmed)-1 {
		return trimmed[i+1:]
	}
	return id
}

func orIdentity(clean CleanFunc) CleanFunc {
	if clean == nil {
		return Identity
	}
	return clean
}
