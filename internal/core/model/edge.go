package model

// Edge is a labelled directed relation between two identifiers.
// Identifiers are URIs (e.g. DBpedia resources) or plain names.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

func NewEdge(source, target, label string) Edge {
	return Edge{Source: source, Target: target, Label: label}
}
