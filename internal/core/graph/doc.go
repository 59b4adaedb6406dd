// Package graph turns labelled edge lists into coloured directed graphs.
//
// Entities are coloured from the shape of their raw identifier: DBpedia
// resources are red, DBpedia ontology classes are blue, anything else is
// black. When cleaning maps identifiers of different colours onto the same
// name, the resulting node is purple. Graphs render to Graphviz DOT.
package graph
