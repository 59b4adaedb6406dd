package model

// Color is the rendering colour of an entity.
type Color string

const (
	ColorRed    Color = "red"    // DBpedia resource
	ColorBlue   Color = "blue"   // DBpedia ontology class
	ColorBlack  Color = "black"
	ColorPurple Color = "purple" // seen with more than one colour
)

// Entity is a graph node with its resolved colour.
type Entity struct {
	UUID  string `json:"uuid,omitempty"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
}
