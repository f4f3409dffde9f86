// Package scoring holds the pure numeric rules of the tasting domain: the
// attribute table, per-attribute validation, and the averaging that derives
// a TeaAverage from the current assessment set.
package scoring

// AttributeClass groups the ten attributes by their numeric domain.
type AttributeClass string

const (
	// ClassBody attributes range 0-10 in steps of 0.5.
	ClassBody AttributeClass = "body"
	// ClassAroma attributes range 0-5 in steps of 0.5.
	ClassAroma AttributeClass = "aroma"
)

// Max returns the upper bound for the class.
func (c AttributeClass) Max() float64 {
	if c == ClassAroma {
		return 5
	}
	return 10
}

// Attribute describes one of the ten score columns.
type Attribute struct {
	Name  string
	Class AttributeClass
}

// Attributes lists the ten score attributes in the fixed export order.
var Attributes = []Attribute{
	{Name: "thickness", Class: ClassBody},
	{Name: "density", Class: ClassBody},
	{Name: "smoothness", Class: ClassBody},
	{Name: "clarity", Class: ClassBody},
	{Name: "granularity", Class: ClassBody},
	{Name: "aroma_continuity", Class: ClassAroma},
	{Name: "aroma_length", Class: ClassAroma},
	{Name: "refinement", Class: ClassAroma},
	{Name: "delicacy", Class: ClassAroma},
	{Name: "aftertaste", Class: ClassAroma},
}

// AttributeByName resolves an attribute by its column name.
func AttributeByName(name string) (Attribute, bool) {
	for _, a := range Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}
