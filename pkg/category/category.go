package category

// Category classifies an event for display purposes.
type Category string

const (
	CategoryPersonal  Category = "personal"
	CategoryWork      Category = "work"
	CategoryHealth    Category = "health"
	CategoryImportant Category = "important"
)

// Descriptor carries the presentation attributes associated with a category.
// The core itself only needs the enum value; the descriptor exists for the
// presentation layer to render names and color tags consistently.
type Descriptor struct {
	Name  string
	Color string
}

var descriptors = map[Category]Descriptor{
	CategoryPersonal:  {Name: "Personal", Color: "blue"},
	CategoryWork:      {Name: "Work", Color: "green"},
	CategoryHealth:    {Name: "Health", Color: "red"},
	CategoryImportant: {Name: "Important", Color: "yellow"},
}

// All returns every known category in a stable order.
func All() []Category {
	return []Category{CategoryPersonal, CategoryWork, CategoryHealth, CategoryImportant}
}

// DescriptorOf returns the display descriptor for c.
func DescriptorOf(c Category) (Descriptor, bool) {
	d, ok := descriptors[c]
	return d, ok
}

// Normalize maps unknown category values to CategoryPersonal, the form
// default, so malformed drafts never leave the store in an undefined state.
func Normalize(c Category) Category {
	if _, ok := descriptors[c]; ok {
		return c
	}
	return CategoryPersonal
}
