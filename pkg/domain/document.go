package domain

// Placeholders used when a document omits the corresponding field.
const (
	DefaultTitle       = "Untitled"
	DefaultSectionName = "Unnamed Section"
)

// Document is a story file after loading.
// Sections are owned by the document and must not be mutated after Normalize.
type Document struct {
	Title       string    `json:"title" yaml:"title" mapstructure:"title"`
	Description string    `json:"description" yaml:"description" mapstructure:"description"`
	Sections    []Section `json:"sections" yaml:"sections" mapstructure:"sections"`
}

// Section is a node of the document tree.
type Section struct {
	Name        string    `json:"name" yaml:"name" mapstructure:"name"`
	Content     []string  `json:"content" yaml:"content" mapstructure:"content"`
	Subsections []Section `json:"subsections" yaml:"subsections" mapstructure:"subsections"`
}

// Normalize applies the field defaults to the whole tree.
func (d *Document) Normalize() {
	if d.Title == "" {
		d.Title = DefaultTitle
	}
	if d.Sections == nil {
		d.Sections = []Section{}
	}
	for i := range d.Sections {
		d.Sections[i].normalize()
	}
}

func (s *Section) normalize() {
	if s.Name == "" {
		s.Name = DefaultSectionName
	}
	if s.Content == nil {
		s.Content = []string{}
	}
	if s.Subsections == nil {
		s.Subsections = []Section{}
	}
	for i := range s.Subsections {
		s.Subsections[i].normalize()
	}
}

// WalkFunc is called for each section in pre-order.
// Returning false stops the walk.
type WalkFunc func(s Section, depth int) bool

// Walk visits the section and its descendants in pre-order, depth-first.
// It reports whether the walk ran to completion.
func (s Section) Walk(fn WalkFunc) bool {
	return s.walk(fn, 0)
}

func (s Section) walk(fn WalkFunc, depth int) bool {
	if !fn(s, depth) {
		return false
	}
	for _, sub := range s.Subsections {
		if !sub.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Walk visits every section of the document in pre-order.
// Top-level sections have depth 0.
func (d Document) Walk(fn WalkFunc) bool {
	for _, s := range d.Sections {
		if !s.walk(fn, 0) {
			return false
		}
	}
	return true
}

// Count returns the number of sections in the document tree.
func (d Document) Count() int {
	n := 0
	d.Walk(func(Section, int) bool {
		n++
		return true
	})
	return n
}
