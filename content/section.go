package content

// Sort sort configuration of a section or subsection
type Sort struct {
	// By one of date, start_date, end_date, title - empty keeps document order
	By string `toml:"by" json:"by"`
	// Rev reverses the direction
	Rev bool `toml:"rev" json:"rev"`
}

// Section top level grouping with its own heading and page anchor
type Section struct {
	Name        string        `toml:"name" json:"name"`
	Key         string        `toml:"key" json:"key"` // anchor id, must be unique
	Order       *int          `toml:"order,omitempty" json:"order,omitempty"`
	Sort        *Sort         `toml:"sort,omitempty" json:"sort,omitempty"`
	Items       []*Item       `toml:"items" json:"items"`
	Subsections []*Subsection `toml:"subsections" json:"subsections"`
}

// Subsection nested grouping within a section - it does not inherit the sort
// configuration of its section
type Subsection struct {
	Name  string  `toml:"name" json:"name"`
	Order *int    `toml:"order,omitempty" json:"order,omitempty"`
	Sort  *Sort   `toml:"sort,omitempty" json:"sort,omitempty"`
	Items []*Item `toml:"items" json:"items"`
}

// OrderOrDefault explicit order or DefaultOrder
func (s *Section) OrderOrDefault() int {
	return orderOrDefault(s.Order)
}

// OrderOrDefault explicit order or DefaultOrder
func (s *Subsection) OrderOrDefault() int {
	return orderOrDefault(s.Order)
}

// CountItems number of items in the section including its subsections
func (s *Section) CountItems() int {
	n := len(s.Items)
	for _, sub := range s.Subsections {
		n += len(sub.Items)
	}
	return n
}

func orderOrDefault(o *int) int {
	if o == nil {
		return DefaultOrder
	}
	return *o
}
