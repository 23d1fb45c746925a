package content

// Tree everything loaded from a content root. It is owned by the loader while
// being built and must be treated as read only afterwards.
type Tree struct {
	Config   *SiteConfig `json:"config"`
	Profile  *Profile    `json:"profile"`
	Sections []*Section  `json:"sections"`
}

// CountItems number of items in all sections
func (t *Tree) CountItems() int {
	n := 0
	for _, s := range t.Sections {
		n += s.CountItems()
	}
	return n
}
