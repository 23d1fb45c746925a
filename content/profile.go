package content

// Profile the person the page is about, read from profile.toml
type Profile struct {
	Name        Name        `toml:"name" json:"name"`
	Affiliation Affiliation `toml:"affiliation" json:"affiliation"`
	Contact     Contact     `toml:"contact" json:"contact"`
	Lead        string      `toml:"lead,omitempty" json:"lead,omitempty"`
}

type Name struct {
	Ja string `toml:"ja" json:"ja"`
	En string `toml:"en" json:"en"`
}

// Affiliation accepts a single line or a list of lines
type Affiliation struct {
	Affiliation string   `toml:"affiliation,omitempty" json:"affiliation,omitempty"`
	Lines       []string `toml:"lines,omitempty" json:"lines,omitempty"`
}

// AllLines single affiliation line first, followed by the listed lines
func (a Affiliation) AllLines() []string {
	lines := make([]string, 0, len(a.Lines)+1)
	if a.Affiliation != "" {
		lines = append(lines, a.Affiliation)
	}
	return append(lines, a.Lines...)
}

type Contact struct {
	Email string `toml:"email" json:"email"`
}
