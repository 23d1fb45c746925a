package content

import "strings"

// Item a single listed entry - publication, position, credential ...
type Item struct {
	Title     string   `toml:"title" json:"title"`
	Date      string   `toml:"date,omitempty" json:"date,omitempty"`             // single point in time
	StartDate string   `toml:"start_date,omitempty" json:"startDate,omitempty"` // begin of a period
	EndDate   string   `toml:"end_date,omitempty" json:"endDate,omitempty"`     // end of a period, open when empty
	Authors   []string `toml:"authors,omitempty" json:"authors,omitempty"`
	Venue     string   `toml:"venue,omitempty" json:"venue,omitempty"`
	Location  string   `toml:"location,omitempty" json:"location,omitempty"`
	Detail    string   `toml:"detail,omitempty" json:"detail,omitempty"`
}

// IsPublication an item listing authors, venue, location and date is rendered as a
// publication reference
func (i *Item) IsPublication() bool {
	return len(i.Authors) > 0 &&
		!isBlank(i.Venue) &&
		!isBlank(i.Location) &&
		!isBlank(i.Date)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
