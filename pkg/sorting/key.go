package sorting

import (
	"github.com/foomo/profilesite/content"
	"github.com/pkg/errors"
)

// Key selects the item field, or chain of fields, items are compared by
type Key int

const (
	KeyNone Key = iota
	KeyDate
	KeyStartDate
	KeyEndDate
	KeyTitle
)

var ErrUnknownKey = errors.New("unknown sort key")

var keyNames = map[Key]string{
	KeyDate:      "date",
	KeyStartDate: "start_date",
	KeyEndDate:   "end_date",
	KeyTitle:     "title",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "none"
}

// ParseKey maps the document spelling of a sort key, an empty string yields KeyNone
func ParseKey(s string) (Key, error) {
	if s == "" {
		return KeyNone, nil
	}
	for k, name := range keyNames {
		if name == s {
			return k, nil
		}
	}
	return KeyNone, errors.Wrapf(ErrUnknownKey, "%q", s)
}

// chain returns the candidate fields of an item in fallback order
func (k Key) chain(it *content.Item) []string {
	switch k {
	case KeyDate:
		return []string{it.Date, it.StartDate, it.EndDate}
	case KeyStartDate:
		return []string{it.StartDate, it.Date, it.EndDate}
	case KeyEndDate:
		return []string{it.EndDate, it.Date, it.StartDate}
	case KeyTitle:
		return []string{it.Title}
	default:
		return nil
	}
}
