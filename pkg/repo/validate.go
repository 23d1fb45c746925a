package repo

import (
	"fmt"
	"strings"

	"github.com/foomo/profilesite/content"
	"github.com/foomo/profilesite/pkg/sorting"
	"github.com/pkg/errors"
)

func requireField(path, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return newError(KindFormat, path, errors.Errorf("missing required field %q", field))
	}
	return nil
}

func checkSort(path string, s *content.Sort) error {
	if _, err := sorting.FromContent(s); err != nil {
		return newError(KindFormat, path, err)
	}
	return nil
}

func checkItems(path, field string, items []*content.Item) error {
	for i, it := range items {
		if it == nil {
			return newError(KindFormat, path, errors.Errorf("%s[%d] is empty", field, i))
		}
		if err := requireField(path, fmt.Sprintf("%s[%d].title", field, i), it.Title); err != nil {
			return err
		}
	}
	return nil
}
