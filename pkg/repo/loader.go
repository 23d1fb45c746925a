package repo

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/foomo/profilesite/content"
	"github.com/foomo/profilesite/pkg/sorting"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type (
	// Loader assembles a content tree from a content root
	Loader struct {
		l         *zap.Logger
		sortItems bool
	}
	Option func(*Loader)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func NewLoader(l *zap.Logger, opts ...Option) *Loader {
	inst := &Loader{
		l:         l.Named("repo"),
		sortItems: true,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

// WithSortItems toggles item sorting, sections and subsections are ordered regardless
func WithSortItems(v bool) Option {
	return func(o *Loader) {
		o.sortItems = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Load reads config, profile and sections below root. Any failure aborts the
// whole load, a partial tree is never returned.
func (r *Loader) Load(root string) (*content.Tree, error) {
	l := r.l.With(zap.String("root", root))

	config := &content.SiteConfig{}
	configPath := filepath.Join(root, ConfigFile)
	if err := readDocument(configPath, config); err != nil {
		return nil, err
	}
	if err := requireField(configPath, "title", config.Title); err != nil {
		return nil, err
	}

	profile, err := readProfile(filepath.Join(root, ProfileFile))
	if err != nil {
		return nil, err
	}

	sections, err := r.readSections(filepath.Join(root, SectionsDir))
	if err != nil {
		return nil, err
	}

	if err := r.sortTree(sections); err != nil {
		return nil, err
	}

	tree := &content.Tree{
		Config:   config,
		Profile:  profile,
		Sections: sections,
	}
	l.Debug("loaded content",
		zap.Int("sections", len(tree.Sections)),
		zap.Int("items", tree.CountItems()),
	)
	return tree, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (r *Loader) readSections(dir string) ([]*content.Section, error) {
	paths, err := listDocuments(dir)
	if err != nil {
		return nil, err
	}

	var (
		sections    = make([]*content.Section, 0, len(paths))
		keys        = make(map[string]string, len(paths))
		validateErr error
	)
	for _, path := range paths {
		section, err := readSection(path)
		if err != nil {
			return nil, err
		}
		r.l.Debug("read section", zap.String("path", path), zap.String("key", section.Key))

		key := strings.TrimSpace(section.Key)
		switch existing, ok := keys[key]; {
		case key == "":
			validateErr = multierr.Append(validateErr, newError(KindValidation, path, errors.New("section key is empty")))
		case ok:
			validateErr = multierr.Append(validateErr, newError(KindValidation, path,
				errors.Errorf("duplicate section key %q, already used by %s", key, existing)))
		default:
			keys[key] = path
		}
		section.Key = key
		sections = append(sections, section)
	}
	if validateErr != nil {
		return nil, validateErr
	}
	return sections, nil
}

func readProfile(path string) (*content.Profile, error) {
	profile := &content.Profile{}
	if err := readDocument(path, profile); err != nil {
		return nil, err
	}
	for _, f := range []struct{ field, value string }{
		{"name.ja", profile.Name.Ja},
		{"name.en", profile.Name.En},
		{"affiliation", strings.Join(profile.Affiliation.AllLines(), "")},
		{"contact.email", profile.Contact.Email},
	} {
		if err := requireField(path, f.field, f.value); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func readSection(path string) (*content.Section, error) {
	section := &content.Section{}
	if err := readDocument(path, section); err != nil {
		return nil, err
	}
	if err := requireField(path, "name", section.Name); err != nil {
		return nil, err
	}
	if err := checkSort(path, section.Sort); err != nil {
		return nil, err
	}
	if err := checkItems(path, "items", section.Items); err != nil {
		return nil, err
	}
	for i, sub := range section.Subsections {
		if err := requireField(path, fmt.Sprintf("subsections[%d].name", i), sub.Name); err != nil {
			return nil, err
		}
		if err := checkSort(path, sub.Sort); err != nil {
			return nil, err
		}
		if err := checkItems(path, fmt.Sprintf("subsections[%d].items", i), sub.Items); err != nil {
			return nil, err
		}
	}
	return section, nil
}

// sortTree orders sections, then per section its items, its subsections and
// finally the items of each subsection. Sort configuration is never inherited.
func (r *Loader) sortTree(sections []*content.Section) error {
	sorting.Sections(sections)
	for _, section := range sections {
		if r.sortItems {
			c, err := sorting.FromContent(section.Sort)
			if err != nil {
				return newError(KindFormat, section.Key, err)
			}
			sorting.Items(section.Items, c)
		}
		sorting.Subsections(section.Subsections)
		if !r.sortItems {
			continue
		}
		for _, sub := range section.Subsections {
			c, err := sorting.FromContent(sub.Sort)
			if err != nil {
				return newError(KindFormat, section.Key+"/"+sub.Name, err)
			}
			sorting.Items(sub.Items, c)
		}
	}
	return nil
}
