package thesis

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"thesisdoc/common"
)

var (
	ErrNoTitleSection        = errors.New("no title section in front matter")
	ErrMultipleTitleSections = errors.New("more than one title section in front matter")
	ErrZeroColumns           = errors.New("table has no columns")
)

// Validate checks structural soundness of the parts of the document the
// requested variant puts in the output: the abstract, chapters and, for full
// variant only, back matter. Other front matter sections never reach the
// output and are not checked. All problems found are returned together, use
// errors.Is to look for specific ones.
func (d *Document) Validate(variant common.Variant) error {
	var err error

	titles := 0
	for i := range d.FrontMatter {
		if d.FrontMatter[i].Type == common.SectionTypeTitle {
			titles++
		}
	}
	switch {
	case titles == 0:
		err = multierr.Append(err, ErrNoTitleSection)
	case titles > 1:
		err = multierr.Append(err, fmt.Errorf("%w: %d found", ErrMultipleTitleSections, titles))
	}

	check := func(s *Section) {
		for i := range s.Tables {
			t := &s.Tables[i]
			if t.Shape == common.TableShapeGrid && (t.Grid == nil || len(t.Grid.Headers) == 0) {
				err = multierr.Append(err, fmt.Errorf("section %q table %q: %w", s.ID, t.ID, ErrZeroColumns))
			}
		}
	}
	if s := d.FrontSection(common.SectionTypeAbstract); s != nil {
		check(s)
	}
	for i := range d.Chapters {
		for j := range d.Chapters[i].Sections {
			check(&d.Chapters[i].Sections[j])
		}
	}
	if !variant.IsPreview() {
		for i := range d.BackMatter {
			check(&d.BackMatter[i])
		}
	}
	return err
}
