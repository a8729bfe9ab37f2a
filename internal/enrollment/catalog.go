package enrollment

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Catalog maps each subject to its group. The subject list is fixed at
// construction; only group membership changes afterwards.
type Catalog struct {
	subjects []string
	groups   map[string]*Group
}

func NewCatalog(subjects []string) *Catalog {
	subjects = lo.Uniq(subjects)

	groups := make(map[string]*Group, len(subjects))
	for _, s := range subjects {
		groups[s] = NewGroup()
	}

	return &Catalog{
		subjects: subjects,
		groups:   groups,
	}
}

// Subjects returns the subject names in catalog order.
func (c *Catalog) Subjects() []string {
	return slices.Clone(c.subjects)
}

func (c *Catalog) Group(subject string) (*Group, error) {
	g, ok := c.groups[subject]
	if !ok {
		return nil, errors.Wrapf(ErrSubjectNotFound, "%q", subject)
	}

	return g, nil
}

// Lookup resolves every subject or none.
func (c *Catalog) Lookup(subjects ...string) ([]*Group, error) {
	res := make([]*Group, 0, len(subjects))
	for _, s := range subjects {
		g, err := c.Group(s)
		if err != nil {
			return nil, err
		}
		res = append(res, g)
	}

	return res, nil
}

func (c *Catalog) Enroll(subject string, p Person) (bool, error) {
	g, err := c.Group(subject)
	if err != nil {
		return false, err
	}

	return g.Insert(p), nil
}

// CountFor returns the number of subjects p is enrolled in.
func (c *Catalog) CountFor(p Person) int {
	return lo.CountBy(c.subjects, func(s string) bool {
		return c.groups[s].Contains(p)
	})
}

// SubjectsWithout returns, in catalog order, the subjects p is not enrolled in.
func (c *Catalog) SubjectsWithout(p Person) []string {
	return lo.Filter(c.subjects, func(s string, _ int) bool {
		return !c.groups[s].Contains(p)
	})
}
