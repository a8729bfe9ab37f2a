package enrollment

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Op string

const (
	OpDifference          Op = "difference"
	OpIntersection        Op = "intersection"
	OpSymmetricDifference Op = "symmetric_difference"
	OpUnion               Op = "union"
)

// Query is a titled set operation over named subjects. Intersection
// accepts two or more subjects; the other operations take exactly two.
type Query struct {
	Title    string
	Op       Op
	Subjects []string
}

var DefaultQueries = []Query{
	{
		Title:    "Students studying physics but not maths are:",
		Op:       OpDifference,
		Subjects: []string{"Physics", "Mathematics"},
	},
	{
		Title:    "Students studying physics and maths are:",
		Op:       OpIntersection,
		Subjects: []string{"Physics", "Mathematics"},
	},
	{
		Title:    "Students studying physics, maths, and astronomy are:",
		Op:       OpIntersection,
		Subjects: []string{"Physics", "Mathematics", "Astronomy"},
	},
	{
		Title:    "Students studying either drama or philosophy are:",
		Op:       OpSymmetricDifference,
		Subjects: []string{"Drama", "Philosophy"},
	},
	{
		Title:    "Students studying drama and/or philosophy are:",
		Op:       OpUnion,
		Subjects: []string{"Drama", "Philosophy"},
	},
}

// Evaluate applies op to groups.
func Evaluate(op Op, groups ...*Group) ([]Person, error) {
	if op == OpIntersection {
		if len(groups) < 2 {
			return nil, errors.Wrapf(ErrMalformedQuery, "%s needs at least 2 subjects, got %d", op, len(groups))
		}
		return IntersectAll(groups...), nil
	}

	var fn func(a, b *Group) []Person
	switch op {
	case OpDifference:
		fn = Difference
	case OpSymmetricDifference:
		fn = SymmetricDifference
	case OpUnion:
		fn = Union
	default:
		return nil, errors.Wrapf(ErrMalformedQuery, "unknown operation %q", op)
	}

	if len(groups) != 2 {
		return nil, errors.Wrapf(ErrMalformedQuery, "%s needs 2 subjects, got %d", op, len(groups))
	}

	return fn(groups[0], groups[1]), nil
}

// Run resolves the query's subjects in c and evaluates it.
func (q Query) Run(c *Catalog) ([]Person, error) {
	groups, err := c.Lookup(q.Subjects...)
	if err != nil {
		return nil, err
	}

	return Evaluate(q.Op, groups...)
}

func FormatPersons(persons []Person) string {
	return strings.Join(lo.Map(persons, func(p Person, _ int) string {
		return p.String()
	}), "  ")
}

// Reporter writes human-readable listings. Each method writes its output
// in one call, after everything it needs has been resolved.
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Courses lists every subject, alphabetically, with its members.
func (r *Reporter) Courses(c *Catalog) error {
	subjects := c.Subjects()
	slices.Sort(subjects)

	var b strings.Builder
	for _, s := range subjects {
		g := c.groups[s]
		fmt.Fprintf(&b, "%s (%d students):\n%s\n\n", s, g.Len(), FormatPersons(g.Members()))
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Reporter) Shortfalls(shortfalls []Shortfall) error {
	var b strings.Builder
	for _, s := range shortfalls {
		b.WriteString(s.Notice())
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Query writes the query title and its result. A failed lookup writes
// nothing.
func (r *Reporter) Query(c *Catalog, q Query) error {
	persons, err := q.Run(c)
	if err != nil {
		return errors.Wrapf(err, "query %q", q.Title)
	}

	_, err = fmt.Fprintf(r.w, "\n%s\n%s\n", q.Title, FormatPersons(persons))
	return err
}
