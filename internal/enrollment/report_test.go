package enrollment

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioCatalog(t *testing.T) *Catalog {
	t.Helper()

	c := NewCatalog([]string{"Physics", "Mathematics"})

	added, err := c.Enroll("Physics", ann)
	require.NoError(t, err)
	require.True(t, added)

	added, err = c.Enroll("Mathematics", jim)
	require.NoError(t, err)
	require.True(t, added)

	return c
}

func TestCatalogLookup(t *testing.T) {
	c := scenarioCatalog(t)

	groups, err := c.Lookup("Mathematics", "Physics")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, []Person{jim}, groups[0].Members())

	_, err = c.Lookup("Physics", "Latin")
	assert.True(t, errors.Is(err, ErrSubjectNotFound))
	assert.Contains(t, err.Error(), `"Latin"`)

	_, err = c.Enroll("Latin", ann)
	assert.True(t, errors.Is(err, ErrSubjectNotFound))
}

func TestCatalogEnrollIsIdempotent(t *testing.T) {
	c := scenarioCatalog(t)

	added, err := c.Enroll("Physics", ann)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, c.CountFor(ann))
	assert.Equal(t, []string{"Mathematics"}, c.SubjectsWithout(ann))
}

func TestNewCatalogDropsDuplicateSubjects(t *testing.T) {
	c := NewCatalog([]string{"Drama", "Physics", "Drama"})
	assert.Equal(t, []string{"Drama", "Physics"}, c.Subjects())
}

func TestQueryRun(t *testing.T) {
	c := scenarioCatalog(t)

	tests := []struct {
		op   Op
		want []Person
	}{
		{OpDifference, []Person{ann}},
		{OpIntersection, []Person{}},
		{OpUnion, []Person{ann, jim}},
		{OpSymmetricDifference, []Person{ann, jim}},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got, err := Query{Op: tt.op, Subjects: []string{"Physics", "Mathematics"}}.Run(c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateRejectsMalformed(t *testing.T) {
	g := NewGroup(ann)

	_, err := Evaluate("product", g, g)
	assert.True(t, errors.Is(err, ErrMalformedQuery))

	_, err = Evaluate(OpUnion, g)
	assert.True(t, errors.Is(err, ErrMalformedQuery))

	_, err = Evaluate(OpDifference, g, g, g)
	assert.True(t, errors.Is(err, ErrMalformedQuery))

	_, err = Evaluate(OpIntersection, g)
	assert.True(t, errors.Is(err, ErrMalformedQuery))
}

func TestReporterQuery(t *testing.T) {
	c := scenarioCatalog(t)
	var buf bytes.Buffer
	r := NewReporter(&buf)

	require.NoError(t, r.Query(c, Query{
		Title:    "Students studying physics or maths are:",
		Op:       OpUnion,
		Subjects: []string{"Physics", "Mathematics"},
	}))
	assert.Equal(t, "\nStudents studying physics or maths are:\nAnn Smith  Jim Jones\n", buf.String())
}

func TestReporterQueryMissingSubject(t *testing.T) {
	c := scenarioCatalog(t)
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.Query(c, Query{
		Title:    "Students studying physics but not latin are:",
		Op:       OpDifference,
		Subjects: []string{"Physics", "Latin"},
	})
	assert.True(t, errors.Is(err, ErrSubjectNotFound))
	assert.Empty(t, buf.String())
}

func TestReporterCourses(t *testing.T) {
	c := scenarioCatalog(t)
	_, err := c.Enroll("Physics", jim)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Courses(c))
	assert.Equal(t, []string{"Physics", "Mathematics"}, c.Subjects())
	assert.Equal(t,
		"Mathematics (1 students):\nJim Jones\n\nPhysics (2 students):\nAnn Smith  Jim Jones\n\n",
		buf.String())
}

func TestReporterShortfalls(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Shortfalls([]Shortfall{
		{Person: ann, Enrolled: 2, Additional: 2},
	}))
	assert.Equal(t,
		"Ann Smith is only signed up for 2 Subjects!\nRegistering Ann Smith for 2 more courses.\n\n",
		buf.String())
}

func TestDefaultQueriesResolve(t *testing.T) {
	c := NewCatalog(DefaultSubjects)
	for _, q := range DefaultQueries {
		_, err := q.Run(c)
		assert.NoError(t, err, q.Title)
	}
}
