package enrollment

import "github.com/google/btree"

const groupDegree = 8

func personLess(a, b Person) bool {
	return ComparePersons(a, b) < 0
}

// Group is the set of Persons enrolled in one subject, kept sorted by
// ComparePersons.
type Group struct {
	t *btree.BTreeG[Person]
}

func NewGroup(persons ...Person) *Group {
	g := &Group{t: btree.NewG[Person](groupDegree, personLess)}
	for _, p := range persons {
		g.t.ReplaceOrInsert(p)
	}

	return g
}

// Insert adds p and reports whether it was not already a member.
func (g *Group) Insert(p Person) bool {
	_, replaced := g.t.ReplaceOrInsert(p)
	return !replaced
}

func (g *Group) Contains(p Person) bool {
	return g.t.Has(p)
}

func (g *Group) Len() int {
	return g.t.Len()
}

// Members returns the group in ascending order.
func (g *Group) Members() []Person {
	members := make([]Person, 0, g.t.Len())
	g.t.Ascend(func(p Person) bool {
		members = append(members, p)
		return true
	})

	return members
}

// Difference returns the members of a that are not in b.
func Difference(a, b *Group) []Person {
	return setMinus(a.Members(), b.Members(), ComparePersons)
}

func Intersection(a, b *Group) []Person {
	return setIntersect(a.Members(), b.Members(), ComparePersons)
}

// IntersectAll returns the members common to every group.
func IntersectAll(groups ...*Group) []Person {
	sets := make([][]Person, len(groups))
	for i, g := range groups {
		sets[i] = g.Members()
	}

	return setIntersectN(ComparePersons, sets...)
}

// SymmetricDifference returns the members of exactly one of a and b.
func SymmetricDifference(a, b *Group) []Person {
	return setXor(a.Members(), b.Members(), ComparePersons)
}

func Union(a, b *Group) []Person {
	return setUnion(a.Members(), b.Members(), ComparePersons)
}
