package enrollment

var (
	FirstNames = []string{"Ann", "Jim", "Eve", "Dan", "Ted"}
	LastNames  = []string{"Smith", "Jones", "Howe", "Watt", "Beck"}
)

// NewRoster returns every combination of FirstNames and LastNames.
func NewRoster() []Person {
	return NewRosterFrom(FirstNames, LastNames)
}

func NewRosterFrom(first, last []string) []Person {
	persons := make([]Person, 0, len(first)*len(last))
	for _, f := range first {
		for _, l := range last {
			persons = append(persons, Person{First: f, Last: l})
		}
	}

	return persons
}
