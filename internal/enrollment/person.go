package enrollment

import (
	"strings"

	"github.com/google/uuid"
)

// personNamespace seeds the name-based person IDs.
var personNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("course-enrollment/person"))

type Person struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// ID is stable for a given name.
func (p Person) ID() uuid.UUID {
	return uuid.NewSHA1(personNamespace, []byte(p.First+"\x00"+p.Last))
}

func (p Person) String() string {
	return p.First + " " + p.Last
}

// ComparePersons orders by first name, then last name.
func ComparePersons(a, b Person) int {
	if c := strings.Compare(a.First, b.First); c != 0 {
		return c
	}
	return strings.Compare(a.Last, b.Last)
}
