package main

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	maelstrom "github.com/jepsen-io/maelstrom/demo/go"

	"github.com/mcoqzeug/course-enrollment/internal/enrollment"
)

type RosterEntry struct {
	ID    string `json:"id"`
	First string `json:"first"`
	Last  string `json:"last"`
}

type RosterResponse struct {
	Type    string        `json:"type"`
	Persons []RosterEntry `json:"persons"`
}

type CoursesResponse struct {
	Type    string              `json:"type"`
	Courses map[string][]string `json:"courses"`
}

type EnrollRequest struct {
	Subject string `json:"subject"`
	First   string `json:"first"`
	Last    string `json:"last"`
}

type EnrollResponse struct {
	Type  string `json:"type"`
	Added bool   `json:"added"`
}

type QueryRequest struct {
	Op       enrollment.Op `json:"op"`
	Subjects []string      `json:"subjects"`
}

type QueryResponse struct {
	Type    string   `json:"type"`
	Persons []string `json:"persons"`
}

// Registrar serves a catalog built once at startup. Maelstrom runs
// handlers concurrently, so all catalog access holds mu.
type Registrar struct {
	n *maelstrom.Node

	persons []enrollment.Person
	known   map[enrollment.Person]struct{}

	mu      sync.Mutex
	catalog *enrollment.Catalog
}

func NewRegistrar(n *maelstrom.Node, engine *enrollment.Engine, persons []enrollment.Person, subjects []string) (*Registrar, error) {
	catalog, err := engine.BuildCatalog(subjects, persons)
	if err != nil {
		return nil, err
	}

	if _, err := engine.TopUp(catalog, persons); err != nil {
		return nil, err
	}

	known := make(map[enrollment.Person]struct{}, len(persons))
	for _, p := range persons {
		known[p] = struct{}{}
	}

	return &Registrar{
		n:       n,
		persons: persons,
		known:   known,
		catalog: catalog,
	}, nil
}

func (r *Registrar) Roster(msg maelstrom.Message) error {
	entries := make([]RosterEntry, 0, len(r.persons))
	for _, p := range r.persons {
		entries = append(entries, RosterEntry{
			ID:    p.ID().String(),
			First: p.First,
			Last:  p.Last,
		})
	}

	return r.n.Reply(msg, RosterResponse{
		Type:    "roster_ok",
		Persons: entries,
	})
}

func (r *Registrar) Courses(msg maelstrom.Message) error {
	r.mu.Lock()
	courses := make(map[string][]string)
	for _, s := range r.catalog.Subjects() {
		g, _ := r.catalog.Group(s)
		courses[s] = names(g.Members())
	}
	r.mu.Unlock()

	return r.n.Reply(msg, CoursesResponse{
		Type:    "courses_ok",
		Courses: courses,
	})
}

// Enroll adds a known person to a subject. Enrolling twice is not an error.
func (r *Registrar) Enroll(msg maelstrom.Message) error {
	req := &EnrollRequest{}
	if err := json.Unmarshal(msg.Body, req); err != nil {
		return err
	}

	p := enrollment.Person{First: req.First, Last: req.Last}
	if _, ok := r.known[p]; !ok {
		return toRPCError(errors.Wrapf(enrollment.ErrPersonNotFound, "%s", p))
	}

	r.mu.Lock()
	added, err := r.catalog.Enroll(req.Subject, p)
	r.mu.Unlock()

	if err != nil {
		return toRPCError(err)
	}

	return r.n.Reply(msg, EnrollResponse{
		Type:  "enroll_ok",
		Added: added,
	})
}

func (r *Registrar) Query(msg maelstrom.Message) error {
	req := &QueryRequest{}
	if err := json.Unmarshal(msg.Body, req); err != nil {
		return err
	}

	q := enrollment.Query{Op: req.Op, Subjects: req.Subjects}

	r.mu.Lock()
	persons, err := q.Run(r.catalog)
	r.mu.Unlock()

	if err != nil {
		return toRPCError(err)
	}

	return r.n.Reply(msg, QueryResponse{
		Type:    "query_ok",
		Persons: names(persons),
	})
}

func names(persons []enrollment.Person) []string {
	res := make([]string, len(persons))
	for i, p := range persons {
		res[i] = p.String()
	}

	return res
}

func toRPCError(err error) error {
	switch {
	case errors.Is(err, enrollment.ErrSubjectNotFound), errors.Is(err, enrollment.ErrPersonNotFound):
		return maelstrom.NewRPCError(maelstrom.KeyDoesNotExist, err.Error())
	case errors.Is(err, enrollment.ErrMalformedQuery):
		return maelstrom.NewRPCError(maelstrom.MalformedRequest, err.Error())
	default:
		return err
	}
}
