package enrollment

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// NewRand returns a generator whose sequence depends only on seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shortfall records a person found below the minimum subject count and
// the subjects they were registered for to make up the difference.
type Shortfall struct {
	Person     Person
	Enrolled   int
	Additional int
	Subjects   []string
}

func (s Shortfall) Notice() string {
	var notice string
	if s.Enrolled == 0 {
		notice = fmt.Sprintf("%s is work-shy, having signed up for NO Subjects!\n", s.Person)
	} else {
		notice = fmt.Sprintf("%s is only signed up for %d Subjects!\n", s.Person, s.Enrolled)
	}

	plural := ""
	if s.Additional > 1 {
		plural = "s"
	}

	return notice + fmt.Sprintf("Registering %s for %d more course%s.\n\n", s.Person, s.Additional, plural)
}

type Engine struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger
}

type Option func(*Engine)

func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine draws all randomness from rng; the caller owns its seeding.
func NewEngine(cfg Config, rng *rand.Rand, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		rng:    rng,
		logger: log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// AssignInitial picks size distinct persons uniformly at random.
func AssignInitial(size int, persons []Person, rng *rand.Rand) (*Group, error) {
	if size < 0 || size > len(persons) {
		return nil, errors.Wrapf(ErrGroupTooLarge, "size %d for %d persons", size, len(persons))
	}

	g := NewGroup()
	for _, i := range rng.Perm(len(persons))[:size] {
		g.Insert(persons[i])
	}

	return g, nil
}

// BuildCatalog fills a group for every subject, in order, with a size drawn
// uniformly from the configured bounds.
func (e *Engine) BuildCatalog(subjects []string, persons []Person) (*Catalog, error) {
	c := NewCatalog(subjects)
	if err := e.cfg.Validate(len(persons), len(c.subjects)); err != nil {
		return nil, err
	}

	minGroup, maxGroup := e.cfg.GroupBounds(len(persons), len(c.subjects))
	e.logger.Debug("Building catalog", "subjects", len(c.subjects), "persons", len(persons), "min_group", minGroup, "max_group", maxGroup)

	for _, s := range c.subjects {
		size := minGroup + e.rng.IntN(maxGroup-minGroup+1)

		g, err := AssignInitial(size, persons, e.rng)
		if err != nil {
			return nil, errors.Wrapf(err, "assign %s", s)
		}
		c.groups[s] = g

		e.logger.Debug("Assigned group", "subject", s, "size", g.Len())
	}

	return c, nil
}

// TopUp registers every person below the minimum for enough extra subjects,
// chosen uniformly among those they do not already take.
func (e *Engine) TopUp(c *Catalog, persons []Person) ([]Shortfall, error) {
	var shortfalls []Shortfall

	for _, p := range persons {
		count := c.CountFor(p)
		if count >= e.cfg.MinSubjects {
			continue
		}

		additional := e.cfg.MinSubjects - count
		open := c.SubjectsWithout(p)
		if len(open) < additional {
			return shortfalls, errors.Wrapf(ErrInsufficientSubjects, "%s needs %d, %d open", p, additional, len(open))
		}

		e.rng.Shuffle(len(open), func(i, j int) {
			open[i], open[j] = open[j], open[i]
		})

		chosen := open[:additional]
		for _, s := range chosen {
			c.groups[s].Insert(p)
		}

		e.logger.Debug("Topped up", "person", p.String(), "enrolled", count, "added", chosen)

		shortfalls = append(shortfalls, Shortfall{
			Person:     p,
			Enrolled:   count,
			Additional: additional,
			Subjects:   chosen,
		})
	}

	return shortfalls, nil
}
