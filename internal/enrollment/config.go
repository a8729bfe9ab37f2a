package enrollment

import "github.com/pkg/errors"

const DefaultMinSubjects = 4

var DefaultSubjects = []string{
	"Biology", "Physics", "Chemistry", "Mathematics", "Astronomy",
	"Drama", "Politics", "Philosophy", "Economics",
}

type Config struct {
	// MinSubjects is both the number of subjects every person must take
	// and the smallest initial group size.
	MinSubjects int
}

func DefaultConfig() Config {
	return Config{MinSubjects: DefaultMinSubjects}
}

// GroupBounds returns the inclusive range for initial group sizes.
func (c Config) GroupBounds(persons, subjects int) (minGroup, maxGroup int) {
	if subjects == 0 {
		return c.MinSubjects, 0
	}

	return c.MinSubjects, persons * c.MinSubjects / subjects
}

func (c Config) Validate(persons, subjects int) error {
	if subjects == 0 {
		return errors.Wrap(ErrInvalidConfig, "no subjects")
	}

	if c.MinSubjects < 1 {
		return errors.Wrapf(ErrInvalidConfig, "min subjects %d must be positive", c.MinSubjects)
	}

	if c.MinSubjects > subjects {
		return errors.Wrapf(ErrInvalidConfig, "min subjects %d exceeds %d subjects", c.MinSubjects, subjects)
	}

	minGroup, maxGroup := c.GroupBounds(persons, subjects)
	if maxGroup < minGroup {
		return errors.Wrapf(ErrInvalidConfig, "group size range [%d, %d] is empty", minGroup, maxGroup)
	}

	return nil
}
