package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/mcoqzeug/course-enrollment/internal/enrollment"
)

type options struct {
	Seed        uint64 `short:"s" long:"seed" env:"ENROLLMENT_SEED" description:"Random seed, 0 picks one from the clock"`
	MinSubjects int    `short:"m" long:"min-subjects" env:"ENROLLMENT_MIN_SUBJECTS" default:"4" description:"Minimum number of subjects per student"`
	Verbose     bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

func main() {
	// go run ./cmd/enrollment --seed 42 -v
	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           log.InfoLevel,
	})
	if opts.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Error("Enrollment run failed", "error", err)
		os.Exit(1)
	}
}

func run(opts options, out io.Writer, logger *log.Logger) error {
	logger = logger.With("run", uuid.NewString())
	logger.Info("Starting enrollment", "seed", opts.Seed, "min_subjects", opts.MinSubjects)

	persons := enrollment.NewRoster()
	engine := enrollment.NewEngine(
		enrollment.Config{MinSubjects: opts.MinSubjects},
		enrollment.NewRand(opts.Seed),
		enrollment.WithLogger(logger),
	)

	catalog, err := engine.BuildCatalog(enrollment.DefaultSubjects, persons)
	if err != nil {
		return errors.Wrap(err, "build catalog")
	}

	reporter := enrollment.NewReporter(out)

	shortfalls, err := engine.TopUp(catalog, persons)
	if err != nil {
		return errors.Wrap(err, "top up")
	}

	if err := reporter.Shortfalls(shortfalls); err != nil {
		return err
	}

	if err := reporter.Courses(catalog); err != nil {
		return err
	}

	for _, q := range enrollment.DefaultQueries {
		if err := reporter.Query(catalog, q); err != nil {
			return err
		}
	}

	logger.Info("Enrollment complete", "shortfalls", len(shortfalls))
	return nil
}
