package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	maelstrom "github.com/jepsen-io/maelstrom/demo/go"

	"github.com/mcoqzeug/course-enrollment/internal/enrollment"
)

type options struct {
	Seed        uint64 `short:"s" long:"seed" env:"ENROLLMENT_SEED" description:"Random seed, 0 picks one from the clock"`
	MinSubjects int    `short:"m" long:"min-subjects" env:"ENROLLMENT_MIN_SUBJECTS" default:"4" description:"Minimum number of subjects per student"`
}

func main() {
	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	// stdout carries maelstrom messages
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.InfoLevel,
	})

	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	n := maelstrom.NewNode()

	// echo '{"src":"c1","dest":"n1","body":{"type":"init","msg_id":1,"node_id":"n1","node_ids":["n1"]}}' | ./bin/maelstrom-enrollment
	engine := enrollment.NewEngine(
		enrollment.Config{MinSubjects: opts.MinSubjects},
		enrollment.NewRand(opts.Seed),
		enrollment.WithLogger(logger),
	)

	r, err := NewRegistrar(n, engine, enrollment.NewRoster(), enrollment.DefaultSubjects)
	if err != nil {
		logger.Error("Failed to build catalog", "error", err)
		os.Exit(1)
	}

	n.Handle("roster", r.Roster)
	n.Handle("courses", r.Courses)
	n.Handle("enroll", r.Enroll)
	n.Handle("query", r.Query)

	logger.Info("Registrar ready", "seed", opts.Seed)

	if err := n.Run(); err != nil {
		logger.Error("Node stopped", "error", err)
		os.Exit(1)
	}
}
