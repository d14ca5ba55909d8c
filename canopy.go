package canopy

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/canopy/internal/metrics"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/graph"
	"github.com/aretw0/canopy/pkg/relations"
	"github.com/aretw0/canopy/pkg/report"
	"github.com/aretw0/canopy/pkg/schema"
)

// Version is the current release of the Canopy engine.
var Version = "0.3.0"

// Engine is the high-level entry point for the Canopy library. It wires the
// validation passes and the graph projection into one deterministic
// pipeline. The engine holds no state between evaluations; it is safe to
// share one instance across concurrent callers.
type Engine struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics attaches a Prometheus recorder observed on every evaluation.
func WithMetrics(r *metrics.Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// New initializes a new Canopy Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return eng
}

// Result is the full output of one evaluation: the decorated dependency
// graph for rendering and the aggregated validation snapshot for the
// dashboard and the deploy gate.
type Result struct {
	Snapshot report.Snapshot `json:"snapshot"`
	Graph    graph.Graph     `json:"graph"`
}

// Evaluate runs the complete pipeline over one configuration snapshot:
// entity schemas, relationship validation, graph projection, orphan and
// broken-reference analysis, and aggregation. The input is never mutated;
// calling Evaluate twice on identical collections yields identical results
// (up to the snapshot timestamp).
func (e *Engine) Evaluate(c domain.Collections) *Result {
	start := time.Now()

	schemaFindings := e.validateSchemas(c)
	rel := relations.Validate(c)

	g := graph.Build(c)
	orphans := graph.DetectOrphans(g)
	broken := graph.DetectBrokenReferences(c)
	decorated := graph.Decorate(g, orphans, broken)

	snapshot := report.Aggregate(schemaFindings, rel, broken)

	elapsed := time.Since(start)
	if e.recorder != nil {
		e.recorder.ObserveRun(elapsed, snapshot.TotalErrors, snapshot.TotalWarnings)
	}
	e.logger.Info("validation run complete",
		"entities", c.EntityCount(),
		"nodes", len(decorated.Nodes),
		"edges", len(decorated.Edges),
		"errors", snapshot.TotalErrors,
		"warnings", snapshot.TotalWarnings,
		"may_deploy", snapshot.MayDeploy,
		"elapsed", elapsed,
	)

	return &Result{Snapshot: snapshot, Graph: decorated}
}

// validateSchemas runs the per-entity field validation. Stored entities are
// checked in edit-mode context against their own collection, so an entity's
// unchanged ID never flags itself as a duplicate.
func (e *Engine) validateSchemas(c domain.Collections) report.SchemaFindings {
	findings := report.SchemaFindings{}
	record := func(kind domain.Kind, id string, errs schema.FieldErrors) {
		if len(errs) == 0 {
			return
		}
		if findings[kind] == nil {
			findings[kind] = make(map[string]schema.FieldErrors)
		}
		findings[kind][id] = errs
	}

	programIDs := idSet(c.Programs)
	for id, p := range c.Programs {
		record(domain.KindProgram, id, schema.ValidateProgram(p, schema.EditOf(id, programIDs)))
	}

	formIDs := idSet(c.Forms)
	for id, f := range c.Forms {
		record(domain.KindForm, id, schema.ValidateForm(f, schema.EditOf(id, formIDs)))
	}

	ctaIDs := idSet(c.CTAs)
	for id, cta := range c.CTAs {
		record(domain.KindCTA, id, schema.ValidateCTA(cta, schema.EditOf(id, ctaIDs)))
	}

	branchIDs := idSet(c.Branches)
	for id, b := range c.Branches {
		record(domain.KindBranch, id, schema.ValidateBranch(b, schema.EditOf(id, branchIDs)))
	}

	chipIDs := idSet(c.Chips)
	for id, ch := range c.Chips {
		record(domain.KindChip, id, schema.ValidateChip(ch, schema.EditOf(id, chipIDs)))
	}

	// Showcase items live in a list; duplicates between items are real
	// duplicates, so each item is checked against the IDs of the others.
	for i, item := range c.Showcase {
		others := make(map[string]bool, len(c.Showcase))
		for j, other := range c.Showcase {
			if i != j {
				others[other.ID] = true
			}
		}
		record(domain.KindShowcase, item.ID, schema.ValidateShowcaseItem(item, schema.CreateIn(others)))
	}

	return findings
}

func idSet[V any](m map[string]V) map[string]bool {
	set := make(map[string]bool, len(m))
	for id := range m {
		set[id] = true
	}
	return set
}
