// Package report merges the findings of every validation pass into a single
// indexed ValidationSnapshot and computes the deploy-gate verdict.
//
// A snapshot is an immutable value: the engine recomputes it wholesale after
// every mutation of the underlying collections, and callers discard stale
// snapshots rather than patching them.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/graph"
	"github.com/aretw0/canopy/pkg/relations"
	"github.com/aretw0/canopy/pkg/schema"
)

// EntityFindings groups one entity's errors and warnings for inline display.
type EntityFindings struct {
	Errors   []domain.Finding `json:"errors,omitempty"`
	Warnings []domain.Finding `json:"warnings,omitempty"`
}

// Snapshot is the single source of truth the dashboard queries for
// per-entity and global validation state. ByEntity is keyed by the
// namespaced entity key ("kind-id").
type Snapshot struct {
	ByEntity      map[string]EntityFindings `json:"by_entity"`
	TotalErrors   int                       `json:"total_errors"`
	TotalWarnings int                       `json:"total_warnings"`
	MayDeploy     bool                      `json:"may_deploy"`
	GeneratedAt   time.Time                 `json:"generated_at"`
}

// SchemaFindings carries per-entity field errors from the schema pass,
// keyed by entity kind and ID.
type SchemaFindings map[domain.Kind]map[string]schema.FieldErrors

// Aggregate merges schema results, relationship results and graph-level
// broken references into one snapshot. MayDeploy is true iff no finding has
// error severity; warnings never block deployment.
func Aggregate(schemaFindings SchemaFindings, rel relations.Result, broken []graph.BrokenReference) Snapshot {
	s := Snapshot{
		ByEntity:    make(map[string]EntityFindings),
		GeneratedAt: time.Now().UTC(),
	}

	add := func(f domain.Finding) {
		key := f.EntityKey()
		entry := s.ByEntity[key]
		switch f.Severity {
		case domain.SeverityError:
			entry.Errors = append(entry.Errors, f)
			s.TotalErrors++
		default:
			entry.Warnings = append(entry.Warnings, f)
			s.TotalWarnings++
		}
		s.ByEntity[key] = entry
	}

	// Field errors, in deterministic kind/ID/field order.
	for _, kind := range []domain.Kind{
		domain.KindProgram, domain.KindForm, domain.KindCTA,
		domain.KindBranch, domain.KindChip, domain.KindShowcase,
	} {
		perEntity := schemaFindings[kind]
		ids := make([]string, 0, len(perEntity))
		for id := range perEntity {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fieldErrs := perEntity[id]
			for _, field := range fieldErrs.Fields() {
				add(domain.ErrorFinding(kind, id, field, fieldErrs[field]))
			}
		}
	}

	for _, f := range rel.Errors {
		add(f)
	}
	for _, f := range rel.Warnings {
		add(f)
	}

	for _, b := range broken {
		kind, entityID := splitNodeID(b.NodeID)
		f := domain.Finding{
			Kind:     kind,
			EntityID: entityID,
			Field:    b.ReferenceType,
			Message:  fmt.Sprintf("Broken reference: %s %q does not exist", b.ReferenceType, b.ReferencedID),
			Severity: b.Severity,
		}
		add(f)
	}

	s.MayDeploy = s.TotalErrors == 0
	return s
}

// Entity returns the findings recorded for one entity, by kind and raw ID.
func (s Snapshot) Entity(kind domain.Kind, id string) EntityFindings {
	return s.ByEntity[domain.EntityKey(kind, id)]
}

// AllErrors flattens every error finding, sorted by entity key, so a deploy
// refusal can show a complete human-readable reason.
func (s Snapshot) AllErrors() []domain.Finding {
	keys := make([]string, 0, len(s.ByEntity))
	for k := range s.ByEntity {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []domain.Finding
	for _, k := range keys {
		out = append(out, s.ByEntity[k].Errors...)
	}
	return out
}

// splitNodeID maps a namespaced node ID back to its entity kind and raw ID.
// Graph node type prefixes coincide with domain kinds by construction.
func splitNodeID(nodeID string) (domain.Kind, string) {
	for _, kind := range []domain.Kind{
		domain.KindProgram, domain.KindForm, domain.KindCTA,
		domain.KindBranch, domain.KindChip, domain.KindShowcase,
	} {
		prefix := string(kind) + "-"
		if len(nodeID) > len(prefix) && nodeID[:len(prefix)] == prefix {
			return kind, nodeID[len(prefix):]
		}
	}
	return "", nodeID
}
