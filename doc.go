/*
Package canopy is a configuration validation and dependency-graph engine for
conversational applications.

A tenant's configuration is a set of typed entities (Programs,
Conversational Forms, CTA Definitions, Conversation Branches, Action Chips,
and Showcase Items) connected by named, typed references. Canopy validates
each entity's own fields, checks referential integrity across entities,
projects the entity set into a directed dependency graph, and runs graph
analyses (orphan detection, broken-reference detection) whose results feed a
dashboard and a save/deploy pipeline.

# Concept

The engine is a pure function over configuration snapshots. Every call to
Evaluate receives the full entity collections and returns a freshly computed
result: a decorated graph for rendering plus a ValidationSnapshot holding
per-entity errors and warnings, global counts, and the deploy-gate verdict
(MayDeploy is true iff no error-severity finding exists; warnings never
block). Nothing is cached and nothing is mutated, so concurrent evaluations
on different snapshots are trivially safe, and callers re-evaluate after
every mutation rather than patching stale results.

# Usage

	engine := canopy.New(canopy.WithLogger(logger))

	result := engine.Evaluate(collections)
	if !result.Snapshot.MayDeploy {
	    for _, f := range result.Snapshot.AllErrors() {
	        fmt.Println(f)
	    }
	}

Adapters under pkg/adapters wrap the engine for collaborators: a YAML/JSON
file loader, an HTTP API for the dashboard, an MCP server for agents, and
Redis/memory stores for the last computed snapshot per tenant.
*/
package canopy
