// Package maxcover is the core of covopt: a fixed-universe-free dense
// set (BitSet), a branch-and-bound search Engine, the B1/B2/B3 pruning
// Bound functions, and the Builder used to assemble an Engine. See
// SPEC_FULL.md §3–§4 for the full data model and component contracts.
//
// The package is intentionally domain-agnostic: a Recipe is nothing
// more than a BitSet of ingredient identifiers, and nothing in this
// package knows about CSV files, ingredient names, or the command
// line — those live in internal/ingest, internal/config, and
// cmd/covopt.
package maxcover
