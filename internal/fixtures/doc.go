// Package fixtures serializes a generated catalog into its on-disk form: one
// pretty-printed JSON document per record, named after the record id, under a
// per-entity directory.
//
// The record types in this package are the public schema downstream test
// suites load. Field names differ from the generator's internal names
// (Focus becomes sportsFocus, Providers becomes availableProviders, and so
// on); change them only together with every consumer.
package fixtures
