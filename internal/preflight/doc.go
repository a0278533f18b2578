// Package preflight verifies that the output directories a generation run
// writes into exist and are usable before any fixture is touched.
//
// The generate command calls RunAll after creating directories; any failed
// check aborts the run so a permission problem surfaces once, up front,
// instead of as a half-written dataset.
package preflight
