// Package textutil provides text helpers shared by the generators and writers.
//
// The primary use cases are:
//   - Turning category slugs into display titles ("la-liga" -> "La Liga")
//   - Sanitizing record identifiers for safe use as file names
package textutil
