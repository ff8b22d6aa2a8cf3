// Package vocabulary holds the fixed word lists shared by the scoring and rewriting packages.
// Everything here is read-only after package initialization; use the accessor
// functions rather than the unexported tables.
package vocabulary
