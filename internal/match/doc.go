// Package match scores a project's filing folders against a filename's term
// set. Results are deterministic: equal scores are ordered by exact-match
// preference, then by folder number, then by path.
package match
