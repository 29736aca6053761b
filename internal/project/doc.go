// Package project builds an in-memory snapshot of an organizing target's
// folder tree. The tree is built once per run by walking the project root
// and is read-only afterwards, so candidate processing can share it freely.
// Nodes live in a flat arena and refer to each other by index.
package project
