// Package planner turns a normalized stem and destination directory into a
// concrete rename plan. It never touches the filesystem beyond stat calls:
// the plan is data for the executor, which performs the actual move.
package planner
