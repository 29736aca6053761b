// Package pipeline runs files through the full processing chain: discovery,
// name cleaning, date handling, destination matching, collision-safe
// planning, and finally applying (or previewing) the resulting renames.
package pipeline
