// Package display renders plans, diffs, and project trees for the terminal.
// The core pipeline never prints; everything user-visible funnels through
// here or the logger.
package display
