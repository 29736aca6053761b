// Package dates finds calendar dates embedded in filename stems. A
// prioritized rule table covers ISO forms, compact digit runs, month-name
// variants with optional ordinal suffixes, and relative phrases like
// "yesterday". Pattern priority beats string position: an ISO date late in
// the stem wins over a compact date earlier in it.
package dates
