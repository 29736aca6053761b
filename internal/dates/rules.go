package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Pattern fragments shared by the rules. Years are deliberately limited to
// 2000-2029 so phone numbers and id codes rarely parse as dates.
const (
	fragDayLoose  = `0?[1-9]|[12][0-9]|3[01]`
	fragDayStrict = `0[1-9]|[12][0-9]|3[01]`
	fragMonthNum  = `0[1-9]|1[012]`
	fragMonthName = `january|jan?|february|feb?|march|mar?|april|apr?|may|june?|july?|august|aug?|september|sep?t?|october|oct?|november|nov?|december|dec?`
	fragSep       = `[-\./_, :]*?`
	fragYear      = `20[0-2][0-9]`
	fragOrdinal   = `(?:nd|rd|th|st)?`
)

// dateRule pairs a compiled regex with an interpretation function. Rules are
// evaluated in order by [Extractor.Extract]; the first rule whose regex
// matches and whose fields form a valid date wins.
type dateRule struct {
	Name    string
	Pattern *regexp.Regexp
	Make    func(g groups, now time.Time) (time.Time, bool)
}

// groups holds the named submatches of one rule match.
type groups map[string]string

func (g groups) num(name string) int {
	n, _ := strconv.Atoi(g[name])
	return n
}

// monthNames indexes full month names; a captured name matches by prefix, so
// "sep", "sept", and "september" all resolve to 9.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

func (g groups) month(name string) int {
	s := strings.ToLower(g[name])
	for i, m := range monthNames {
		if strings.HasPrefix(m, s) {
			return i + 1
		}
	}
	return 0
}

// makeDate validates the fields by round-trip: out-of-range days (Feb 30)
// fail the rule instead of rolling over into the next month.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func ymd(g groups, _ time.Time) (time.Time, bool) {
	return makeDate(g.num("year"), g.num("month"), g.num("day"))
}

func namedMonth(g groups, _ time.Time) (time.Time, bool) {
	return makeDate(g.num("year"), g.month("month"), g.num("day"))
}

func namedMonthFirstDay(g groups, _ time.Time) (time.Time, bool) {
	return makeDate(g.num("year"), g.month("month"), 1)
}

func namedMonthThisYear(g groups, now time.Time) (time.Time, bool) {
	return makeDate(now.Year(), g.month("month"), g.num("day"))
}

func numericThisYear(g groups, now time.Time) (time.Time, bool) {
	return makeDate(now.Year(), g.num("month"), g.num("day"))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var (
	reYMD = regexp.MustCompile(
		`(?P<found>(?P<year>` + fragYear + `)` + fragSep + `(?P<month>` + fragMonthNum + `)` + fragSep + `(?P<day>` + fragDayStrict + `))`)

	reYDM = regexp.MustCompile(
		`(?P<found>(?P<year>` + fragYear + `)` + fragSep + `(?P<day>` + fragDayStrict + `)` + fragSep + `(?P<month>` + fragMonthNum + `))`)

	reMonthDDYYYY = regexp.MustCompile(
		`(?i)(?P<found>(?P<month>` + fragMonthName + `)` + fragSep + `(?P<day>` + fragDayLoose + `)` + fragOrdinal + fragSep + `(?P<year>` + fragYear + `))(?:[^0-9].*|$)`)

	reDDMonthYYYY = regexp.MustCompile(
		`(?i)(?:^|[^0-9])(?P<found>(?P<day>` + fragDayLoose + `)` + fragOrdinal + fragSep + `(?P<month>` + fragMonthName + `)` + fragSep + `(?P<year>` + fragYear + `))(?:[^0-9].*|$)`)

	reMonthDD = regexp.MustCompile(
		`(?i)(?P<found>(?P<month>` + fragMonthName + `)` + fragSep + `(?P<day>` + fragDayLoose + `)` + fragOrdinal + `)(?:[^0-9].*|$)`)

	reMonthYYYY = regexp.MustCompile(
		`(?i)(?P<found>(?P<month>` + fragMonthName + `)` + fragSep + `(?P<year>` + fragYear + `))(?:[^0-9].*|$)`)

	reYYYYMonth = regexp.MustCompile(
		`(?i)(?P<found>(?P<year>` + fragYear + `)` + fragSep + `(?P<month>` + fragMonthName + `))(?:[^0-9].*|$)`)

	reMMDDYYYY = regexp.MustCompile(
		`(?P<found>(?P<month>` + fragMonthNum + `)` + fragSep + `(?P<day>` + fragDayStrict + `)` + fragSep + `(?P<year>` + fragYear + `))(?:[^0-9].*|$)`)

	reDDMMYYYY = regexp.MustCompile(
		`(?P<found>(?P<day>` + fragDayStrict + `)` + fragSep + `(?P<month>` + fragMonthNum + `)` + fragSep + `(?P<year>` + fragYear + `))(?:[^0-9].*|$)`)

	reMMDD = regexp.MustCompile(
		`(?:^|[^0-9])(?P<found>(?P<month>` + fragMonthNum + `)` + fragSep + `(?P<day>` + fragDayStrict + `))(?:[^0-9]|$)`)

	reDDMM = regexp.MustCompile(
		`(?:^|[^0-9])(?P<found>(?P<day>` + fragDayStrict + `)` + fragSep + `(?P<month>` + fragMonthNum + `))(?:[^0-9]|$)`)

	reToday = regexp.MustCompile(
		`(?i)(?:^|[^0-9])(?P<found>today'?s?)(?:[^0-9]|$)`)

	reYesterday = regexp.MustCompile(
		`(?i)(?:^|[^0-9])(?P<found>yesterday'?s?)(?:[^0-9]|$)`)

	reTomorrow = regexp.MustCompile(
		`(?i)(?:^|[^0-9])(?P<found>tomorrow'?s?)(?:[^0-9]|$)`)

	reLastWeek = regexp.MustCompile(
		`(?i)(?:^|[^0-9])(?P<found>last[- _\.]?week'?s?)(?:[^0-9]|$)`)

	reLastMonth = regexp.MustCompile(
		`(?i)(?:^|[^0-9])(?P<found>last[- _\.]?month'?s?)(?:[^0-9]|$)`)
)

// rules is the ordered date-rule table. Unambiguous year-first forms come
// first, named months beat bare digit runs, and relative phrases come last.
// Ambiguous numeric forms assume month-first; this is a documented
// convention, not a locale-aware parse.
var rules = []dateRule{
	{"yyyy-mm-dd", reYMD, ymd},
	{"yyyy-dd-mm", reYDM, ymd},
	{"month-dd-yyyy", reMonthDDYYYY, namedMonth},
	{"dd-month-yyyy", reDDMonthYYYY, namedMonth},
	{"month-dd", reMonthDD, namedMonthThisYear},
	{"month-yyyy", reMonthYYYY, namedMonthFirstDay},
	{"yyyy-month", reYYYYMonth, namedMonthFirstDay},
	{"mmddyyyy", reMMDDYYYY, ymd},
	{"ddmmyyyy", reDDMMYYYY, ymd},
	{"mm-dd", reMMDD, numericThisYear},
	{"dd-mm", reDDMM, numericThisYear},
	{"today", reToday, func(_ groups, now time.Time) (time.Time, bool) {
		return midnight(now), true
	}},
	{"yesterday", reYesterday, func(_ groups, now time.Time) (time.Time, bool) {
		return midnight(now.AddDate(0, 0, -1)), true
	}},
	{"tomorrow", reTomorrow, func(_ groups, now time.Time) (time.Time, bool) {
		return midnight(now.AddDate(0, 0, 1)), true
	}},
	{"last-week", reLastWeek, func(_ groups, now time.Time) (time.Time, bool) {
		return midnight(now.AddDate(0, 0, -7)), true
	}},
	{"last-month", reLastMonth, func(_ groups, now time.Time) (time.Time, bool) {
		n := midnight(now)
		return time.Date(n.Year(), n.Month()-1, 1, 0, 0, 0, 0, time.UTC), true
	}},
}
