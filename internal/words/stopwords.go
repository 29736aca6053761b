package words

import (
	"regexp"
	"strings"
)

// builtinStopwords is the common-English stopword list. Entries are matched
// case-insensitively against whole words only.
var builtinStopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(stopwordList) {
		builtinStopwords[w] = struct{}{}
	}
}

const stopwordList = `
a able about above across actually after afterwards again against ago all
almost alone along already also although always am among amongst an and
another any anybody anyhow anyone anything anyway anywhere apart are around
as aside at away back be became because become becomes been before
beforehand behind being below beside besides better between beyond both
brief but by came can cannot cant certain certainly come comes concerning
consequently contain containing contains copy could couldnt course currently
did do does doing done down during each early either else elsewhere end
enough etc even ever every everybody everyone everything everywhere except
far few fill final finally first five followed following follows for former
formerly forth four from further furthermore gave get gets getting give
given gives go goes going gone got had hardly has have having he hello
hence her here hereafter hereby herein hers herself him himself his hither
how however if in indeed inner inside instead into inward is it its itself
just keep keeps kept know known knows last lately later latter least less
lest let lets like liked likely little look looking looks made mainly make
makes making many may maybe me meantime meanwhile merely might mine more
moreover most mostly much must my myself namely near nearly necessary need
needed needs neither never nevertheless next no nobody none nonetheless
noone nor normally not nothing now nowhere of off often oh ok okay on once
one ones only onto or other others otherwise ought our ours ourselves out
outside over overall own particular particularly per perhaps placed please
plus possible presumably probably quite rather really regarding regardless
relatively respectively right said same saw say saying says second secondly
see seeing seem seemed seeming seems seen self selves sensible sent serious
several shall she should since six so some somebody somehow someone
something sometime sometimes somewhat somewhere soon sorry still sub such
sup sure take taken tell tends than thank thanks that thats the their
theirs them themselves then thence there thereafter thereby therefore
therein thereupon these they thing things think third this thorough
thoroughly those though three through throughout thru thus til till to
together too took toward towards tried tries truly try trying twice two un
under unless unlikely until unto up upon us use used useful uses using
usually various very via vs want wants was way we well went were what
whatever when whence whenever where whereafter whereas whereby wherein
whereupon wherever whether which while whither who whoever whole whom whose
why will willing wish with within without wonder would yes yet you your
yours yourself yourselves
`

// IsStopword reports whether w (any case) is in the built-in list.
func IsStopword(w string) bool {
	_, ok := builtinStopwords[strings.ToLower(w)]
	return ok
}

var reDigitsOnly = regexp.MustCompile(`^[0-9]+$`)

// Removable reports whether w should be stripped during cleaning. extra is
// the per-run stopword addition; protected terms are never stripped, and
// neither are purely numeric words even when listed.
func Removable(w string, extra []string, protected []string) bool {
	if reDigitsOnly.MatchString(w) {
		return false
	}
	for _, p := range protected {
		if strings.EqualFold(p, w) {
			return false
		}
	}
	if IsStopword(w) {
		return true
	}
	for _, e := range extra {
		if strings.EqualFold(e, w) {
			return true
		}
	}
	return false
}
