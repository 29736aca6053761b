// Package words provides the built-in English stopword list and the bundled
// thesaurus used for destination matching. Stopword stripping changes the
// rendered filename. Synonym expansion never does: it only widens the term
// set the matcher compares against folder names.
package words
