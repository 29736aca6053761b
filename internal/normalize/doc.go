// Package normalize cleans filename stems: camel-case splitting, stopword
// stripping, special-character removal, case transforms, protected-case
// restoration, and separator normalization. Cleaning is idempotent: running
// Clean on its own output with the same settings returns it unchanged.
package normalize
