// Package git wraps the git CLI for the operations nex performs across
// projects: status inspection, staging, committing, pushing and fetching.
//
// Every function shells out to git with -C <dir> so callers never have to
// change the working directory. Version-control semantics are entirely
// git's; this package only translates results into Go values.
package git
