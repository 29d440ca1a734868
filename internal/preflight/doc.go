// Package preflight provides readiness checks for the files and the lookup
// endpoint that an extract run depends on.
//
// The "movieinfo check" command runs RunAll and prints one line per Result.
// Checks never modify the filesystem; a missing output directory passes when
// its nearest existing ancestor is writable because extract creates it.
package preflight
