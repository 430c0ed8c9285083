// Package pattern parses a raw search path into an ordered list of search patterns.
//
// A search path is a newline or comma delimited list of glob expressions:
//
//	dist/**/*.js
//	!dist/**/*.map
//	build/report.txt, logs/
//
// Entries are trimmed and empty entries are dropped. Entries starting with `#` are comments. An entry starting
// with `!` is an exclusion pattern, every other entry is an inclusion pattern. Commas inside a brace
// alternation such as `{a,b}` are part of the pattern and do not split it.
//
// Parsing is pure string processing and never touches the filesystem, expansion against the filesystem is done by
// the search package.
package pattern
