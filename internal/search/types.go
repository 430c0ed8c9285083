package search

// SearchResult is the outcome of a resolution.
type SearchResult struct {
	// FilesToUpload contains the absolute, slash separated paths of the matched regular files, deduplicated
	// and sorted.
	FilesToUpload []string `json:"files" yaml:"files"`
	// RootDirectory is the directory that every path in FilesToUpload is a descendant of.
	RootDirectory string `json:"root_directory" yaml:"root_directory"`
}

// Len returns the number of resolved files.
func (result *SearchResult) Len() int {
	if result == nil {
		return 0
	}

	return len(result.FilesToUpload)
}

// IsEmpty returns true if no file was resolved.
func (result *SearchResult) IsEmpty() bool {
	return result.Len() == 0
}

// inclusion is a canonicalized inclusion pattern.
type inclusion struct {
	// pattern is the absolute, slash separated glob expression.
	pattern string
	// prefix is the literal prefix of pattern, meaningful only if wildcard is true.
	prefix string
	// wildcard is false for patterns that name a single path.
	wildcard bool
}

// expansion holds the files matched by a single inclusion and the directory it contributes to the root.
type expansion struct {
	files []string
	root  string
}
