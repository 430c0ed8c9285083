package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/gruntwork-io/artifact-search/internal/search"
	"github.com/gruntwork-io/artifact-search/options"
	"github.com/gruntwork-io/artifact-search/util"
)

const jsonIndent = "  "

func validateOutputFormat(format string) error {
	if slices.Contains(options.OutputFormats, format) {
		return nil
	}

	return errors.New(InvalidOutputFormatError{Format: format})
}

// writeResult prints the search result to w in the given format.
func writeResult(w io.Writer, format string, result *search.SearchResult, relative bool) error {
	output, err := outputResult(result, relative)
	if err != nil {
		return err
	}

	switch format {
	case options.OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", jsonIndent)

		if err := encoder.Encode(output); err != nil {
			return errors.New(err)
		}
	case options.OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close() //nolint:errcheck

		if err := encoder.Encode(output); err != nil {
			return errors.New(err)
		}
	default:
		if _, err := fmt.Fprintf(w, "root: %s\n", output.RootDirectory); err != nil {
			return errors.New(err)
		}

		for _, file := range output.FilesToUpload {
			if _, err := fmt.Fprintln(w, file); err != nil {
				return errors.New(err)
			}
		}
	}

	return nil
}

// outputResult returns a copy of the result, with the files relative to the root directory if relative is set.
// Files outside of the root directory keep their absolute path.
func outputResult(result *search.SearchResult, relative bool) (*search.SearchResult, error) {
	files := make([]string, 0, result.Len())

	for _, file := range result.FilesToUpload {
		if relative && util.HasPathPrefix(file, result.RootDirectory) {
			relPath, err := util.GetPathRelativeTo(file, result.RootDirectory)
			if err != nil {
				return nil, err
			}

			file = relPath
		}

		files = append(files, file)
	}

	return &search.SearchResult{
		FilesToUpload: files,
		RootDirectory: result.RootDirectory,
	}, nil
}
