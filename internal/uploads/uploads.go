// Package uploads decides how a set of input files is batched into
// server-side items. No network I/O happens here; the result is a plan
// of requests the upload command then executes.
package uploads

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dsc/cli/internal/api"
)

// Meta are the upload options as given on the command line.
type Meta struct {
	// SingleItem forces all files into one item. Default is one item
	// per file. Incompatible with Traverse.
	SingleItem bool

	// Traverse expands directories recursively.
	Traverse bool

	// Matches and NotMatches filter traversed file names by glob.
	Matches    string
	NotMatches string

	// Direction is "", "in" or "out".
	Direction string

	// Folder to associate with new items.
	Folder string

	// AllowDupes disables the server-side duplicate check.
	AllowDupes bool

	// Tags in command line order. Duplicates are passed through; the
	// server resolves names and ids.
	Tags []string

	// FileFilter is a glob applied server-side when unpacking
	// archives (zip, eml).
	FileFilter string

	// Language of the documents.
	Language string
}

// Plan is the decided set of upload requests. Each element of Requests
// holds the files of one request.
type Plan struct {
	Requests [][]string
	Meta     api.ItemUploadMeta
}

// directionValue maps the flag value to the wire value.
func directionValue(d string) (string, error) {
	switch d {
	case "":
		return "", nil
	case "in":
		return "incoming", nil
	case "out":
		return "outgoing", nil
	default:
		return "", fmt.Errorf("invalid direction %q: must be 'in' or 'out'", d)
	}
}

// WireMeta converts the command line options into the meta part of an
// upload request. Duplicate handling and tag resolution happen server
// side; the values are only forwarded.
func WireMeta(meta Meta) (api.ItemUploadMeta, error) {
	direction, err := directionValue(meta.Direction)
	if err != nil {
		return api.ItemUploadMeta{}, err
	}

	wire := api.ItemUploadMeta{
		Multiple:       !meta.SingleItem,
		Direction:      direction,
		Folder:         meta.Folder,
		SkipDuplicates: !meta.AllowDupes,
		Tags:           api.StringList{Items: meta.Tags},
		FileFilter:     meta.FileFilter,
		Language:       meta.Language,
	}
	if wire.Tags.Items == nil {
		wire.Tags.Items = []string{}
	}
	return wire, nil
}

// Build validates the options, expands the inputs and plans the upload
// requests: one request per file by default, a single request with all
// files when SingleItem is set. Validation failures plan zero requests.
func Build(inputs []string, meta Meta) (*Plan, error) {
	if meta.SingleItem && meta.Traverse {
		return nil, fmt.Errorf("--single-item cannot be used with --traverse")
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no files to upload")
	}

	wire, err := WireMeta(meta)
	if err != nil {
		return nil, err
	}

	files, err := expand(inputs, meta)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files matched")
	}

	if meta.SingleItem {
		return &Plan{Requests: [][]string{files}, Meta: wire}, nil
	}

	requests := make([][]string, len(files))
	for i, f := range files {
		requests[i] = []string{f}
	}
	return &Plan{Requests: requests, Meta: wire}, nil
}

// expand resolves the command line inputs into concrete files. Without
// Traverse every input must be a regular file; with Traverse
// directories are walked recursively and files filtered by the
// Matches/NotMatches globs.
func expand(inputs []string, meta Meta) ([]string, error) {
	var files []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", input, err)
		}

		if !info.IsDir() {
			files = append(files, input)
			continue
		}
		if !meta.Traverse {
			return nil, fmt.Errorf("%s is a directory: use --traverse to upload directories", input)
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ok, err := matched(filepath.Base(path), meta)
			if err != nil {
				return err
			}
			if ok {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to traverse %s: %w", input, err)
		}
	}
	return files, nil
}

func matched(name string, meta Meta) (bool, error) {
	if meta.Matches != "" {
		ok, err := filepath.Match(meta.Matches, name)
		if err != nil {
			return false, fmt.Errorf("invalid --matches glob %q: %w", meta.Matches, err)
		}
		if !ok {
			return false, nil
		}
	}
	if meta.NotMatches != "" {
		ok, err := filepath.Match(meta.NotMatches, name)
		if err != nil {
			return false, fmt.Errorf("invalid --not-matches glob %q: %w", meta.NotMatches, err)
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}
