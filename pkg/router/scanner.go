package router

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Scanner discovers verb files under a routes directory.
type Scanner struct {
	fsys fs.FS
	log  zerolog.Logger
}

// NewScanner creates a scanner rooted at an OS directory.
func NewScanner(root string) *Scanner {
	return NewScannerFS(os.DirFS(root))
}

// NewScannerFS creates a scanner over an arbitrary filesystem, which is
// how tests supply in-memory route trees.
func NewScannerFS(fsys fs.FS) *Scanner {
	return &Scanner{fsys: fsys, log: zerolog.Nop()}
}

// SetLogger routes scan diagnostics (skipped files, unknown verbs) to log.
func (s *Scanner) SetLogger(log zerolog.Logger) {
	s.log = log
}

// Scan walks the routes tree and returns the verb-file candidates in
// reverse lexicographic order of their full relative path. The ordering is
// load-bearing: it guarantees a literal sibling such as resource/list is
// registered before a parameterized sibling resource/[id] that would
// otherwise shadow it in hosts that match in registration order.
//
// Files named index are reserved and skipped; files whose stem is not a
// recognized verb are skipped with a warning. Neither aborts the scan.
func (s *Scanner) Scan() ([]RouteFile, error) {
	var files []RouteFile

	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if p != "." && strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}

		stem := strings.TrimSuffix(name, path.Ext(name))
		rel := p[:len(p)-len(name)] + stem // relative path with extension stripped

		if stem == "index" {
			s.log.Debug().Str("file", p).Msg("skipping reserved index file")
			return nil
		}

		verb, ok := ParseVerb(stem)
		if !ok {
			s.log.Warn().Str("file", p).Str("stem", stem).Msg("skipping file: stem is not a recognized HTTP verb")
			return nil
		}

		var dir []string
		if parent := path.Dir(p); parent != "." {
			dir = strings.Split(parent, "/")
		}

		files = append(files, RouteFile{
			Dir:  dir,
			Stem: stem,
			Verb: verb,
			Path: rel,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path > files[j].Path
	})

	return files, nil
}
