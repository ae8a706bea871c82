// Package overlap detects reuse of reference documents via word-shingle fingerprints.
package overlap

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/zombar/textscore/internal/textutil"
)

// ShingleSize is the number of consecutive tokens in one shingle
const ShingleSize = 9

const (
	maxStopRatio  = 0.5 // shingles made mostly of common words are not fingerprints
	corpusPattern = "**/*.txt"
	maxResults    = 5
)

var tokenPattern = regexp.MustCompile(`[a-z0-9’']+`)

// Document is one reference text loaded from the corpus directories
type Document struct {
	ID    int
	Title string
	Text  string
}

// Index maps shingles to the documents that contain them.
// It is built at most once, on the first call to Load, and is read-only afterwards.
type Index struct {
	dirs   []string
	logger *slog.Logger

	once     sync.Once
	loaded   atomic.Bool
	docs     []Document
	shingles map[string][]int // ascending document ids
}

// New creates an unloaded Index over the given corpus directories.
// Directories naming the same path are indexed once.
func New(dirs []string, logger *slog.Logger) *Index {
	if logger == nil {
		logger = slog.Default()
	}
	return &Index{
		dirs:     uniqueDirs(dirs),
		logger:   logger,
		shingles: make(map[string][]int),
	}
}

// Load reads and indexes the corpus. Concurrent and repeated calls build only once.
func (idx *Index) Load() {
	idx.once.Do(idx.build)
}

// Loaded reports whether the corpus has been built. It never triggers a build.
func (idx *Index) Loaded() bool {
	return idx.loaded.Load()
}

// Documents returns the number of indexed documents
func (idx *Index) Documents() int {
	idx.Load()
	return len(idx.docs)
}

// Shingles returns the number of distinct indexed shingles
func (idx *Index) Shingles() int {
	idx.Load()
	return len(idx.shingles)
}

func (idx *Index) build() {
	for _, path := range idx.discover() {
		data, err := os.ReadFile(path)
		if err != nil {
			idx.logger.Warn("skipping unreadable corpus document", "path", path, "error", err)
			continue
		}
		if !utf8.Valid(data) {
			idx.logger.Warn("skipping non-UTF-8 corpus document", "path", path)
			continue
		}

		doc := Document{ID: len(idx.docs), Title: filepath.Base(path), Text: string(data)}
		idx.docs = append(idx.docs, doc)
		for _, s := range makeShingles(tokenize(doc.Text)) {
			ids := idx.shingles[s]
			if len(ids) > 0 && ids[len(ids)-1] == doc.ID {
				continue
			}
			idx.shingles[s] = append(ids, doc.ID)
		}
	}
	idx.loaded.Store(true)

	idx.logger.Info("overlap corpus loaded",
		"directories", idx.dirs,
		"documents", len(idx.docs),
		"shingles", len(idx.shingles),
	)
}

// discover lists corpus files in directory order, then sorted path order within a directory
func (idx *Index) discover() []string {
	var files []string
	for _, dir := range idx.dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			idx.logger.Debug("corpus directory not available", "directory", dir)
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(dir), corpusPattern, doublestar.WithFilesOnly())
		if err != nil {
			idx.logger.Warn("failed to list corpus directory", "directory", dir, "error", err)
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			files = append(files, filepath.Join(dir, filepath.FromSlash(m)))
		}
	}
	return files
}

func uniqueDirs(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		clean := filepath.Clean(dir)
		if seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, clean)
	}
	return out
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// makeShingles returns every ShingleSize-token window whose stop-word share is at most maxStopRatio
func makeShingles(tokens []string) []string {
	var out []string
	for i := 0; i+ShingleSize <= len(tokens); i++ {
		gram := tokens[i : i+ShingleSize]
		if float64(textutil.StopWordCount(gram))/ShingleSize > maxStopRatio {
			continue
		}
		out = append(out, strings.Join(gram, " "))
	}
	return out
}

// uniqueShingles deduplicates shingles keeping first-occurrence order
func uniqueShingles(shingles []string) []string {
	seen := make(map[string]bool, len(shingles))
	out := make([]string, 0, len(shingles))
	for _, s := range shingles {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
