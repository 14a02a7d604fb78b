package morphology

import (
	"bufio"
	"compress/bzip2"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// maxLineSize bounds a single dictionary line. OpenCorpora lines are short;
// the default 64 KiB scanner limit is raised only to tolerate odd sources.
const maxLineSize = 1 << 20

// scanLines yields the lines of sc. The caller checks sc.Err afterwards.
func scanLines(sc *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
	}
}

// BuildFromReader builds a LemmaIndex from dictionary text read line by line.
func BuildFromReader(r io.Reader, opts ...BuildOption) (*LemmaIndex, BuildStats, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	x, stats, err := Build(scanLines(sc), opts...)
	if err != nil {
		return nil, stats, err
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("read dictionary: %w", err)
	}
	return x, stats, nil
}

// LoadFile builds a LemmaIndex from the dictionary at path. Files ending
// in ".bz2", the format OpenCorpora publishes, are decompressed on the fly.
func LoadFile(path string, opts ...BuildOption) (*LemmaIndex, BuildStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, BuildStats{}, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		r = bzip2.NewReader(f)
	}

	x, stats, err := BuildFromReader(r, opts...)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}
	return x, stats, nil
}
