// Package content holds the author-supplied course material: the seven daily
// workbooks and the recovery toolkit as document definitions, and the relief
// toolkit as an HTML fragment.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/shauncritzer/memoir"
)

//go:embed workbooks/*.yaml toolkit.yaml relief.html
var files embed.FS

// Relief toolkit page text.
const (
	ReliefTitle    = "REWIRED Relief Toolkit"
	ReliefSubtitle = "Crisis-Focused Nervous System Regulation Guide"
	ReliefName     = "rewired-relief-toolkit"
)

// Workbooks returns the daily workbook documents ordered by day.
func Workbooks() ([]*memoir.Document, error) {
	names, err := fs.Glob(files, "workbooks/day*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Slice(names, func(i, j int) bool {
		return dayNumber(names[i]) < dayNumber(names[j])
	})

	docs := make([]*memoir.Document, 0, len(names))
	for _, name := range names {
		doc, err := parse(name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Toolkit returns the recovery toolkit document.
func Toolkit() (*memoir.Document, error) {
	return parse("toolkit.yaml")
}

// ReliefFragment returns the body HTML of the relief toolkit.
func ReliefFragment() string {
	data, err := files.ReadFile("relief.html")
	if err != nil {
		// Embedded at build time; absence is a build defect.
		panic(err)
	}
	return string(data)
}

func parse(name string) (*memoir.Document, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	doc, err := memoir.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}

// dayNumber extracts N from "workbooks/dayN.yaml"; unknown names sort last.
func dayNumber(name string) int {
	base := strings.TrimSuffix(path.Base(name), ".yaml")
	n, err := strconv.Atoi(strings.TrimPrefix(base, "day"))
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
