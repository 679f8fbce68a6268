package filelist

import "github.com/filetug/filedeck/pkg/files"

// TypeCount is the number of records of a single type.
type TypeCount struct {
	Type  files.FileType
	Count int
}

// Breakdown holds a count for every known file type, in files.AllFileTypes order.
type Breakdown []TypeCount

func (b Breakdown) Count(t files.FileType) int {
	for _, tc := range b {
		if tc.Type == t {
			return tc.Count
		}
	}
	return 0
}

func (b Breakdown) Total() (total int) {
	for _, tc := range b {
		total += tc.Count
	}
	return
}

// Share returns the fraction of records of type t, 0 for an empty breakdown.
func (b Breakdown) Share(t files.FileType) float64 {
	total := b.Total()
	if total == 0 {
		return 0
	}
	return float64(b.Count(t)) / float64(total)
}

// Bars returns the filled length of each type's bar, in breakdown order,
// scaled so the largest count fills width.
func (b Breakdown) Bars(width int) []int {
	maxCount := 0
	for _, tc := range b {
		maxCount = max(maxCount, tc.Count)
	}
	bars := make([]int, len(b))
	if maxCount == 0 {
		return bars
	}
	for i, tc := range b {
		bars[i] = tc.Count * width / maxCount
	}
	return bars
}

func (b Breakdown) Map() map[files.FileType]int {
	m := make(map[files.FileType]int, len(b))
	for _, tc := range b {
		m[tc.Type] = tc.Count
	}
	return m
}

func countByType(records []files.FileRecord) Breakdown {
	types := files.AllFileTypes()
	b := make(Breakdown, len(types))
	index := make(map[files.FileType]int, len(types))
	for i, t := range types {
		b[i].Type = t
		index[t] = i
	}
	for _, r := range records {
		if i, ok := index[r.Type]; ok {
			b[i].Count++
		}
	}
	return b
}
