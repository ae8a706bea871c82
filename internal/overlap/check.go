package overlap

import (
	"math"
	"sort"

	"github.com/zombar/textscore/internal/models"
	"github.com/zombar/textscore/internal/textutil"
)

// Check scores how much of text's shingles appear in each corpus document.
// The corpus is loaded on first use. For a fixed corpus the result is deterministic.
func (idx *Index) Check(text string) models.OverlapReport {
	idx.Load()

	query := uniqueShingles(makeShingles(tokenize(text)))
	report := models.OverlapReport{
		Enabled: len(idx.docs) > 0,
		Checked: len(query),
		Results: []models.OverlapHit{},
	}
	if len(idx.docs) == 0 || len(query) == 0 {
		return report
	}

	counts := make(map[int]int)
	samples := make(map[int]string)
	var order []int
	for _, s := range query {
		for _, id := range idx.shingles[s] {
			if counts[id] == 0 {
				order = append(order, id)
				samples[id] = s
			}
			counts[id]++
		}
	}

	hits := make([]models.OverlapHit, 0, len(order))
	for _, id := range order {
		hits = append(hits, models.OverlapHit{
			Title:   idx.docs[id].Title,
			Overlap: textutil.SafeDiv(float64(counts[id]), float64(len(query))),
			Matches: counts[id],
			Sample:  samples[id],
		})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Overlap > hits[j].Overlap
	})

	report.Matched = len(hits)
	if len(hits) > 0 {
		report.Score = int(textutil.Round(math.Min(100, 100*hits[0].Overlap)))
	}
	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}
	report.Results = hits
	return report
}
