package amr

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
)

// Result stores the closest reference gene match for one sample sequence.
type Result struct {
	// SampleID is the FASTA identifier of the sample
	SampleID string

	// Gene is the name of the closest reference gene. Empty if the
	// catalog had no entries
	Gene string

	// Similarity is the match percentage rounded to two decimal places.
	// -1 if the catalog had no entries
	Similarity float64
}

// compareAll finds the closest reference gene for every sample. Results
// keep the samples' order. With verbose a progress bar is drawn to stderr.
func compareAll(samples []Sample, catalog []Gene, verbose bool) ([]Result, error) {
	var bar *pb.ProgressBar
	if verbose {
		bar = pb.Full.Start64(int64(len(samples)))
		bar.SetWriter(os.Stderr)
		defer bar.Finish()
	}

	results := make([]Result, 0, len(samples))
	for _, sample := range samples {
		gene, score := closestMatch(sample.Seq, catalog)

		rounded, err := roundSimilarity(score)
		if err != nil {
			return nil, err
		}

		results = append(results, Result{
			SampleID:   sample.ID,
			Gene:       gene,
			Similarity: rounded,
		})

		if bar != nil {
			bar.Increment()
		}
	}

	return results, nil
}

// closestMatch scans the catalog in order for the gene most similar to seq.
// A later gene has to beat the best score outright to replace it, so ties
// go to the earlier entry. An empty catalog returns ("", -1).
func closestMatch(seq string, catalog []Gene) (name string, best float64) {
	best = -1.0
	for _, gene := range catalog {
		if s := similarity(seq, gene.Seq); s > best {
			name = gene.Name
			best = s
		}
	}

	return
}

// similarity returns the percentage of positions at which seq and ref hold
// the same base. Positions are compared up to the end of the shorter
// sequence while the denominator is the length of the longer one, so
// disagreement in length lowers the score. Case-insensitive. Either
// sequence empty scores 0.
func similarity(seq, ref string) float64 {
	seq = strings.ToUpper(seq)
	ref = strings.ToUpper(ref)

	if seq == "" || ref == "" {
		return 0
	}

	shorter := len(seq)
	if len(ref) < shorter {
		shorter = len(ref)
	}

	longer := len(seq)
	if len(ref) > longer {
		longer = len(ref)
	}

	matches := 0
	for i := 0; i < shorter; i++ {
		if seq[i] == ref[i] {
			matches++
		}
	}

	return float64(matches) / float64(longer) * 100.0
}

// roundSimilarity returns a float for a similarity percentage to 2 decimal places
func roundSimilarity(similarity float64) (float64, error) {
	roundedString := fmt.Sprintf("%.2f", similarity)

	return strconv.ParseFloat(roundedString, 64)
}
