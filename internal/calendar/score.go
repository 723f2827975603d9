package calendar

import (
	"fmt"
	"math"
	"strconv"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

// Score rates a finished week 0-10 as a base of 5.0 plus five independent,
// clamped sub-scores. A week with no originals scores 0.
func Score(posts []types.Post, subs []types.Subreddit) float64 {
	var originals, comments []types.Post
	for _, p := range posts {
		if p.Kind == types.KindOriginal {
			originals = append(originals, p)
		} else {
			comments = append(comments, p)
		}
	}
	if len(originals) == 0 {
		return 0
	}

	score := 5.0
	score += limitComplianceScore(originals, subs)
	score += personaVarietyScore(posts)
	score += topicDiversityScore(originals)
	score += commentRatioScore(len(comments), len(originals))
	score += timeDistributionScore(posts)

	score = math.Max(0, math.Min(10, score))
	rounded, _ := strconv.ParseFloat(fmt.Sprintf("%.1f", score), 64)
	return rounded
}

// limitComplianceScore starts at 2.0 and loses 1.5 per subreddit whose final
// original count exceeds its cap, never dropping below 0.
func limitComplianceScore(originals []types.Post, subs []types.Subreddit) float64 {
	counts := map[string]int{}
	for _, p := range originals {
		counts[p.SubredditKey]++
	}

	score := 2.0
	for _, s := range subs {
		if counts[types.RefKey(s.ID, s.Name)] > s.Limit() {
			score -= 1.5
		}
	}
	return math.Max(0, score)
}

// personaVarietyScore rewards an even authorship spread across all posts,
// originals and comments alike, with a bonus for using 3+ distinct personas.
func personaVarietyScore(posts []types.Post) float64 {
	counts := map[string]int{}
	for _, p := range posts {
		counts[p.PersonaKey]++
	}
	if len(counts) == 0 {
		return 0
	}

	minCount, maxCount := math.MaxInt, 0
	for _, c := range counts {
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}

	var score float64
	switch spread := maxCount - minCount; {
	case spread <= 1:
		score = 1.5
	case spread <= 2:
		score = 1.0
	case spread <= 3:
		score = 0.5
	}
	if len(counts) >= 3 {
		score += 0.3
	}
	return math.Min(1.5, score)
}

// topicDiversityScore is the ratio of distinct original titles to originals.
func topicDiversityScore(originals []types.Post) float64 {
	titles := map[string]bool{}
	for _, p := range originals {
		titles[p.Title] = true
	}

	ratio := float64(len(titles)) / float64(len(originals))
	switch {
	case ratio >= 0.9:
		return 1.5
	case ratio >= 0.7:
		return 1.0
	case ratio >= 0.5:
		return 0.5
	}
	return 0
}

// commentRatioScore rewards a comment-to-post ratio near 1, the band that
// reads like organic discussion. Far outside it the week loses points.
func commentRatioScore(comments, originals int) float64 {
	ratio := float64(comments) / float64(originals)
	switch {
	case ratio >= 0.8 && ratio <= 1.2:
		return 1.5
	case ratio >= 0.6 && ratio <= 1.5:
		return 1.0
	case ratio >= 0.4 && ratio <= 2.0:
		return 0.5
	}
	return -0.5
}

// timeDistributionScore rewards posts spread across distinct (date, hour)
// buckets; a week that clusters into few buckets loses points.
func timeDistributionScore(posts []types.Post) float64 {
	buckets := map[string]bool{}
	for _, p := range posts {
		buckets[fmt.Sprintf("%s-%02d", p.Date.Format("2006-01-02"), p.Hour)] = true
	}

	ratio := float64(len(buckets)) / float64(len(posts))
	switch {
	case ratio >= 0.7:
		return 1.0
	case ratio >= 0.5:
		return 0.5
	case ratio < 0.3:
		return -0.5
	}
	return 0
}
