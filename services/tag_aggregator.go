// File: /services/tag_aggregator.go
package services

import (
	"fmt"
	"sort"

	"eventloop-api/models"
)

// TagCount is one distinct tag with its occurrence count across a set of events.
type TagCount struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Display string `json:"display"`
}

// AggregateTags counts distinct tags across the given tag sets. Each event
// contributes each of its tags once; nil or empty sets contribute nothing.
// The result is ordered by count descending, ties broken by name ascending.
func AggregateTags(sets []models.StringSlice) []TagCount {
	counts := make(map[string]int)
	for _, set := range sets {
		seen := make(map[string]bool, len(set))
		for _, tag := range set {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			counts[tag]++
		}
	}

	result := make([]TagCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, TagCount{
			Name:    name,
			Count:   count,
			Display: fmt.Sprintf("%s (%d)", name, count),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// TopTags truncates an aggregate to its first n entries.
func TopTags(tags []TagCount, n int) []TagCount {
	if len(tags) > n {
		return tags[:n]
	}
	return tags
}
