// Package countryscore computes speaker-weighted country-level LLM coverage
// scores:
//
//	country_score = Σ(language_score × speakers) / Σ(speakers)
//
// summed over the benchmarked languages spoken in the country, following the
// AI Language Proficiency Monitor methodology.
package countryscore

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
)

// ResultRecord is one row of the raw benchmark results dump: a single
// (language, model, task) score. Languages appear many times.
type ResultRecord struct {
	BCP47 string  `json:"bcp_47"`
	Score float64 `json:"score"`
}

// LanguageShare is one language's contribution to a country's score.
type LanguageShare struct {
	Code         string  `json:"language"`
	Name         string  `json:"language_name"`
	Speakers     int64   `json:"speakers"`
	PctOfCountry float64 `json:"pct_of_country"`
	Score        float64 `json:"score"`
}

// CountryScore is the weighted coverage score for one country.
type CountryScore struct {
	Score           float64         `json:"score"`
	CoveragePct     float64         `json:"coverage_pct"`
	TotalSpeakers   int64           `json:"total_speakers"`
	MatchedSpeakers int64           `json:"matched_speakers"`
	Languages       []LanguageShare `json:"languages"`
}

// Countries with fewer total recorded speakers are skipped outright.
const minSpeakers = 1000

// Per-country language detail is capped at the largest contributors.
const maxLanguageShares = 10

// AverageByLanguage reduces the raw results dump to one mean score per
// language across all models and tasks.
func AverageByLanguage(results []ResultRecord) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range results {
		sums[r.BCP47] += r.Score
		counts[r.BCP47]++
	}

	averages := make(map[string]float64, len(sums))
	for bcp, sum := range sums {
		averages[bcp] = sum / float64(counts[bcp])
	}
	return averages
}

// splitPopulationKey parses a CLDR-style "lang-CC" key (script subtags
// allowed, e.g. "zh-Hant-TW"). The country is the final part when it is a
// 2-letter uppercase code; entries without one are skipped.
func splitPopulationKey(key string) (lang, country string, ok bool) {
	if !strings.Contains(key, "-") {
		return "", "", false
	}
	parts := strings.Split(key, "-")
	country = parts[len(parts)-1]
	if len(country) != 2 ||
		strings.IndexFunc(country, func(r rune) bool { return r < 'A' || r > 'Z' }) != -1 {
		return "", "", false
	}
	return parts[0], country, true
}

// Build computes per-country weighted scores. nameByCode supplies display
// names for the language detail (missing names fall back to the code).
func Build(results []ResultRecord, population map[string]int64, nameByCode map[string]string) map[string]CountryScore {
	averages := AverageByLanguage(results)

	type speakerCount struct {
		lang     string
		speakers int64
	}
	byCountry := map[string][]speakerCount{}
	for key, speakers := range population {
		lang, country, ok := splitPopulationKey(key)
		if !ok {
			continue
		}
		byCountry[country] = append(byCountry[country], speakerCount{lang, speakers})
	}

	scores := map[string]CountryScore{}
	for country, langs := range byCountry {
		var total int64
		for _, l := range langs {
			total += l.speakers
		}
		if total < minSpeakers {
			continue
		}

		// Largest language first; ties break on code so output is stable.
		sort.Slice(langs, func(i, j int) bool {
			if langs[i].speakers != langs[j].speakers {
				return langs[i].speakers > langs[j].speakers
			}
			return langs[i].lang < langs[j].lang
		})

		var weightedSum float64
		var matched int64
		var shares []LanguageShare
		for _, l := range langs {
			score, ok := averages[l.lang]
			if !ok {
				continue
			}
			weightedSum += score * float64(l.speakers)
			matched += l.speakers

			name := nameByCode[l.lang]
			if name == "" {
				name = l.lang
			}
			shares = append(shares, LanguageShare{
				Code:         l.lang,
				Name:         name,
				Speakers:     l.speakers,
				PctOfCountry: round1(float64(l.speakers) / float64(total) * 100),
				Score:        round3(score),
			})
		}

		if matched == 0 {
			continue
		}
		if len(shares) > maxLanguageShares {
			shares = shares[:maxLanguageShares]
		}
		scores[country] = CountryScore{
			Score:           round3(weightedSum / float64(matched)),
			CoveragePct:     round1(float64(matched) / float64(total) * 100),
			TotalSpeakers:   total,
			MatchedSpeakers: matched,
			Languages:       shares,
		}
	}

	return scores
}

// LoadResults reads the raw results dump.
func LoadResults(path string) ([]ResultRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results %s: %w", path, err)
	}
	var results []ResultRecord
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to parse results %s: %w", path, err)
	}
	return results, nil
}

// LoadPopulation reads the language-speaking-population table.
func LoadPopulation(path string) (map[string]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read population table %s: %w", path, err)
	}
	population := map[string]int64{}
	if err := json.Unmarshal(data, &population); err != nil {
		return nil, fmt.Errorf("failed to parse population table %s: %w", path, err)
	}
	return population, nil
}

// Write serializes the country scores deterministically to path.
func Write(scores map[string]CountryScore, path string) error {
	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal country scores: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write country scores: %w", err)
	}
	return nil
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
