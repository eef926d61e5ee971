package scores

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contextBefore bounds how far back from a linescores array the extractor
// searches for the owning competitor's name and score fields.
const contextBefore = 1000

var (
	linescoresRE   = regexp.MustCompile(`"linescores"\s*:\s*(\[[^\]]+\])`)
	displayNameRE  = regexp.MustCompile(`"displayName"\s*:\s*"([^"]+)"`)
	shortNameRE    = regexp.MustCompile(`"name"\s*:\s*"([^"]+)"`)
	abbreviationRE = regexp.MustCompile(`"abbreviation"\s*:\s*"([^"]+)"`)
	scoreRE        = regexp.MustCompile(`"score"\s*:\s*"?(\d+)"?`)
	finalScoreRE   = regexp.MustCompile(`(\d+)-(\d+)`)
)

// extractScores pulls per-team period scores out of the game page. Each
// competitor object in the embedded JSON lists its name and score before
// its linescores array, so the nearest preceding match wins.
func extractScores(doc *goquery.Document) map[string]map[string]string {
	teams := make(map[string]map[string]string)

	doc.Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		content := script.Text()
		if content == "" {
			return true
		}

		for _, loc := range linescoresRE.FindAllStringSubmatchIndex(content, -1) {
			start := max(loc[0]-contextBefore, 0)
			before := content[start:loc[0]]

			values, ok := parseLinescores(content[loc[2]:loc[3]])
			if !ok {
				continue
			}
			periods, calculated := buildPeriodScores(values)

			name := lastSubmatch(before, displayNameRE, shortNameRE, abbreviationRE)
			if name == "" {
				continue
			}

			final := calculated
			if explicit := lastSubmatch(before, scoreRE); explicit != "" {
				final = explicit
			}
			periods["Final"] = final
			teams[name] = periods
		}

		return len(teams) < 2
	})

	if len(teams) < 2 {
		mergeMetaScores(doc, teams)
	}

	return teams
}

// lastSubmatch returns the first capture group of the last match of the
// first pattern that matches segment at all.
func lastSubmatch(segment string, patterns ...*regexp.Regexp) string {
	for _, re := range patterns {
		if matches := re.FindAllStringSubmatch(segment, -1); len(matches) > 0 {
			return matches[len(matches)-1][1]
		}
	}
	return ""
}

// parseLinescores decodes one linescores JSON array into display values.
// Items are either bare numbers or objects carrying displayValue/value.
func parseLinescores(raw string) ([]string, bool) {
	var items []interface{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case map[string]interface{}:
			if s, ok := v["displayValue"].(string); ok {
				values = append(values, s)
			} else if f, ok := v["value"].(float64); ok {
				values = append(values, strconv.FormatFloat(f, 'f', -1, 64))
			} else {
				values = append(values, "0")
			}
		case string:
			values = append(values, v)
		case float64:
			values = append(values, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			values = append(values, fmt.Sprint(v))
		}
	}
	return values, true
}

// periodLabel returns the label for period index: quarters, then overtime.
func periodLabel(index int) string {
	labels := [...]string{"1st", "2nd", "3rd", "4th"}
	if index < len(labels) {
		return labels[index]
	}
	ot := index - len(labels) + 1
	if ot == 1 {
		return "OT"
	}
	return fmt.Sprintf("OT%d", ot)
}

// buildPeriodScores maps period values to their labels and sums the
// numeric ones into a calculated final, used when the page carries no
// explicit score field.
func buildPeriodScores(values []string) (map[string]string, string) {
	periods := make(map[string]string, len(values)+1)
	total := 0
	for i, v := range values {
		periods[periodLabel(i)] = v
		if n, err := strconv.Atoi(v); err == nil {
			total += n
		}
	}
	return periods, strconv.Itoa(total)
}

// mergeMetaScores fills missing teams from the page summary meta tag,
// which reads like "Minnesota Vikings vs Chicago Bears NFL game, final
// score 27-24". Only the final totals are recoverable from it.
func mergeMetaScores(doc *goquery.Document, teams map[string]map[string]string) {
	doc.Find("meta").EachWithBreak(func(_ int, meta *goquery.Selection) bool {
		content, _ := meta.Attr("content")
		if !strings.Contains(strings.ToLower(content), "final score") {
			return true
		}

		parts := strings.SplitN(content, "vs", 2)
		if len(parts) != 2 {
			return true
		}
		firstWords := strings.Fields(parts[0])
		secondWords := strings.Fields(parts[1])
		if len(firstWords) == 0 || len(secondWords) == 0 {
			return true
		}

		m := finalScoreRE.FindStringSubmatch(parts[1])
		if m == nil {
			return true
		}

		team1 := firstWords[len(firstWords)-1]
		team2 := secondWords[0]
		if _, ok := teams[team1]; !ok {
			teams[team1] = map[string]string{"Final": m[1]}
		}
		if _, ok := teams[team2]; !ok {
			teams[team2] = map[string]string{"Final": m[2]}
		}
		return false
	})
}
