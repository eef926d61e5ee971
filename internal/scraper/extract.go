package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReasonTableNotFound is the ExtractError reason for a page that loaded but
// contained no recognizable upcoming-games table.
const ReasonTableNotFound = "schedule_table_not_found"

// ExtractError describes a fetched page whose shape was not recognized.
// It is distinct from a valid schedule with zero games, which is not an
// error.
type ExtractError struct {
	Reason string
}

func (e *ExtractError) Error() string {
	return "extract failed: " + e.Reason
}

// Cell is one table cell: its collapsed text plus the first link target
// found inside it, if any.
type Cell struct {
	Text string
	Href string
}

// Row is the ordered cells of one schedule table row.
type Row []Cell

// columnLayout maps the canonical schedule columns to their positions in
// the located table, -1 when the column is absent.
type columnLayout struct {
	week     int
	date     int
	opponent int
	time     int
	tv       int
}

// scheduleTable is the located upcoming-games table: its column layout and
// data rows in display order.
type scheduleTable struct {
	layout columnLayout
	rows   []Row
}

// extractSchedule locates the upcoming-games table in the document and
// returns its data rows. The table is found by header vocabulary rather
// than document position: the first table whose header row names a TIME
// column but no RESULT column (completed games list RESULT instead of TIME).
func extractSchedule(doc *goquery.Document) (*scheduleTable, error) {
	var table, headerRow *goquery.Selection
	var layout columnLayout

	doc.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		tbl.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
			texts := headerTexts(tr)
			if hasColumn(texts, "TIME") && !hasColumn(texts, "RESULT") {
				table = tbl
				headerRow = tr
				layout = layoutFromHeader(texts)
				return false
			}
			return true
		})
		return table == nil
	})

	if table == nil || headerRow == nil {
		return nil, &ExtractError{Reason: ReasonTableNotFound}
	}

	st := &scheduleTable{layout: layout}
	headerNode := headerRow.Get(0)
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.Get(0) == headerNode {
			return
		}
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}
		row := make(Row, 0, cells.Length())
		cells.Each(func(_ int, td *goquery.Selection) {
			href, _ := td.Find("a[href]").First().Attr("href")
			row = append(row, Cell{Text: collapseWhitespace(td.Text()), Href: href})
		})
		st.rows = append(st.rows, row)
	})

	return st, nil
}

// headerTexts returns the upper-cased cell texts of a row, th and td alike.
func headerTexts(tr *goquery.Selection) []string {
	var texts []string
	tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.ToUpper(collapseWhitespace(cell.Text())))
	})
	return texts
}

// hasColumn reports whether any header text contains name.
func hasColumn(texts []string, name string) bool {
	for _, t := range texts {
		if strings.Contains(t, name) {
			return true
		}
	}
	return false
}

// layoutFromHeader maps upper-cased header texts to canonical column
// positions.
func layoutFromHeader(texts []string) columnLayout {
	layout := columnLayout{week: -1, date: -1, opponent: -1, time: -1, tv: -1}
	for idx, text := range texts {
		switch {
		case strings.Contains(text, "WK") || strings.Contains(text, "WEEK"):
			layout.week = idx
		case strings.Contains(text, "DATE"):
			layout.date = idx
		case strings.Contains(text, "OPPONENT") || strings.Contains(text, "OPP"):
			layout.opponent = idx
		case strings.Contains(text, "TIME"):
			layout.time = idx
		case strings.Contains(text, "TV"):
			layout.tv = idx
		}
	}
	return layout
}
