package joaranking

import (
	"bytes"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

type rankingRow struct {
	Rank int
	Name string
}

// extractRankingRows scans an HTML page for the ranking table: the first
// table whose header row contains both a 順位 (rank) and a 氏名 (name)
// column. Rows with a non-numeric rank cell (pagination footers, separators)
// are skipped.
func extractRankingRows(page []byte) []rankingRow {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil
	}

	for _, table := range elementsByTag(doc, "table") {
		rows := tableCells(table)
		if len(rows) < 2 {
			continue
		}

		rankCol, nameCol := -1, -1
		for i, cell := range rows[0] {
			switch strings.TrimSpace(cell) {
			case "順位":
				rankCol = i
			case "氏名":
				nameCol = i
			}
		}
		if rankCol < 0 || nameCol < 0 {
			continue
		}

		var out []rankingRow
		for _, row := range rows[1:] {
			if rankCol >= len(row) || nameCol >= len(row) {
				continue
			}
			rank, err := strconv.Atoi(strings.TrimSpace(row[rankCol]))
			if err != nil {
				continue
			}
			name := strings.TrimSpace(row[nameCol])
			if name == "" {
				continue
			}
			out = append(out, rankingRow{Rank: rank, Name: name})
		}
		if len(out) > 0 {
			return out
		}
	}

	return nil
}

func elementsByTag(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			out = append(out, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// tableCells flattens a table element into rows of cell text (th and td).
func tableCells(table *html.Node) [][]string {
	var rows [][]string
	for _, tr := range elementsByTag(table, "tr") {
		var cells []string
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
				cells = append(cells, nodeText(c))
			}
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rows
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
