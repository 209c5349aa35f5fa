// Package joyroster parses JapanO-Entry (JOY) entry-list exports: a CSV or
// TSV file with two header rows and up to five participants per data row.
package joyroster

import (
	"encoding/csv"
	"errors"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/ports"
)

type Parser struct {
	log zerolog.Logger
}

type Option func(*Parser)

func WithLogger(log zerolog.Logger) Option {
	return func(p *Parser) { p.log = log }
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ ports.RosterSource = (*Parser)(nil)

// ParseRoster reads and decodes the entry list at path and returns one entry
// per participant. Rows without a class name (including 〃 continuation
// markers) are skipped so every returned entry satisfies the non-empty class
// guarantee.
func (p *Parser) ParseRoster(path string) ([]domain.Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "joyroster.parse",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	text := decodeRoster(raw)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &domain.OpError{
			Op:   "joyroster.parse",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	if len(rows) < 3 {
		return nil, &domain.OpError{
			Op:   "joyroster.parse",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  errEntryListTooShort,
		}
	}

	idx := findColumns(rows[0], rows[1])

	var entries []domain.Entry
	for i, row := range rows[2:] {
		rowNum := i + 3
		if isBlankRow(row) {
			continue
		}

		className := cell(row, idx.class)
		if className == "" || className == "〃" {
			p.log.Debug().Int("row", rowNum).Msg("row without class name skipped")
			continue
		}

		affiliation := cell(row, idx.affiliation)
		rentalCount := p.parseRentalCount(cell(row, idx.rentalCount), rowNum)

		for slot, pc := range idx.participants {
			name1 := cell(row, pc.name1)
			if name1 == "" {
				continue // empty participant slot
			}

			cardNumber := cell(row, pc.cardNumber)
			entries = append(entries, domain.Entry{
				ClassName:         className,
				Name1:             name1,
				Name2:             cell(row, pc.name2),
				Affiliation:       cleanAffiliation(affiliation),
				Affiliations:      parseAffiliation(affiliation),
				CardNumber:        cardNumber,
				JOANumber:         cell(row, pc.joaNumber),
				IsRental:          rentalCount > 0 && cardNumber == "",
				Gender:            cell(row, pc.gender),
				RowNumber:         rowNum,
				ParticipantNumber: slot + 1,
			})
		}
	}

	p.log.Info().Str("path", path).Int("entries", len(entries)).Msg("roster parsed")
	return entries, nil
}

// parseRentalCount treats an unparseable rental count as zero; that is a data
// quality warning, not a parse failure.
func (p *Parser) parseRentalCount(value string, rowNum int) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		p.log.Warn().Int("row", rowNum).Str("value", value).Msg("unparseable rental count, assuming 0")
		return 0
	}
	return n
}

var errEntryListTooShort = errors.New("entry list must have at least 3 rows (2 header rows + data)")

var affiliationSeparators = regexp.MustCompile(`[/,、]`)
var trailingDigits = regexp.MustCompile(`\d+$`)

func isPlaceholder(s string) bool {
	switch s {
	case "", "-", "−", "―":
		return true
	}
	return false
}

func cleanAffiliation(affiliation string) string {
	if isPlaceholder(affiliation) {
		return ""
	}
	return affiliation
}

// parseAffiliation splits a raw affiliation cell into individual club names:
// "東大OLK / 早大OC" lists two memberships, and a trailing digit run is team
// numbering, not part of the club name.
func parseAffiliation(affiliation string) []string {
	if isPlaceholder(affiliation) {
		return nil
	}

	var out []string
	for _, part := range affiliationSeparators.Split(affiliation, -1) {
		part = normalizeWhitespace(part)
		if isPlaceholder(part) {
			continue
		}
		part = strings.TrimSpace(trailingDigits.ReplaceAllString(part, ""))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return normalizeWhitespace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// detectDelimiter picks tab or comma based on which occurs more often in the
// first line.
func detectDelimiter(text string) rune {
	firstLine, _, _ := strings.Cut(text, "\n")
	if strings.Count(firstLine, "\t") > strings.Count(firstLine, ",") {
		return '\t'
	}
	return ','
}
