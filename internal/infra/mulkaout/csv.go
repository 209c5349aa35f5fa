// Package mulkaout renders generated startlists into the files consumed by
// the Mulka timing software and by event staff: UTF-8 BOM CSV files with
// Japanese column headers, and LuaLaTeX sources for printed startlists.
package mulkaout

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/ports"
)

// utf8BOM prefixes the CSV files so Excel opens them with the right encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Writer struct {
	log zerolog.Logger
}

type Option func(*Writer)

func WithLogger(log zerolog.Logger) Option {
	return func(w *Writer) { w.log = log }
}

func New(opts ...Option) *Writer {
	w := &Writer{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var _ ports.StartlistWriter = (*Writer)(nil)

// WriteStartlistCSV writes the Mulka import startlist. Card note is レンタル
// for rentals and for anyone without a card number; everyone else runs on
// their own card.
func (w *Writer) WriteStartlistCSV(startlist []domain.StartlistEntry, path string) error {
	header := []string{
		"クラス",
		"スタートナンバー",
		"氏名１",
		"氏名2",
		"所属",
		"スタート時刻",
		"カード番号",
		"カード備考",
		"競技者登録番号",
	}

	return w.writeCSV("mulkaout.write_startlist", path, header, func(cw *csv.Writer) error {
		for _, e := range startlist {
			cardNote := "my card"
			if e.IsRental || e.CardNumber == "" {
				cardNote = "レンタル"
			}
			row := []string{
				e.ClassName,
				strconv.Itoa(e.StartNumber),
				e.Name1,
				e.Name2,
				affiliationOrDash(e.Affiliation),
				e.StartTime,
				e.CardNumber,
				cardNote,
				e.JOANumber,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteRoleStartlistCSV writes the staff check-in sheet: one name column, an
// empty チェックイン column to tick off, and a rental marker in 備考.
func (w *Writer) WriteRoleStartlistCSV(startlist []domain.StartlistEntry, path string) error {
	header := []string{
		"クラス",
		"スタートナンバー",
		"氏名",
		"所属",
		"スタート時刻",
		"カード番号",
		"チェックイン",
		"備考",
	}

	return w.writeCSV("mulkaout.write_role_startlist", path, header, func(cw *csv.Writer) error {
		for _, e := range startlist {
			note := ""
			if e.IsRental {
				note = "レンタル"
			}
			row := []string{
				e.ClassName,
				strconv.Itoa(e.StartNumber),
				e.Name1,
				affiliationOrDash(e.Affiliation),
				e.StartTime,
				e.CardNumber,
				"",
				note,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteClassSummaryCSV writes per-class competitor counts, sorted by class
// name, with a 合計 total row at the end.
func (w *Writer) WriteClassSummaryCSV(startlist []domain.StartlistEntry, path string) error {
	counts := make(map[string]int)
	for _, e := range startlist {
		if e.ClassName != "" {
			counts[e.ClassName]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	return w.writeCSV("mulkaout.write_class_summary", path, []string{"クラス", "人数"}, func(cw *csv.Writer) error {
		total := 0
		for _, name := range names {
			total += counts[name]
			if err := cw.Write([]string{name, strconv.Itoa(counts[name])}); err != nil {
				return err
			}
		}
		return cw.Write([]string{"合計", strconv.Itoa(total)})
	})
}

func (w *Writer) writeCSV(op, path string, header []string, body func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindWrite, Path: path, Err: err}
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindWrite, Path: path, Err: err}
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindWrite, Path: path, Err: err}
	}
	if err := body(cw); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindWrite, Path: path, Err: err}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindWrite, Path: path, Err: err}
	}

	w.log.Debug().Str("path", path).Msg("csv written")
	return f.Close()
}

func affiliationOrDash(affiliation string) string {
	if affiliation == "" {
		return "-"
	}
	return affiliation
}
