package mulkaout

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
)

func sampleStartlist() []domain.StartlistEntry {
	return []domain.StartlistEntry{
		{
			ClassName:   "M21A1",
			StartNumber: 100,
			Name1:       "山田 太郎",
			Name2:       "やまだ たろう",
			Affiliation: "某クラブ",
			StartTime:   "11:00:00",
			CardNumber:  "1234567",
			JOANumber:   "123-45-678",
		},
		{
			ClassName:   "M21A1",
			StartNumber: 101,
			Name1:       "鈴木 花子",
			Name2:       "すずき はなこ",
			Affiliation: "",
			StartTime:   "11:02:00",
			CardNumber:  "",
			IsRental:    true,
		},
		{
			ClassName:   "W21A",
			StartNumber: 200,
			Name1:       "佐藤 次郎",
			Name2:       "さとう じろう",
			Affiliation: "別クラブ",
			StartTime:   "11:00:00",
			CardNumber:  "7654321",
		},
	}
}

// readBOMCSV reads a CSV output file back, checking and stripping the UTF-8
// BOM.
func readBOMCSV(t *testing.T, path string) [][]string {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if !bytes.HasPrefix(raw, utf8BOM) {
		t.Fatalf("%s does not start with a UTF-8 BOM", path)
	}

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM))).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return rows
}

func TestWriteStartlistCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Startlist.csv")
	if err := New().WriteStartlistCSV(sampleStartlist(), path); err != nil {
		t.Fatalf("WriteStartlistCSV: %v", err)
	}

	rows := readBOMCSV(t, path)
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want header + 3 entries", len(rows))
	}

	wantHeader := []string{"クラス", "スタートナンバー", "氏名１", "氏名2", "所属", "スタート時刻", "カード番号", "カード備考", "競技者登録番号"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	first := rows[1]
	if first[0] != "M21A1" || first[1] != "100" || first[5] != "11:00:00" {
		t.Errorf("first row = %v", first)
	}
	if first[7] != "my card" {
		t.Errorf("card note = %q, want my card", first[7])
	}

	rental := rows[2]
	if rental[7] != "レンタル" {
		t.Errorf("rental card note = %q, want レンタル", rental[7])
	}
	if rental[4] != "-" {
		t.Errorf("empty affiliation = %q, want -", rental[4])
	}
}

func TestWriteStartlistCSVMissingCardIsRental(t *testing.T) {
	startlist := []domain.StartlistEntry{
		{ClassName: "M21A", StartNumber: 1, Name1: "x", StartTime: "10:00:00", CardNumber: "", IsRental: false},
	}
	path := filepath.Join(t.TempDir(), "Startlist.csv")
	if err := New().WriteStartlistCSV(startlist, path); err != nil {
		t.Fatalf("WriteStartlistCSV: %v", err)
	}

	rows := readBOMCSV(t, path)
	if rows[1][7] != "レンタル" {
		t.Fatalf("card note = %q, want レンタル for missing card number", rows[1][7])
	}
}

func TestWriteRoleStartlistCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Role_Startlist.csv")
	if err := New().WriteRoleStartlistCSV(sampleStartlist(), path); err != nil {
		t.Fatalf("WriteRoleStartlistCSV: %v", err)
	}

	rows := readBOMCSV(t, path)
	wantHeader := []string{"クラス", "スタートナンバー", "氏名", "所属", "スタート時刻", "カード番号", "チェックイン", "備考"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	if rows[1][6] != "" {
		t.Errorf("check-in column = %q, want empty", rows[1][6])
	}
	if rows[1][7] != "" {
		t.Errorf("own-card note = %q, want empty", rows[1][7])
	}
	if rows[2][7] != "レンタル" {
		t.Errorf("rental note = %q, want レンタル", rows[2][7])
	}
}

func TestWriteClassSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Class_Summary.csv")
	if err := New().WriteClassSummaryCSV(sampleStartlist(), path); err != nil {
		t.Fatalf("WriteClassSummaryCSV: %v", err)
	}

	rows := readBOMCSV(t, path)
	want := [][]string{
		{"クラス", "人数"},
		{"M21A1", "2"},
		{"W21A", "1"},
		{"合計", "3"},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}
	for i := range want {
		if rows[i][0] != want[i][0] || rows[i][1] != want[i][1] {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestWriteCSVUnwritablePath(t *testing.T) {
	err := New().WriteStartlistCSV(sampleStartlist(), filepath.Join(t.TempDir(), "no-such-dir", "out.csv"))
	if err == nil {
		t.Fatal("want error for unwritable path")
	}
	if !domain.IsKind(err, domain.KindWrite) {
		t.Fatalf("err = %v, want kind write", err)
	}
}
