package joyroster

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// JOY exports carry two header rows: a group row (申込代表者 / チーム(組) /
// 1人目 / 2人目 / …) and a column-name row inside each group. Column positions
// vary between exports, so they are located by name rather than fixed index.

var participantHeader = regexp.MustCompile(`^(\d+)人目`)

type participantColumns struct {
	name1      int
	name2      int
	gender     int
	cardNumber int
	joaNumber  int
}

type columnIndex struct {
	class        int
	affiliation  int
	teamName     int
	rentalCount  int
	participants []participantColumns
}

func noParticipantColumns() participantColumns {
	return participantColumns{name1: -1, name2: -1, gender: -1, cardNumber: -1, joaNumber: -1}
}

// findColumns resolves field positions from the two header rows.
func findColumns(headerRow, nameRow []string) columnIndex {
	idx := columnIndex{class: -1, affiliation: -1, teamName: -1, rentalCount: -1}

	teamStart := -1
	for i, h := range headerRow {
		if strings.Contains(h, "チーム") || strings.Contains(h, "組") {
			teamStart = i
			break
		}
	}

	starts := map[int]int{} // participant slot -> first column
	for i, h := range headerRow {
		if m := participantHeader.FindStringSubmatch(normalizeWhitespace(h)); m != nil {
			n, _ := strconv.Atoi(m[1])
			if _, ok := starts[n]; !ok {
				starts[n] = i
			}
		}
	}

	firstParticipant := len(nameRow)
	for _, col := range starts {
		if col < firstParticipant {
			firstParticipant = col
		}
	}

	for i, raw := range nameRow {
		if teamStart < 0 || i < teamStart || i >= firstParticipant {
			continue
		}
		switch normalizeWhitespace(raw) {
		case "クラス":
			idx.class = i
		case "所属":
			idx.affiliation = i
		case "チーム名(氏名)":
			idx.teamName = i
		case "カードレンタル枚数":
			idx.rentalCount = i
		}
	}

	slots := make([]int, 0, len(starts))
	for n := range starts {
		slots = append(slots, n)
	}
	sort.Ints(slots)

	for _, n := range slots {
		start := starts[n]
		end := len(nameRow)
		for _, m := range slots {
			if starts[m] > start && starts[m] < end {
				end = starts[m]
			}
		}

		pc := noParticipantColumns()
		for i := start; i < end && i < len(nameRow); i++ {
			switch normalizeWhitespace(nameRow[i]) {
			case "氏名1":
				pc.name1 = i
			case "氏名2":
				pc.name2 = i
			case "性別":
				pc.gender = i
			case "カード番号":
				pc.cardNumber = i
			case "JOA競技者番号":
				pc.joaNumber = i
			}
		}
		idx.participants = append(idx.participants, pc)
	}

	return idx
}
