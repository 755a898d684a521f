package domain

import "testing"

var testNames = map[string]string{
	"0050": "元大台灣50",
	"2330": "台積電",
	"2357": "華碩",
	"2408": "南亞科",
	"6669": "緯穎",
}

func TestAnnotateStockNames_BareCodes(t *testing.T) {
	got := AnnotateStockNames("外資買超集中：2330、0050。\n", testNames)

	want := "外資買超集中：2330 台積電、0050 元大台灣50。\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAnnotateStockNames_UnknownCodeLeftAlone(t *testing.T) {
	in := "持續觀察 9999 的表現。\n"
	if got := AnnotateStockNames(in, testNames); got != in {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestAnnotateStockNames_NameAlreadyAfter(t *testing.T) {
	in := "2330 台積電再創新高。\n"
	if got := AnnotateStockNames(in, testNames); got != in {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestAnnotateStockNames_AlreadyParenthesized(t *testing.T) {
	in := "台積電(2330) 領漲。\n"
	if got := AnnotateStockNames(in, testNames); got != in {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestAnnotateStockNames_NameBeforeCode(t *testing.T) {
	got := AnnotateStockNames("留意緯穎 6669", testNames)

	want := "留意緯穎 (6669)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAnnotateStockNames_FullwidthParen(t *testing.T) {
	got := AnnotateStockNames("2357（看多）", testNames)

	want := "華碩(2357)看多）"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAnnotateStockNames_AsciiParenValueGuard(t *testing.T) {
	// "(" starting a numeric value is not a name slot
	got := AnnotateStockNames("外資賣超集中：0050(-48799)\n", testNames)

	want := "外資賣超集中：0050 元大台灣50(-48799)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAnnotateStockNames_SkipsTables(t *testing.T) {
	in := "| 2330 | 1000 |\n| 0050 | 50 |\n"
	if got := AnnotateStockNames(in, testNames); got != in {
		t.Errorf("table lines must stay untouched, got %q", got)
	}
}

func TestAnnotateStockNames_IgnoresLongDigitRuns(t *testing.T) {
	in := "20260129 盤後更新\n"
	if got := AnnotateStockNames(in, testNames); got != in {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestAnnotateStockNames_MixedDocument(t *testing.T) {
	in := "## 2026-01-29 (Thu)\n\n" +
		"外資動向：2408、台積電(2330)。\n\n" +
		"| 代號 | 收盤 |\n| 2408 | 80 |\n"

	got := AnnotateStockNames(in, testNames)

	want := "## 2026-01-29 (Thu)\n\n" +
		"外資動向：2408 南亞科、台積電(2330)。\n\n" +
		"| 代號 | 收盤 |\n| 2408 | 80 |\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
