package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Narrative lines in TW reports often cite bare stock codes
// ("外資賣超集中：0050(-48799)、2408(-14204)"). AnnotateStockNames inserts
// the company name next to each known code so the text reads without a
// lookup table. Table lines are left alone, unknown codes are left as-is.

var (
	digitRunRegex = regexp.MustCompile(`\d+`)
	// a code followed by optional whitespace and a CJK char already has a name
	nameAfterRegex = regexp.MustCompile(`^\s*[\x{4e00}-\x{9fff}]`)
	// a CJK name directly before the code, e.g. "緯穎 6669"
	cjkBeforeRegex = regexp.MustCompile(`[\x{4e00}-\x{9fff}]\s*$`)
)

// AnnotateStockNames rewrites content so every known stock code carries
// its name. Codes are 4 to 6 digit runs not adjacent to other digits.
func AnnotateStockNames(content string, names map[string]string) string {
	if len(names) == 0 {
		return content
	}
	var b strings.Builder
	for _, line := range splitKeepNL(content) {
		if isTableLine(line) {
			b.WriteString(line)
			continue
		}
		line = normalizeCodeParens(line, names)
		b.WriteString(annotateLine(line, names))
	}
	return b.String()
}

// normalizeCodeParens converts "<code>（" and "<code>(" into "<name>(<code>)",
// dropping the original paren. An ASCII paren followed by a sign or digit
// starts a numeric value ("0050(-48799)"), not a name slot, and is skipped.
func normalizeCodeParens(line string, names map[string]string) string {
	runs := digitRunRegex.FindAllStringIndex(line, -1)
	if runs == nil {
		return line
	}
	var b strings.Builder
	last := 0
	for _, run := range runs {
		start, end := run[0], run[1]
		code := line[start:end]
		if len(code) < 4 || len(code) > 6 {
			continue
		}
		name, ok := names[code]
		if !ok {
			continue
		}
		rest := line[end:]
		var parenLen int
		switch {
		case strings.HasPrefix(rest, "（"):
			parenLen = len("（")
		case strings.HasPrefix(rest, "(") && !startsNumericValue(rest[1:]):
			parenLen = 1
		default:
			continue
		}
		b.WriteString(line[last:start])
		b.WriteString(name + "(" + code + ")")
		last = end + parenLen
	}
	if last == 0 {
		return line
	}
	b.WriteString(line[last:])
	return b.String()
}

func annotateLine(line string, names map[string]string) string {
	runs := digitRunRegex.FindAllStringIndex(line, -1)
	if runs == nil {
		return line
	}
	var b strings.Builder
	last := 0
	for _, run := range runs {
		start, end := run[0], run[1]
		code := line[start:end]
		if len(code) < 4 || len(code) > 6 {
			continue
		}
		name, ok := names[code]
		if !ok {
			continue
		}
		// name already present right after the code
		if nameAfterRegex.MatchString(firstRunes(line[end:], 8)) {
			continue
		}
		// already in 名稱(代號) form
		if prev, _ := utf8.DecodeLastRuneInString(line[:start]); prev == '(' || prev == '（' {
			continue
		}
		b.WriteString(line[last:start])
		if cjkBeforeRegex.MatchString(lastRunes(line[:start], 6)) {
			// "緯穎 6669" becomes "緯穎 (6669)"
			b.WriteString("(" + code + ")")
		} else {
			b.WriteString(code + " " + name)
		}
		last = end
	}
	if last == 0 {
		return line
	}
	b.WriteString(line[last:])
	return b.String()
}

func startsNumericValue(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '+' || c == '-' || (c >= '0' && c <= '9')
}

func firstRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

func lastRunes(s string, n int) string {
	i := len(s)
	for n > 0 && i > 0 {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
		n--
	}
	return s[i:]
}
