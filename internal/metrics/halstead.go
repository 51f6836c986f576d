package metrics

import "strings"

// operatorSet is the fixed punctuation-only operator alphabet from spec
// §4.3. Multi-character operators (&&, ===, =>, ...) are intentionally
// counted as their constituent single characters -- this is the
// simplification the spec's formula calls for, not an oversight.
var operatorSet = map[byte]bool{
	'(': true, ')': true, '[': true, ']': true, '{': true, '}': true,
	'.': true, ',': true, ';': true,
	'+': true, '-': true, '*': true, '/': true, '%': true,
	'&': true, '|': true, '^': true, '!': true,
	'=': true, '<': true, '>': true, '?': true, ':': true, '~': true,
}

const stringPlaceholder = "\x00QSTR\x00"

// HalsteadVolume computes spec §4.3's HV over source: strip comments,
// normalize every string literal to the single operand token "string",
// then partition what remains into operators (the fixed punctuation set)
// and operands (everything else that isn't whitespace), per the classic
// Halstead n1/n2/N1/N2 volume formula. Minimum 1.
func HalsteadVolume(source []byte) float64 {
	stripped := stripComments(string(source))
	normalized := normalizeStrings(stripped)

	distinctOperators := make(map[byte]bool)
	distinctOperands := make(map[string]bool)
	totalOperators, totalOperands := 0, 0

	var operand strings.Builder
	flushOperand := func() {
		if operand.Len() == 0 {
			return
		}
		text := operand.String()
		operand.Reset()
		if text == stringPlaceholder {
			text = `"string"`
		}
		distinctOperands[text] = true
		totalOperands++
	}

	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		switch {
		case isWordChar(c):
			operand.WriteByte(c)
		case c == stringPlaceholder[0] && strings.HasPrefix(normalized[i:], stringPlaceholder):
			flushOperand()
			operand.WriteString(stringPlaceholder)
			flushOperand()
			i += len(stringPlaceholder) - 1
		case operatorSet[c]:
			flushOperand()
			distinctOperators[c] = true
			totalOperators++
		default:
			flushOperand()
		}
	}
	flushOperand()

	n1, n2 := len(distinctOperators), len(distinctOperands)
	hv := float64(totalOperators+totalOperands) * log2(float64(n1+n2))
	if hv < 1 {
		hv = 1
	}
	return hv
}

func isWordChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// stripComments removes // line comments and /* */ block comments,
// replacing their content with spaces so column positions of the
// surrounding code are preserved (not that this matters downstream, but
// it keeps the intermediate string debuggable).
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	inLine, inBlock, inString := false, false, byte(0)

	for i := 0; i < len(src); i++ {
		c := src[i]

		if inLine {
			if c == '\n' {
				inLine = false
				b.WriteByte(c)
			} else {
				b.WriteByte(' ')
			}
			continue
		}
		if inBlock {
			if c == '*' && i+1 < len(src) && src[i+1] == '/' {
				inBlock = false
				b.WriteString("  ")
				i++
				continue
			}
			if c == '\n' {
				b.WriteByte(c)
			} else {
				b.WriteByte(' ')
			}
			continue
		}
		if inString != 0 {
			b.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				i++
				b.WriteByte(src[i])
				continue
			}
			if c == inString {
				inString = 0
			}
			continue
		}

		if c == '/' && i+1 < len(src) && src[i+1] == '/' {
			inLine = true
			b.WriteString("  ")
			i++
			continue
		}
		if c == '/' && i+1 < len(src) && src[i+1] == '*' {
			inBlock = true
			b.WriteString("  ")
			i++
			continue
		}
		if c == '"' || c == '\'' || c == '`' {
			inString = c
			b.WriteByte(c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// normalizeStrings replaces every quoted string literal in src (already
// comment-stripped) with the single placeholder token stringPlaceholder.
func normalizeStrings(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); i++ {
		c := src[i]
		if c != '"' && c != '\'' && c != '`' {
			b.WriteByte(c)
			continue
		}
		quote := c
		j := i + 1
		for j < len(src) {
			if src[j] == '\\' && j+1 < len(src) {
				j += 2
				continue
			}
			if src[j] == quote {
				j++
				break
			}
			j++
		}
		b.WriteString(stringPlaceholder)
		i = j - 1
	}
	return b.String()
}
