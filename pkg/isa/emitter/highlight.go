package emitter

import (
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	colorKeyword   = color.New(color.FgMagenta, color.Bold)
	colorType      = color.New(color.FgCyan)
	colorMacro     = color.New(color.FgBlue)
	colorFunction  = color.New(color.FgHiYellow)
	colorString    = color.New(color.FgGreen)
	colorNumber    = color.New(color.FgYellow)
	colorComment   = color.New(color.FgHiBlack)
	colorDirective = color.New(color.FgBlue, color.Bold)
)

var cKeywords = wordSet("break case const default do else enum extern for if inline return sizeof static struct switch typedef union while")

var cTypes = wordSet("void char short int long signed unsigned bool float double NULL")

// Tokens of the generated code. Alternatives are tried in order, so comments and strings hide whatever they contain
var cToken = regexp.MustCompile(`(?P<comment>//[^\n]*|(?s:/\*.*?\*/))` +
	`|(?P<directive>(?m:^[ \t]*#[ \t]*\w+))` +
	`|(?P<string>"(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*')` +
	`|(?P<number>\b(?:0[xX][0-9a-fA-F]+|[0-9]+)[uUlL]*\b)` +
	`|(?P<word>\b[A-Za-z_][A-Za-z0-9_]*\b)`)

func wordSet(words string) map[string]bool {
	set := make(map[string]bool)

	for _, word := range strings.Fields(words) {
		set[word] = true
	}

	return set
}

func wordColor(word string, rest string) *color.Color {
	switch {
	case cKeywords[word]:
		return colorKeyword
	case cTypes[word] || strings.HasSuffix(word, "_t"):
		return colorType
	case strings.HasPrefix(word, "ISA_") || (strings.ToUpper(word) == word && strings.Contains(word, "_")):
		return colorMacro
	case strings.HasPrefix(strings.TrimLeft(rest, " \t"), "("):
		return colorFunction
	}

	return nil
}

// Returns the color of a token, nil if it is written as is
func tokenColor(code string, match []int) *color.Color {
	for i, name := range cToken.SubexpNames() {
		if i == 0 || match[2*i] < 0 {
			continue
		}

		switch name {
		case "comment":
			return colorComment
		case "directive":
			return colorDirective
		case "string":
			return colorString
		case "number":
			return colorNumber
		case "word":
			return wordColor(code[match[2*i]:match[2*i+1]], code[match[1]:])
		}
	}

	return nil
}

// Writes C code highlighted with terminal colors. With colors disabled (see color.NoColor) the code is written unchanged
func Highlight(w io.Writer, code string) error {
	var builder strings.Builder
	last := 0

	for _, match := range cToken.FindAllStringSubmatchIndex(code, -1) {
		builder.WriteString(code[last:match[0]])

		if c := tokenColor(code, match); c != nil {
			builder.WriteString(c.Sprint(code[match[0]:match[1]]))
		} else {
			builder.WriteString(code[match[0]:match[1]])
		}

		last = match[1]
	}

	builder.WriteString(code[last:])

	_, err := io.WriteString(w, builder.String())
	return err
}
