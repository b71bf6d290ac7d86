package stego

import "strings"

type substitution struct {
	char  string
	token string
}

// Tokens hold only lowercase letters, so escaping never introduces a reserved
// character.
var substitutions = []substitution{
	{"1", "xxxsxdxonexxxsxdx"}, {"2", "xxxsxdxtwoxxxsxdx"}, {"3", "xxxsxdxthreexxxsxdx"},
	{"4", "xxxsxdxfourxxxsxdx"}, {"5", "xxxsxdxfivexxxsxdx"}, {"6", "xxxsxdxsixxxxsxdx"},
	{"7", "xxxsxdxsevenxxxsxdx"}, {"8", "xxxsxdxeightxxxsxdx"}, {"9", "xxxsxdxninexxxsxdx"},
	{"0", "xxxsxdxzeroxxxsxdx"}, {"`", "xxxsxdxgravexxxsxdx"}, {"~", "xxxsxdxtildexxxsxdx"},
	{"!", "xxxsxdxexclamxxxsxdx"}, {"@", "xxxsxdxatxxxsxdx"}, {"#", "xxxsxdxhashtagxxxsxdx"},
	{"$", "xxxsxdxdollarxxxsxdx"}, {"%", "xxxsxdxpercxxxsxdx"}, {"^", "xxxsxdxcircumxxxsxdx"},
	{"&", "xxxsxdxandxxxsxdx"}, {"*", "xxxsxdxasteriskxxxsxdx"}, {"(", "xxxsxdxlparenxxxsxdx"},
	{")", "xxxsxdxrparenxxxsxdx"}, {"-", "xxxsxdxdashxxxsxdx"}, {"_", "xxxsxdxunderxxxsxdx"},
	{"=", "xxxsxdxequalxxxsxdx"}, {"+", "xxxsxdxplusxxxsxdx"}, {"[", "xxxsxdxlbracketxxxsxdx"},
	{"]", "xxxsxdxrbracketxxxsxdx"}, {"{", "xxxsxdxlcurlxxxsxdx"}, {"}", "xxxsxdxrcurlxxxsxdx"},
	{"\\", "xxxsxdxlslashxxxsxdx"}, {"|", "xxxsxdxstraightxxxsxdx"}, {"/", "xxxsxdxrslashxxxsxdx"},
	{"?", "xxxsxdxquestxxxsxdx"}, {";", "xxxsxdxsemixxxsxdx"}, {":", "xxxsxdxcolonxxxsxdx"},
	{"<", "xxxsxdxlarrowxxxsxdx"}, {">", "xxxsxdxrarrowxxxsxdx"}, {",", "xxxsxdxcommaxxxsxdx"},
	{".", "xxxsxdxperiodxxxsxdx"}, {"'", "xxxsxdxquotexxxsxdx"}, {"\"", "xxxsxdxdquotexxxsxdx"},
}

// reserved holds every character Escape replaces.
var reserved = func() string {
	var sb strings.Builder
	for _, s := range substitutions {
		sb.WriteString(s.char)
	}
	return sb.String()
}()

var (
	escaper   = newReplacer(func(s substitution) (string, string) { return s.char, s.token })
	unescaper = newReplacer(func(s substitution) (string, string) { return s.token, s.char })
)

// newReplacer builds a single-pass replacer over the table. Matches are taken
// leftmost first and never overlap, so a token cannot be read across the
// boundary of two neighbouring tokens.
func newReplacer(pair func(substitution) (string, string)) *strings.Replacer {
	oldnew := make([]string, 0, 2*len(substitutions))
	for _, s := range substitutions {
		from, to := pair(s)
		oldnew = append(oldnew, from, to)
	}
	return strings.NewReplacer(oldnew...)
}

// Escape replaces every reserved character in text with its token.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Unescape reverses Escape.
func Unescape(text string) string {
	return unescaper.Replace(text)
}
