// Package naming converts identifiers between the wire-format and in-source
// spellings used by generated models.
package naming

import (
	"strings"
	"unicode"
)

// initialisms are kept upper case when producing exported Go identifiers.
var initialisms = map[string]struct{}{
	"api": {}, "html": {}, "http": {}, "https": {}, "id": {}, "ip": {},
	"json": {}, "sql": {}, "uri": {}, "url": {}, "uuid": {}, "xml": {},
}

// Tokenize splits an identifier into lower-case tokens.
// Examples:
//   - "custom_type_list" -> ["custom", "type", "list"]
//   - "customTypeList" -> ["custom", "type", "list"]
//   - "getHTTPResponse" -> ["get", "http", "response"]
func Tokenize(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// Camel returns the lowerCamelCase spelling of s, e.g. "a_string" -> "aString".
func Camel(s string) string {
	tokens := Tokenize(s)

	var b strings.Builder

	for i, t := range tokens {
		if i == 0 {
			b.WriteString(t)
			continue
		}

		b.WriteString(upperFirst(t))
	}

	return b.String()
}

// Exported returns an exported Go identifier for s, e.g. "aString" -> "AString"
// and "user_id" -> "UserID".
func Exported(s string) string {
	var b strings.Builder

	for _, t := range Tokenize(s) {
		if _, ok := initialisms[t]; ok {
			b.WriteString(strings.ToUpper(t))
			continue
		}

		b.WriteString(upperFirst(t))
	}

	return b.String()
}

// Snake returns the snake_case spelling of s, e.g. "customTypeList" ->
// "custom_type_list".
func Snake(s string) string {
	return strings.Join(Tokenize(s), "_")
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// tokenizeCamelCase splits a CamelCase, camelCase or separated string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
