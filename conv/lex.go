package conv

import (
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	comaTerminatorToken
	singleQuotedToken
	doubleQuotedToken
)

var (
	whitespaceMatcher     = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	comaTerminatorMatcher = parsly.NewToken(comaTerminatorToken, "coma", matcher.NewTerminator(',', true))
	singleQuotedMatcher   = parsly.NewToken(singleQuotedToken, "' .... '", matcher.NewQuote('\'', '\\'))
	doubleQuotedMatcher   = parsly.NewToken(doubleQuotedToken, `" .... "`, matcher.NewQuote('"', '\\'))
)

// matchElement returns next coma separated element, quoted elements are returned without quotes
func matchElement(cursor *parsly.Cursor) string {
	value := ""
	match := cursor.MatchAfterOptional(whitespaceMatcher, singleQuotedMatcher, doubleQuotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case singleQuotedToken, doubleQuotedToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAfterOptional(whitespaceMatcher, comaTerminatorMatcher)
		return value
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	return strings.TrimSpace(value)
}
