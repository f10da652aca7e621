package addressbook

import (
	"regexp"
	"strings"
)

// PhoneLength is the number of matched characters a phone must have
const PhoneLength = 10

// phonePattern matches a digit 1-9, optionally preceded by '+' or '('
var phonePattern = regexp.MustCompile(`[+(]?[1-9]`)

// ExtractPhone applies the legacy phone rule to raw input.
//
// Every match of phonePattern counts as one character, so '0' digits are
// dropped and a "+1" or "(1" pair counts once. The phone is accepted only when
// exactly PhoneLength matches are found, and the stored value is the
// concatenation of the matches, not the raw input.
func ExtractPhone(raw string) (string, bool) {
	matches := phonePattern.FindAllString(raw, -1)
	if len(matches) != PhoneLength {
		return "", false
	}
	return strings.Join(matches, ""), true
}
