package bot

import (
	"strings"

	"github.com/username/address-book-bot/internal/addressbook"
)

// ParseInput splits a line into a lower-cased command and its arguments
func ParseInput(line string) (string, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, &addressbook.Error{Kind: addressbook.KindMissingCommand}
	}
	return strings.ToLower(fields[0]), fields[1:], nil
}
