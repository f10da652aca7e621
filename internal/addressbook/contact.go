package addressbook

import (
	"strings"
	"time"

	"github.com/username/address-book-bot/pkg/dateutil"
)

// Contact is a single address book record
type Contact struct {
	name     string
	phone    string
	birthday *time.Time
}

func newContact(name string) *Contact {
	return &Contact{name: name}
}

// Name returns the contact name
func (c Contact) Name() string {
	return c.name
}

// Phone returns the stored phone and whether one is set
func (c Contact) Phone() (string, bool) {
	return c.phone, c.phone != ""
}

// Birthday returns the birthday and whether one is set
func (c Contact) Birthday() (time.Time, bool) {
	if c.birthday == nil {
		return time.Time{}, false
	}
	return *c.birthday, true
}

func (c *Contact) setBirthday(date time.Time) {
	c.birthday = &date
}

// String renders the contact as a line of the "all" listing.
// Birthday and phone segments are left out when unset.
func (c Contact) String() string {
	var sb strings.Builder
	sb.WriteString("Contact name: ")
	sb.WriteString(c.name)
	if birthday, ok := c.Birthday(); ok {
		sb.WriteString(", birthday: ")
		sb.WriteString(dateutil.FormatDate(birthday))
	}
	if c.phone != "" {
		sb.WriteString(", phone: ")
		sb.WriteString(c.phone)
	}
	return sb.String()
}
