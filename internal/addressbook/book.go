package addressbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/address-book-bot/pkg/dateutil"
	"go.uber.org/zap"
)

// EmptyListing is returned by All when the book has no contacts
const EmptyListing = "Data is empty, nothing to show"

// Book stores contacts by name, remembering insertion order
type Book struct {
	contacts map[string]*Contact
	order    []string
	logger   *zap.Logger
}

// NewBook creates an empty address book
func NewBook(logger *zap.Logger) *Book {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Book{
		contacts: make(map[string]*Contact),
		logger:   logger,
	}
}

// Len returns the number of contacts
func (b *Book) Len() int {
	return len(b.order)
}

// Add creates or replaces the contact for name with the given phone
func (b *Book) Add(name, rawPhone string) (string, error) {
	phone, ok := ExtractPhone(rawPhone)
	if !ok {
		return "", &Error{Kind: KindInvalidPhone, Name: name, Value: rawPhone}
	}

	if _, exists := b.contacts[name]; !exists {
		b.order = append(b.order, name)
	}
	contact := newContact(name)
	contact.phone = phone
	b.contacts[name] = contact

	b.logger.Debug("Contact added",
		zap.String("name", name),
		zap.String("phone", phone))

	return fmt.Sprintf("Contact: %s : %s added", name, phone), nil
}

// ChangePhone overwrites the phone of an existing contact
func (b *Book) ChangePhone(name, rawPhone string) (string, error) {
	phone, ok := ExtractPhone(rawPhone)
	if !ok {
		return "", &Error{Kind: KindInvalidPhone, Name: name, Value: rawPhone}
	}

	contact, ok := b.contacts[name]
	if !ok {
		return "", notFound(name)
	}
	contact.phone = phone

	b.logger.Debug("Phone changed",
		zap.String("name", name),
		zap.String("phone", phone))

	return fmt.Sprintf("Contact: %s : %s changed", name, phone), nil
}

// Phone returns the stored phone of a contact
func (b *Book) Phone(name string) (string, error) {
	contact, ok := b.contacts[name]
	if !ok {
		return "", notFound(name)
	}
	phone, ok := contact.Phone()
	if !ok {
		return "", &Error{Kind: KindNoPhone, Name: name}
	}
	return phone, nil
}

// Find returns a copy of the contact stored under name
func (b *Book) Find(name string) (Contact, error) {
	contact, ok := b.contacts[name]
	if !ok {
		return Contact{}, notFound(name)
	}
	return *contact, nil
}

// Contacts returns copies of all contacts in insertion order
func (b *Book) Contacts() []Contact {
	result := make([]Contact, 0, len(b.order))
	for _, name := range b.order {
		result = append(result, *b.contacts[name])
	}
	return result
}

// All renders one line per contact, or EmptyListing if there are none
func (b *Book) All() string {
	if len(b.order) == 0 {
		return EmptyListing
	}

	lines := make([]string, 0, len(b.order))
	for _, contact := range b.Contacts() {
		lines = append(lines, contact.String())
	}
	return strings.Join(lines, "\n")
}

// AddBirthday sets the birthday of an existing contact from a DD.MM.YYYY string
func (b *Book) AddBirthday(name, rawDate string) (string, error) {
	date, err := dateutil.ParseDate(rawDate)
	if err != nil {
		b.logger.Debug("Birthday rejected",
			zap.String("name", name),
			zap.Error(err))
		return "", &Error{Kind: KindInvalidDate, Name: name, Value: rawDate}
	}

	contact, ok := b.contacts[name]
	if !ok {
		return "", notFound(name)
	}
	contact.setBirthday(date)

	b.logger.Debug("Birthday added",
		zap.String("name", name),
		zap.Time("birthday", date))

	return fmt.Sprintf("Birthday for %s : %s added", name, dateutil.FormatDate(date)), nil
}

// ShowBirthday returns the birthday of a contact as DD.MM.YYYY
func (b *Book) ShowBirthday(name string) (string, error) {
	contact, ok := b.contacts[name]
	if !ok {
		return "", notFound(name)
	}
	birthday, ok := contact.Birthday()
	if !ok {
		return "", &Error{Kind: KindNoBirthday, Name: name}
	}
	return dateutil.FormatDate(birthday), nil
}

// Delete removes a contact and returns it
func (b *Book) Delete(name string) (Contact, error) {
	contact, ok := b.contacts[name]
	if !ok {
		return Contact{}, notFound(name)
	}

	delete(b.contacts, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	b.logger.Debug("Contact deleted", zap.String("name", name))

	return *contact, nil
}

// Birthdays returns the contacts that have a birthday, in insertion order
func (b *Book) Birthdays() []BirthdayEntry {
	var entries []BirthdayEntry
	for _, name := range b.order {
		if birthday, ok := b.contacts[name].Birthday(); ok {
			entries = append(entries, BirthdayEntry{Name: name, Birthday: birthday})
		}
	}
	return entries
}

// UpcomingBirthdays runs the birthday window over the book's contacts
func (b *Book) UpcomingBirthdays(today time.Time) (string, error) {
	return UpcomingBirthdays(today, b.Birthdays())
}
