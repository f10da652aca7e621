package addressbook

import (
	"errors"
	"fmt"

	"github.com/username/address-book-bot/pkg/dateutil"
)

// Kind classifies an address book failure
type Kind int

const (
	KindWrongArity Kind = iota + 1
	KindNameNotFound
	KindEmptyBirthdayList
	KindMissingCommand
	KindInvalidPhone
	KindInvalidDate
	KindNoPhone
	KindNoBirthday
	KindUnknownCommand
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindWrongArity:
		return "wrong_arity"
	case KindNameNotFound:
		return "name_not_found"
	case KindEmptyBirthdayList:
		return "empty_birthday_list"
	case KindMissingCommand:
		return "missing_command"
	case KindInvalidPhone:
		return "invalid_phone"
	case KindInvalidDate:
		return "invalid_date"
	case KindNoPhone:
		return "no_phone"
	case KindNoBirthday:
		return "no_birthday"
	case KindUnknownCommand:
		return "unknown_command"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by every fallible address book operation.
// Its message is meant to be shown to the user as is.
type Error struct {
	Kind  Kind
	Name  string // contact name, if any
	Value string // rejected input, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindWrongArity:
		return "Please use correct number of arguments"
	case KindNameNotFound:
		return "Name is not present in address book"
	case KindEmptyBirthdayList:
		return "Empty birthday list"
	case KindMissingCommand:
		return "Please add command"
	case KindInvalidPhone:
		return fmt.Sprintf("Phone: %s is not correct it should contain %d digits", e.Value, PhoneLength)
	case KindInvalidDate:
		return fmt.Sprintf("Please use correct date format %s, instead of %s", dateutil.DateLayoutHint, e.Value)
	case KindNoPhone:
		return fmt.Sprintf("Phone for %s is not set", e.Name)
	case KindNoBirthday:
		return fmt.Sprintf("Birthday for %s is not set", e.Name)
	case KindUnknownCommand:
		return "Invalid command."
	default:
		return "Unknown address book error"
	}
}

// Is matches errors of the same kind, so errors.Is(err, &Error{Kind: KindNameNotFound}) works
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of err, or 0 if err is not an address book error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func notFound(name string) error {
	return &Error{Kind: KindNameNotFound, Name: name}
}
