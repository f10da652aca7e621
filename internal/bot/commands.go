package bot

import (
	"fmt"

	"github.com/username/address-book-bot/internal/addressbook"
)

const (
	greeting = "How can I help you?"
	farewell = "Good bye!"
)

// anyArgs disables the argument count check
const anyArgs = -1

type handlerFunc func(b *Bot, args []string) (string, error)

type command struct {
	arity   int
	handler handlerFunc
	quit    bool
}

var commands = map[string]command{
	"hello":         {arity: anyArgs, handler: hello},
	"close":         {arity: anyArgs, handler: goodbye, quit: true},
	"exit":          {arity: anyArgs, handler: goodbye, quit: true},
	"add":           {arity: 2, handler: add},
	"change":        {arity: 2, handler: change},
	"phone":         {arity: 1, handler: phone},
	"all":           {arity: 0, handler: all},
	"add-birthday":  {arity: 2, handler: addBirthday},
	"show-birthday": {arity: 1, handler: showBirthday},
	"birthdays":     {arity: 0, handler: birthdays},
	"delete":        {arity: 1, handler: deleteContact},
}

func hello(_ *Bot, _ []string) (string, error) {
	return greeting, nil
}

func goodbye(_ *Bot, _ []string) (string, error) {
	return farewell, nil
}

func add(b *Bot, args []string) (string, error) {
	return b.book.Add(args[0], args[1])
}

func change(b *Bot, args []string) (string, error) {
	return b.book.ChangePhone(args[0], args[1])
}

func phone(b *Bot, args []string) (string, error) {
	return b.book.Phone(args[0])
}

func all(b *Bot, _ []string) (string, error) {
	return b.book.All(), nil
}

func addBirthday(b *Bot, args []string) (string, error) {
	return b.book.AddBirthday(args[0], args[1])
}

func showBirthday(b *Bot, args []string) (string, error) {
	return b.book.ShowBirthday(args[0])
}

func birthdays(b *Bot, _ []string) (string, error) {
	return b.book.UpcomingBirthdays(b.now())
}

func deleteContact(b *Bot, args []string) (string, error) {
	contact, err := b.book.Delete(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s deleted", contact.Name()), nil
}

func lookup(name string, args []string) (command, error) {
	cmd, ok := commands[name]
	if !ok {
		return command{}, &addressbook.Error{Kind: addressbook.KindUnknownCommand, Value: name}
	}
	if cmd.arity != anyArgs && len(args) != cmd.arity {
		return command{}, &addressbook.Error{Kind: addressbook.KindWrongArity, Value: name}
	}
	return cmd, nil
}
