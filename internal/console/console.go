// Package console implements the line-oriented contact manager session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/rcliao/contacts/internal/book"
	"github.com/rcliao/contacts/internal/model"
	"github.com/rcliao/contacts/internal/store"
)

// UI runs an interactive session.
type UI interface {
	Run(ctx context.Context) error
}

// Options configures a Console.
type Options struct {
	// Prompt enables the prompts printed before each read.
	Prompt       bool
	// AbortOnError ends the session at the first failed command instead of
	// reporting it and reading the next one.
	AbortOnError bool
	Log          *zap.Logger
}

// Console reads commands from an input stream and applies them to a
// contact list.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	contacts *book.ContactList
	storage  store.Storage
	opts     Options
	log      *zap.Logger
}

// errClosed ends the session without reporting an error.
var errClosed = errors.New("session closed")

// New returns a console reading from in and writing to out.
func New(in io.Reader, out io.Writer, contacts *book.ContactList, storage store.Storage, opts Options) *Console {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		contacts: contacts,
		storage:  storage,
		opts:     opts,
		log:      log,
	}
}

// Run processes commands until close, end of input, or a failed command
// when AbortOnError is set.
func (c *Console) Run(ctx context.Context) error {
	for {
		line, ok, err := c.read("Enter a command (add, delete, find, show, save, load, close): ")
		if err != nil {
			return err
		}
		if !ok {
			c.log.Debug("end of input")
			return nil
		}

		cmd := strings.TrimSpace(line)
		if cmd == "" {
			continue
		}

		c.log.Debug("dispatch", zap.String("command", cmd))
		err = c.dispatch(ctx, cmd)
		switch {
		case err == nil:
		case errors.Is(err, errClosed):
			return nil
		case c.opts.AbortOnError:
			c.log.Error("command failed, aborting", zap.String("command", cmd), zap.Error(err))
			return fmt.Errorf("%s: %w", cmd, err)
		default:
			c.log.Warn("command failed", zap.String("command", cmd), zap.Error(err))
			c.println("error: " + err.Error())
		}
	}
}

func (c *Console) dispatch(ctx context.Context, cmd string) error {
	switch cmd {
	case "add":
		return c.add()
	case "delete":
		return c.delete()
	case "find":
		return c.find()
	case "show":
		c.show()
		return nil
	case "save":
		return c.save(ctx)
	case "load":
		return c.load(ctx)
	case "close":
		c.println("Goodbye!")
		return errClosed
	default:
		c.println("Unknown command. Try again.")
		return nil
	}
}

func (c *Console) add() error {
	name, err := c.readField("Enter the contact name: ")
	if err != nil {
		return err
	}
	phone, err := c.readField("Enter the phone number: ")
	if err != nil {
		return err
	}
	birthday, err := c.readField("Enter the birthday (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	contact, err := buildContact(name, phone, birthday)
	if err != nil {
		return err
	}

	if !c.contacts.Add(contact) {
		c.println("Contact already exists.")
		return nil
	}
	c.log.Info("contact added", zap.String("name", contact.Name().Value()))
	c.println("Contact added!")
	return nil
}

func (c *Console) delete() error {
	name, err := c.readField("Enter the name of the contact to delete: ")
	if err != nil {
		return err
	}

	contact, ok := c.contacts.ByName(capitalize(name))
	if !ok || !c.contacts.Delete(contact) {
		c.println("Contact not found.")
		return nil
	}
	c.log.Info("contact deleted", zap.String("name", contact.Name().Value()))
	c.println("Contact deleted!")
	return nil
}

func (c *Console) find() error {
	term, err := c.readField("Enter a search term: ")
	if err != nil {
		return err
	}

	results := c.contacts.Find(term)
	if len(results) == 0 {
		c.println("No matches found.")
		return nil
	}
	c.println("Search results:")
	c.printLines(results)
	return nil
}

func (c *Console) show() {
	lines := c.contacts.List()
	if len(lines) == 0 {
		c.println("No saved contacts.")
		return
	}
	c.println("Contact list:")
	c.printLines(lines)
}

func (c *Console) save(ctx context.Context) error {
	c.println("Saving contacts to storage!")
	lines := c.contacts.List()
	if err := c.storage.Save(ctx, lines); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	c.log.Info("contacts saved", zap.Int("count", len(lines)))
	c.println(fmt.Sprintf("Saved %d contacts.", len(lines)))
	return nil
}

func (c *Console) load(ctx context.Context) error {
	lines, err := c.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if len(lines) == 0 {
		c.println("Storage is empty.")
		return nil
	}
	c.println("Contacts from storage:")
	c.printLines(lines)
	return nil
}

// buildContact validates the raw answers. Empty phone or birthday answers
// leave the field absent.
func buildContact(name, phone, birthday string) (*model.Contact, error) {
	n, err := model.NewName(capitalize(name))
	if err != nil {
		return nil, err
	}

	var p, b model.Field
	if phone != "" {
		if p, err = model.NewPhone(phone); err != nil {
			return nil, err
		}
	}
	if birthday != "" {
		if b, err = model.NewBirthday(birthday); err != nil {
			return nil, err
		}
	}
	return model.NewContact(n, p, b)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// readField reads one answer. End of input while a command waits for an
// answer is an error.
func (c *Console) readField(prompt string) (string, error) {
	line, ok, err := c.read(prompt)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) read(prompt string) (string, bool, error) {
	if c.opts.Prompt {
		fmt.Fprint(c.out, prompt)
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", false, fmt.Errorf("read input: %w", err)
		}
		return "", false, nil
	}
	return c.in.Text(), true, nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printLines(lines []string) {
	for _, l := range lines {
		fmt.Fprintln(c.out, l)
	}
}
