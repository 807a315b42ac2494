package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/user-directory-console/internal/coordinator"
	"github.com/user-directory-console/internal/models"
)

// Console maps typed commands onto coordinator intents and renders the
// resulting state. All output goes through the configured writer so tests can
// capture it.
type Console struct {
	coord *coordinator.Coordinator
	out   io.Writer
}

// NewConsole creates a console around a coordinator.
func NewConsole(coord *coordinator.Coordinator, out io.Writer) *Console {
	return &Console{coord: coord, out: out}
}

// Run reads commands line by line until quit or EOF.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(c.out, "User directory console. Type 'help' for commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		if quit := c.Dispatch(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Dispatch executes one command line and reports whether the console should
// exit.
func (c *Console) Dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	command, args := fields[0], fields[1:]

	switch command {
	case "help":
		c.printHelp()
	case "set":
		c.cmdSet(args)
	case "form":
		c.renderForm()
	case "submit":
		c.cmdSubmit(ctx)
	case "edit":
		c.cmdEdit(args)
	case "cancel":
		c.coord.CancelEdit()
		fmt.Fprintln(c.out, "Edit cancelled.")
	case "list":
		c.cmdList(ctx)
	case "show":
		c.cmdShow(ctx, args)
	case "lookup":
		c.cmdLookup(ctx, args)
	case "delete":
		c.cmdDelete(ctx, args)
	case "status":
		c.renderStatus()
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type 'help' for commands.\n", command)
	}
	return false
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `Commands:
  set <field> <value>   edit a draft field (username, firstName, lastName, email, phoneNumber)
  form                  show the draft and any field errors
  submit                create the draft, or save it when editing
  edit <id>             start editing a record from the list or lookup result
  cancel                abandon the current edit
  list                  show or hide the user listing
  show <id>             show the detail view for a record
  lookup <id>           fetch a single record by id
  delete <id>           delete a record
  status                show the last operation's outcome
  quit                  leave the console
`)
}

func (c *Console) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "Usage: set <field> <value>")
		return
	}
	name := args[0]
	if !isEditableField(name) {
		fmt.Fprintf(c.out, "Unknown field %q. Fields: username, firstName, lastName, email, phoneNumber\n", name)
		return
	}
	c.coord.EditField(name, strings.Join(args[1:], " "))
}

func (c *Console) cmdSubmit(ctx context.Context) {
	if c.coord.Mode().IsEditing() {
		c.coord.SubmitUpdate(ctx)
	} else {
		c.coord.SubmitCreate(ctx)
	}
	c.renderStatus()
	c.renderFieldErrors()
	if c.coord.ListVisible() {
		c.renderList()
	}
}

// cmdEdit resolves the id against records the user has already seen; the
// coordinator never edits a fabricated target.
func (c *Console) cmdEdit(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: edit <id>")
		return
	}
	id := args[0]

	user, ok := c.findKnown(id)
	if !ok {
		fmt.Fprintf(c.out, "No record %s on screen. Run 'list' or 'lookup %s' first.\n", id, id)
		return
	}

	c.coord.BeginEdit(user)
	fmt.Fprintf(c.out, "Editing user %s. Adjust fields with 'set', then 'submit' or 'cancel'.\n", id)
	c.renderForm()
}

func (c *Console) cmdList(ctx context.Context) {
	c.coord.ToggleList(ctx)
	if !c.coord.ListVisible() {
		c.renderStatus()
		fmt.Fprintln(c.out, "User list hidden.")
		return
	}
	c.renderStatus()
	c.renderList()
}

func (c *Console) cmdShow(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: show <id>")
		return
	}
	c.coord.ShowDetail(ctx, args[0])
	c.renderStatus()
	if detail := c.coord.DetailSelection(); detail != nil {
		c.renderDetail(detail)
	}
}

func (c *Console) cmdLookup(ctx context.Context, args []string) {
	id := strings.Join(args, " ")
	c.coord.LookupByID(ctx, id)
	c.renderStatus()
	if result := c.coord.LookupResult(); result != nil {
		fmt.Fprintln(c.out, "Single user:")
		fmt.Fprintf(c.out, "  %s\n", userLine(*result))
	}
}

func (c *Console) cmdDelete(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: delete <id>")
		return
	}
	c.coord.DeleteRecord(ctx, args[0])
	c.renderStatus()
	if c.coord.ListVisible() {
		c.renderList()
	}
}

// findKnown looks for the id among records already fetched into the list
// cache or the lookup result.
func (c *Console) findKnown(id string) (models.User, bool) {
	for _, u := range c.coord.ListCache() {
		if u.ID == id {
			return u, true
		}
	}
	if result := c.coord.LookupResult(); result != nil && result.ID == id {
		return *result, true
	}
	return models.User{}, false
}

func isEditableField(name string) bool {
	switch name {
	case models.FieldUsername, models.FieldFirstName, models.FieldLastName,
		models.FieldEmail, models.FieldPhoneNumber:
		return true
	}
	return false
}
