package cli

import (
	"fmt"

	"github.com/user-directory-console/internal/models"
)

// Field order matches the form in help and output.
var formFields = []string{
	models.FieldUsername,
	models.FieldFirstName,
	models.FieldLastName,
	models.FieldEmail,
	models.FieldPhoneNumber,
}

var fieldLabels = map[string]string{
	models.FieldUsername:    "Username",
	models.FieldFirstName:   "First Name",
	models.FieldLastName:    "Last Name",
	models.FieldEmail:       "Email",
	models.FieldPhoneNumber: "Phone Number",
}

func userLine(u models.User) string {
	return fmt.Sprintf("%s - %s %s (%s) [id %s]", u.Username, u.FirstName, u.LastName, u.Email, u.ID)
}

func draftValue(draft models.User, field string) string {
	switch field {
	case models.FieldUsername:
		return draft.Username
	case models.FieldFirstName:
		return draft.FirstName
	case models.FieldLastName:
		return draft.LastName
	case models.FieldEmail:
		return draft.Email
	case models.FieldPhoneNumber:
		return draft.PhoneNumber
	}
	return ""
}

func (c *Console) renderStatus() {
	if msg := c.coord.StatusMessage(); msg != "" {
		fmt.Fprintln(c.out, msg)
	}
}

func (c *Console) renderFieldErrors() {
	errs := c.coord.FieldErrors()
	for _, field := range formFields {
		if msg, ok := errs[field]; ok {
			fmt.Fprintf(c.out, "  %s: %s\n", fieldLabels[field], msg)
		}
	}
}

func (c *Console) renderForm() {
	if targetID, editing := c.coord.Mode().TargetID(); editing {
		fmt.Fprintf(c.out, "Editing user %s:\n", targetID)
	} else {
		fmt.Fprintln(c.out, "New user:")
	}

	draft := c.coord.Draft()
	errs := c.coord.FieldErrors()
	for _, field := range formFields {
		fmt.Fprintf(c.out, "  %-12s %s\n", fieldLabels[field]+":", draftValue(draft, field))
		if msg, ok := errs[field]; ok {
			fmt.Fprintf(c.out, "  %-12s ^ %s\n", "", msg)
		}
	}
}

func (c *Console) renderList() {
	users := c.coord.ListCache()
	if len(users) == 0 {
		fmt.Fprintln(c.out, "No users in the directory.")
		return
	}
	fmt.Fprintln(c.out, "Available users:")
	for _, u := range users {
		fmt.Fprintf(c.out, "  %s\n", userLine(u))
	}
}

func (c *Console) renderDetail(u *models.User) {
	fmt.Fprintln(c.out, "Selected user info:")
	fmt.Fprintf(c.out, "  %-12s %s\n", "ID:", u.ID)
	fmt.Fprintf(c.out, "  %-12s %s\n", "Username:", u.Username)
	fmt.Fprintf(c.out, "  %-12s %s\n", "First Name:", u.FirstName)
	fmt.Fprintf(c.out, "  %-12s %s\n", "Last Name:", u.LastName)
	fmt.Fprintf(c.out, "  %-12s %s\n", "Email:", u.Email)
	fmt.Fprintf(c.out, "  %-12s %s\n", "Phone Number:", u.PhoneNumber)
}
