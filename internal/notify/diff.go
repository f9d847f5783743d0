// Package notify is the notification-sink boundary. The core computes
// a field-level change-set after a profile update and hands it, with
// the recipient identity, to a Sink. Delivery is fire-and-forget: a
// sink failure never rolls back or fails the committed update.
package notify

import (
	"fmt"

	"github.com/taskflow-app/taskflow/internal/models"
)

// Change is one modified profile field. For the password, only the
// fact of the change is recorded, never the values.
type Change struct {
	Field string
	Old   string
	New   string
}

// String renders the change the way the confirmation email shows it.
func (c Change) String() string {
	if c.Field == "password" {
		return "Password was changed"
	}
	return fmt.Sprintf("%s: %s → %s", fieldLabel(c.Field), c.Old, c.New)
}

func fieldLabel(field string) string {
	switch field {
	case "username":
		return "Username"
	case "email":
		return "Email"
	case "firstname":
		return "First Name"
	case "lastname":
		return "Last Name"
	case "birthdate":
		return "Birth Date"
	}
	return field
}

// Diff compares two account records field by field, in the order the
// confirmation email lists them.
func Diff(old, updated models.Account) []Change {
	var changes []Change
	if old.Username != updated.Username {
		changes = append(changes, Change{Field: "username", Old: old.Username, New: updated.Username})
	}
	if old.Email != updated.Email {
		changes = append(changes, Change{Field: "email", Old: old.Email, New: updated.Email})
	}
	if old.Firstname != updated.Firstname {
		changes = append(changes, Change{Field: "firstname", Old: old.Firstname, New: updated.Firstname})
	}
	if old.Lastname != updated.Lastname {
		changes = append(changes, Change{Field: "lastname", Old: old.Lastname, New: updated.Lastname})
	}
	if old.Birthdate != updated.Birthdate {
		changes = append(changes, Change{Field: "birthdate", Old: old.Birthdate, New: updated.Birthdate})
	}
	if old.Password != updated.Password {
		changes = append(changes, Change{Field: "password"})
	}
	return changes
}
