package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/taskflow-app/taskflow/internal/common"
)

// Profile prints the active account.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Error:", common.ErrNotLoggedIn)
		return common.ErrNotLoggedIn
	}

	account, err := a.profile.Get(ctx, a.userEmail)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Printf("Email:        %s\n", account.Email)
	fmt.Printf("Username:     %s\n", account.Username)
	fmt.Printf("First name:   %s\n", account.Firstname)
	fmt.Printf("Last name:    %s\n", account.Lastname)
	fmt.Printf("Birthdate:    %s\n", account.Birthdate)
	fmt.Printf("Member since: %s\n", account.MemberSince)
	fmt.Printf("Member #:     %d\n", account.MemberID)
	return nil
}

// Edit walks through the profile fields, keeping the current value
// when the user enters an empty line, then persists the update. A
// change confirmation is emailed in the background.
func (a *App) Edit(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Error:", common.ErrNotLoggedIn)
		return common.ErrNotLoggedIn
	}

	current, err := a.profile.Get(ctx, a.userEmail)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Press Enter to keep the current value.")
	edited := current
	fields := []struct {
		prompt string
		target *string
	}{
		{"Username", &edited.Username},
		{"Email", &edited.Email},
		{"First name", &edited.Firstname},
		{"Last name", &edited.Lastname},
		{"Birthdate (DD.MM.YYYY)", &edited.Birthdate},
		{"Password", &edited.Password},
	}
	for _, f := range fields {
		text, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.prompt, maskCurrent(f.prompt, *f.target)), os.Stdout)
		if err != nil {
			return err
		}
		if text != "" {
			*f.target = text
		}
	}

	updated, err := a.profile.Update(ctx, a.userEmail, edited)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	a.userEmail = updated.Email
	fmt.Println("Profile updated. A confirmation email is on its way.")
	return nil
}

func maskCurrent(prompt, value string) string {
	if prompt == "Password" {
		return "hidden"
	}
	return value
}

// DeleteAccount removes the active account after an explicit
// confirmation. Its todos remain in storage.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Error:", common.ErrNotLoggedIn)
		return common.ErrNotLoggedIn
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete account %s? This cannot be undone (yes/no)", a.userEmail), os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.profile.DeleteAccount(ctx, a.userEmail); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	a.userEmail = ""
	fmt.Println("Account deleted")
	return nil
}

// Export serializes all accounts and hands them to the configured
// share/export sink.
func (a *App) Export(ctx context.Context) error {
	location, err := a.profile.Export(ctx, a.exporter)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Accounts exported to:", location)
	return nil
}
