package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/taskflow-app/taskflow/internal/models"
)

// Indirections used to facilitate testing; they point to interactive
// input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for the registration fields and attempts to create
// a new account.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	firstname, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastname, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	birthdate, err := getSimpleText(a.reader, "Enter birthdate (DD.MM.YYYY)", os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.auth.Register(ctx, models.Account{
		Email:     email,
		Password:  password,
		Username:  username,
		Firstname: firstname,
		Lastname:  lastname,
		Birthdate: birthdate,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Printf("Account created successfully! Member #%d\n", account.MemberID)
	return nil
}

// Login prompts for credentials and tries to authenticate. On success
// the session is persisted and the prompt shows the active email.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	a.userEmail = account.Email
	fmt.Printf("Welcome, %s!\n", account.Firstname)
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Println("Error:", err)
		return err
	}
	a.userEmail = ""
	fmt.Println("Logged out")
	return nil
}
