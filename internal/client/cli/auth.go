package cli

import (
	"context"
	"os"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for the signup fields and creates an account. The user
// still has to log in afterwards, matching the backend's flow.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Choose a password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Repeat password", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.Register(ctx, username, email, password, confirm, "")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(msg)
	printlnFn("You can now log in with your new account.")
	return nil
}

// Login prompts for credentials and authenticates. On success the session is
// persisted so the next run starts logged in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Logged in as " + user.Username)
	return nil
}

// Logout clears the session, in memory and on disk.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}
