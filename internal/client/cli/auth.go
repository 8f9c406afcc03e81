package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and attempts to create a new account.
// Registration never starts a session; the user logs in afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	in := api.RegisterInput{Email: email, Username: username, Name: name, Password: string(password)}
	if err := a.sessions.Register(ctx, in); err != nil {
		var authErr *api.AuthError
		if errors.As(err, &authErr) {
			printlnFn(authErr.Error())
		} else {
			a.log.Error(ctx, "registration failed", "error", err)
			printlnFn("Registration failed, please try again.")
		}
		return err
	}

	printlnFn("Account created. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and tries to authenticate. The same value is
// sent as both email and username; the server matches on either.
func (a *App) Login(ctx context.Context) error {
	account, err := getSimpleText(a.reader, "Enter email or username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	in := api.LoginInput{Email: account, Username: account, Password: string(password)}
	sess, err := a.sessions.Login(ctx, in)
	if err != nil {
		var authErr *api.AuthError
		switch {
		case errors.As(err, &authErr):
			printlnFn(authErr.Error())
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Could not reach the server. Please try again.")
		default:
			a.log.Error(ctx, "login failed", "error", err)
			printlnFn("Login failed, please try again.")
		}
		return err
	}

	name := ""
	if sess.Identity != nil {
		name = sess.Identity.DisplayName
	}
	printlnFn(fmt.Sprintf("Welcome, %s!", name))
	return nil
}

// Logout drops the stored session and returns the app to the guest state.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}
