package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cardkeeper/internal/client/api"
	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
	"github.com/dmitrijs2005/cardkeeper/internal/client/services"
	"github.com/dmitrijs2005/cardkeeper/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for username and password, validates them locally and
// authenticates against the backend. On success the session is stored and
// the dashboard is shown on the next refresh.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	form := models.LoginForm{Username: username, Password: string(password)}
	if errs := form.Validate(); len(errs) > 0 {
		a.printFieldErrors(errs)
		return errs
	}

	fmt.Fprintln(a.out, "Logging in...")
	cctx, cancel := a.callCtx(ctx)
	res, err := a.authService.Login(cctx, form.Username, form.Password)
	cancel()

	return a.completeAuth(ctx, res, err, "Login successful!", "Login failed", "An error occurred during login")
}

// Signup prompts for the registration fields, validates them locally and
// creates the account. The backend logs the new user in right away.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer wipe(confirm)

	form := models.SignupForm{
		Username:        username,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	}
	if errs := form.Validate(); len(errs) > 0 {
		a.printFieldErrors(errs)
		return errs
	}

	fmt.Fprintln(a.out, "Creating account...")
	cctx, cancel := a.callCtx(ctx)
	res, err := a.authService.Signup(cctx, form.Username, form.Email, form.Password)
	cancel()

	return a.completeAuth(ctx, res, err, "Registration successful! Welcome!", "Registration failed", "An error occurred during registration")
}

var errAuthRejected = errors.New("authentication rejected")

func (a *App) completeAuth(ctx context.Context, res services.AuthResult, err error, okMsg, failMsg, errMsg string) error {
	if err != nil {
		a.logger.Error(ctx, "authentication error", "error", err)
		fmt.Fprintln(a.out, "Error:", api.MessageOf(err, errMsg))
		return err
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = failMsg
		}
		fmt.Fprintln(a.out, "Error:", msg)
		return errAuthRejected
	}

	if err := a.session.Login(ctx, res.Token, res.User); err != nil {
		a.logger.Error(ctx, "save session", "error", err)
		fmt.Fprintln(a.out, "Error:", errMsg)
		return err
	}

	a.logger.Info(ctx, "logged in", "user", res.User.Username)
	fmt.Fprintln(a.out, okMsg)
	return nil
}

// Logout asks for confirmation and ends the session.
func (a *App) Logout(ctx context.Context) error {
	ok, err := a.dialogs.Confirm("Are you sure you want to logout?")
	if err != nil || !ok {
		return err
	}

	if err := a.session.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout", "error", err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the profile of the logged-in user and, for JWT tokens,
// when the token expires.
func (a *App) WhoAmI(ctx context.Context) error {
	user, ok := a.session.User()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "Username: %s\n", user.Username)
	fmt.Fprintf(a.out, "Email:    %s\n", user.Email)
	fmt.Fprintf(a.out, "User ID:  %s\n", user.ID)

	if token, ok := a.session.Token(); ok {
		if exp, ok := session.TokenExpiry(token); ok {
			fmt.Fprintf(a.out, "Session expires: %s\n", exp.Local().Format(time.RFC1123))
		}
	}
	return nil
}

func (a *App) printFieldErrors(errs models.FieldErrors) {
	for _, fe := range errs {
		fmt.Fprintf(a.out, "  %s: %s\n", fe.Field, fe.Message)
	}
}
