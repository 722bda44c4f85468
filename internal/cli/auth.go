package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/passvault-app/passvault/internal/common"
	"github.com/passvault-app/passvault/internal/strength"
)

// Register prompts for account details and creates the account. Failed
// strength requirements are listed one per line so the user can fix them.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Choose a password", a.out)
	if err != nil {
		return err
	}
	hint, err := GetSimpleText(a.reader, "Password hint (optional)", a.out)
	if err != nil {
		return err
	}

	if _, err := a.service.Register(ctx, username, password, hint); err != nil {
		if errors.Is(err, common.ErrValidation) {
			a.printChecklist(password)
		}
		return err
	}

	fmt.Fprintln(a.out, "Account created. Use 'login' to open your vault.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}

	session, err := a.service.Login(ctx, username, password)
	if err != nil {
		return err
	}
	a.session = session

	fmt.Fprintf(a.out, "Vault opened for %s.\n", session.User.Username)
	printHelp(a)
	return nil
}

// Hint shows the stored password hint for a username.
func (a *App) Hint(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	hint, err := a.service.PasswordHint(ctx, username)
	if err != nil {
		return err
	}
	if hint == "" {
		fmt.Fprintln(a.out, "No hint stored.")
		return nil
	}
	fmt.Fprintln(a.out, "Hint:", hint)
	return nil
}

// Profile changes the password hint and password of the logged-in user.
// The new password must be Strong.
func (a *App) Profile(ctx context.Context) error {
	hint, err := GetSimpleText(a.reader, "New password hint", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("New password", a.out)
	if err != nil {
		return err
	}

	if err := a.service.ChangeProfile(ctx, a.session, hint, password); err != nil {
		if errors.Is(err, common.ErrWeakPassword) {
			a.printChecklist(password)
		}
		return err
	}

	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// DeleteAccount removes the account and every stored credential after an
// explicit confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader,
		"This deletes your account and ALL stored credentials. Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.service.DeleteAccount(ctx, a.session); err != nil {
		return err
	}
	a.session = nil
	fmt.Fprintln(a.out, "Account deleted.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session = nil
	fmt.Fprintln(a.out, "Vault closed.")
	return nil
}

// printChecklist renders one line per strength requirement.
func (a *App) printChecklist(password string) {
	res := strength.Evaluate(password)
	fmt.Fprintf(a.out, "Password strength: %s\n", res.Category)
	lines := []struct {
		ok   bool
		text string
	}{
		{res.Checks.MinLength, "at least 8 characters"},
		{res.Checks.Upper, "an uppercase letter"},
		{res.Checks.Lower, "a lowercase letter"},
		{res.Checks.Digit, "a digit"},
		{res.Checks.Special, "a special character"},
	}
	for _, l := range lines {
		mark := "✗"
		if l.ok {
			mark = "✓"
		}
		fmt.Fprintf(a.out, "  %s %s\n", mark, l.text)
	}
}
