package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Generate prompts for a length and prints a freshly generated password.
func (a *App) Generate(ctx context.Context) error {
	text, err := GetSimpleText(a.reader, "Password length", a.out)
	if err != nil {
		return err
	}
	length, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("invalid length %q", text)
	}

	pw, err := a.service.GeneratePassword(length)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, pw)
	return nil
}

// Strength evaluates a candidate password and prints the per-requirement
// checklist, the same feedback a GUI would show per keystroke.
func (a *App) Strength(ctx context.Context) error {
	candidate, err := GetPassword("Password to evaluate", a.out)
	if err != nil {
		return err
	}
	a.printChecklist(candidate)
	return nil
}
