package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/passvault-app/passvault/internal/models"
)

func (a *App) Add(ctx context.Context) error {
	site, err := GetSimpleText(a.reader, "Site", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Username for the site", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password for the site", a.out)
	if err != nil {
		return err
	}

	cred, err := a.service.AddCredential(ctx, a.session, site, username, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Stored credential #%d for %s.\n", cred.ID, cred.Site)
	return nil
}

func (a *App) List(ctx context.Context) error {
	creds, err := a.service.ListCredentials(ctx, a.session)
	if err != nil {
		return err
	}
	a.printCredentials(creds)
	return nil
}

func (a *App) Search(ctx context.Context) error {
	query, err := GetSimpleText(a.reader, "Search for", a.out)
	if err != nil {
		return err
	}
	scopeText, err := GetSimpleText(a.reader, "Search in (all / site / username)", a.out)
	if err != nil {
		return err
	}

	var scope models.SearchScope
	switch scopeText {
	case "", "all":
		scope = models.ScopeAll
	case "site":
		scope = models.ScopeSite
	case "username":
		scope = models.ScopeUsername
	default:
		return fmt.Errorf("unknown scope %q", scopeText)
	}

	creds, err := a.service.SearchCredentials(ctx, a.session, query, scope)
	if err != nil {
		return err
	}
	a.printCredentials(creds)
	return nil
}

func (a *App) Edit(ctx context.Context) error {
	id, err := a.promptCredentialID()
	if err != nil {
		return err
	}
	site, err := GetSimpleText(a.reader, "New site", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("New password", a.out)
	if err != nil {
		return err
	}

	if err := a.service.UpdateCredential(ctx, a.session, id, site, username, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Credential updated.")
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptCredentialID()
	if err != nil {
		return err
	}
	if err := a.service.DeleteCredential(ctx, a.session, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Credential deleted.")
	return nil
}

func (a *App) promptCredentialID() (int64, error) {
	text, err := GetSimpleText(a.reader, "Credential id", a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", text)
	}
	return id, nil
}

func (a *App) printCredentials(creds []models.Credential) {
	if len(creds) == 0 {
		fmt.Fprintln(a.out, "No credentials.")
		return
	}
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSITE\tUSERNAME\tPASSWORD")
	for _, c := range creds {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Site, c.Username, c.Password)
	}
	_ = w.Flush()
}
