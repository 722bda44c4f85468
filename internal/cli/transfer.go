package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/passvault-app/passvault/internal/filex"
)

// Export writes the vault's credentials as a pretty-printed JSON array into
// the configured export directory.
func (a *App) Export(ctx context.Context) error {
	doc, err := a.service.ExportJSON(ctx, a.session)
	if err != nil {
		return err
	}

	dir, err := filex.EnsureDir(a.config.ExportDir)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("passvault-export-%s.json", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if err := filex.WriteFileAtomic(path, doc); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Exported to", path)
	return nil
}

// Import reads a JSON export document and stores its records, reporting the
// outcome of every record.
func (a *App) Import(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Path of the JSON file to import", a.out)
	if err != nil {
		return err
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	outcomes, err := a.service.ImportCredentials(ctx, a.session, doc)
	for _, o := range outcomes {
		if o.Ok() {
			fmt.Fprintf(a.out, "  #%d %s: imported\n", o.Index+1, o.Record.Site)
		} else {
			fmt.Fprintf(a.out, "  #%d %s: skipped (%v)\n", o.Index+1, o.Record.Site, o.Err)
		}
	}
	return err
}
