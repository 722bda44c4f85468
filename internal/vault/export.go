package vault

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/passvault-app/passvault/internal/models"
)

// ImportOutcome reports what happened to one record of an import document.
type ImportOutcome struct {
	Index  int
	Record models.ExportRecord
	Err    error
}

// Ok reports whether the record was imported.
func (o ImportOutcome) Ok() bool { return o.Err == nil }

// ExportCredentials returns the user's credentials as export records, in
// insertion order.
func (s *Service) ExportCredentials(ctx context.Context, session *Session) ([]models.ExportRecord, error) {
	creds, err := s.ListCredentials(ctx, session)
	if err != nil {
		return nil, err
	}
	records := make([]models.ExportRecord, len(creds))
	for i, c := range creds {
		records[i] = models.ExportRecord{Site: c.Site, Username: c.Username, Password: c.Password}
	}
	return records, nil
}

// ExportJSON serializes the user's credentials as a pretty-printed JSON
// array. The document round-trips through ImportCredentials.
func (s *Service) ExportJSON(ctx context.Context, session *Session) ([]byte, error) {
	records, err := s.ExportCredentials(ctx, session)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export document: %w", err)
	}
	return data, nil
}

// ImportCredentials parses an export document and stores each valid record
// for the session's user. A malformed record (empty site or username) is
// reported in its outcome and does not abort records processed earlier or
// later. Storage faults abort the import and are returned alongside the
// outcomes collected so far.
func (s *Service) ImportCredentials(ctx context.Context, session *Session, doc []byte) ([]ImportOutcome, error) {
	if err := s.touch(session); err != nil {
		return nil, err
	}

	var records []models.ExportRecord
	if err := json.Unmarshal(doc, &records); err != nil {
		return nil, fmt.Errorf("parse import document: %w", err)
	}

	outcomes := make([]ImportOutcome, 0, len(records))
	for i, rec := range records {
		outcome := ImportOutcome{Index: i, Record: rec}

		var failed []string
		if rec.Site == "" {
			failed = append(failed, "a site")
		}
		if rec.Username == "" {
			failed = append(failed, "a username")
		}
		if len(failed) > 0 {
			outcome.Err = &ValidationError{Failed: failed}
			outcomes = append(outcomes, outcome)
			continue
		}

		_, err := s.repos.Credentials.Create(ctx, &models.Credential{
			OwnerUserID: session.User.ID,
			Site:        rec.Site,
			Username:    rec.Username,
			Password:    rec.Password,
		})
		if err != nil {
			return outcomes, fmt.Errorf("import record %d: %w", i, err)
		}
		outcomes = append(outcomes, outcome)
	}

	s.log.Info(ctx, "credentials imported", "user_id", session.User.ID,
		"total", len(records), "imported", countOk(outcomes))
	return outcomes, nil
}

func countOk(outcomes []ImportOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Ok() {
			n++
		}
	}
	return n
}
