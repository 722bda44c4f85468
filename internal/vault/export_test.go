package vault

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passvault-app/passvault/internal/common"
	"github.com/passvault-app/passvault/internal/models"
)

func TestExportJSON_DocumentFormat(t *testing.T) {
	s, _ := setupService(t, 0)
	ctx := context.Background()
	session := register(t, s, "alice")

	_, err := s.AddCredential(ctx, session, "example.com", "alice@example.com", "s3cret")
	require.NoError(t, err)

	doc, err := s.ExportJSON(ctx, session)
	require.NoError(t, err)

	// one pretty-printed top-level array with the contract field names
	assert.Contains(t, string(doc), "\"site\": \"example.com\"")
	assert.Contains(t, string(doc), "\"username\": \"alice@example.com\"")
	assert.Contains(t, string(doc), "\"password\": \"s3cret\"")

	var records []models.ExportRecord
	require.NoError(t, json.Unmarshal(doc, &records))
	require.Len(t, records, 1)
}

func TestExportJSON_EmptyVault(t *testing.T) {
	s, _ := setupService(t, 0)
	ctx := context.Background()
	session := register(t, s, "alice")

	doc, err := s.ExportJSON(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(doc))
}

func TestImportCredentials_RoundTrip(t *testing.T) {
	s, _ := setupService(t, 0)
	ctx := context.Background()
	alice := register(t, s, "alice")
	bob := register(t, s, "bob")

	want := []models.ExportRecord{
		{Site: "example.com", Username: "alice", Password: "pw1"},
		{Site: "github.com", Username: "alice-dev", Password: "pw2"},
		{Site: "mail.org", Username: "alice@mail.org", Password: "pw3"},
	}
	for _, r := range want {
		_, err := s.AddCredential(ctx, alice, r.Site, r.Username, r.Password)
		require.NoError(t, err)
	}

	doc, err := s.ExportJSON(ctx, alice)
	require.NoError(t, err)

	outcomes, err := s.ImportCredentials(ctx, bob, doc)
	require.NoError(t, err)
	require.Len(t, outcomes, len(want))
	for _, o := range outcomes {
		assert.True(t, o.Ok(), "record %d: %v", o.Index, o.Err)
	}

	got, err := s.ExportCredentials(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImportCredentials_PartialFailure(t *testing.T) {
	s, _ := setupService(t, 0)
	ctx := context.Background()
	session := register(t, s, "alice")

	doc := `[
		{"site": "ok-1.com", "username": "u1", "password": "p1"},
		{"site": "", "username": "u2", "password": "p2"},
		{"site": "no-user.com", "username": "", "password": "p3"},
		{"site": "ok-2.com", "username": "u4", "password": "p4"}
	]`

	outcomes, err := s.ImportCredentials(ctx, session, []byte(doc))
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	assert.True(t, outcomes[0].Ok())
	assert.ErrorIs(t, outcomes[1].Err, common.ErrValidation)
	assert.ErrorIs(t, outcomes[2].Err, common.ErrValidation)
	assert.True(t, outcomes[3].Ok(), "a malformed record must not abort later valid records")

	list, err := s.ListCredentials(ctx, session)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ok-1.com", list[0].Site)
	assert.Equal(t, "ok-2.com", list[1].Site)
}

func TestImportCredentials_BadDocument(t *testing.T) {
	s, _ := setupService(t, 0)
	ctx := context.Background()
	session := register(t, s, "alice")

	_, err := s.ImportCredentials(ctx, session, []byte("{not an array"))
	require.Error(t, err)

	list, err := s.ListCredentials(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, list)
}
