package models

// Credential is one stored (site, username, password) record owned by a user.
type Credential struct {
	ID          int64
	OwnerUserID int64
	Site        string
	Username    string
	Password    string
}

// SearchScope selects which credential fields a substring search matches.
type SearchScope string

const (
	ScopeAll      SearchScope = "all"
	ScopeSite     SearchScope = "site"
	ScopeUsername SearchScope = "username"
)

// ExportRecord is the wire form of a credential in the export document.
// Field names and order are part of the import/export compatibility contract.
type ExportRecord struct {
	Site     string `json:"site"`
	Username string `json:"username"`
	Password string `json:"password"`
}
