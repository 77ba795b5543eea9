package api

// BasicResult is the server's generic success/failure response.
type BasicResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthRequest is the login request body.
type AuthRequest struct {
	Account    string `json:"account"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// AuthResult is the login response.
type AuthResult struct {
	Collective string `json:"collective"`
	User       string `json:"user"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Token      string `json:"token,omitempty"`
	ValidMs    int64  `json:"validMs"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	CollectiveName string `json:"collectiveName"`
	Login          string `json:"login"`
	Password       string `json:"password"`
	Invite         string `json:"invite,omitempty"`
}

// GenInviteRequest asks for a new invitation key.
type GenInviteRequest struct {
	Password string `json:"password"`
}

// InviteResult carries the generated invitation key.
type InviteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Key     string `json:"key,omitempty"`
}

// VersionInfo describes the server build.
type VersionInfo struct {
	Version    string `json:"version"`
	BuiltAt    string `json:"builtAtString"`
	GitCommit  string `json:"gitCommit"`
	GitVersion string `json:"gitVersion"`
}

// SearchRequest is the item search query.
type SearchRequest struct {
	Query       string `json:"query"`
	Limit       int    `json:"limit"`
	Offset      int    `json:"offset"`
	WithDetails bool   `json:"withDetails"`
}

// SearchResult groups matched items, usually by month.
type SearchResult struct {
	Groups []ItemGroup `json:"groups"`
}

// ItemGroup is one named group of search results.
type ItemGroup struct {
	Name  string      `json:"name"`
	Items []ItemLight `json:"items"`
}

// ItemLight is the summary form of an item as returned by search.
type ItemLight struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	State       string            `json:"state"`
	Date        int64             `json:"date"`
	DueDate     int64             `json:"dueDate,omitempty"`
	Source      string            `json:"source,omitempty"`
	Direction   string            `json:"direction,omitempty"`
	CorrOrg     *IdName           `json:"corrOrg,omitempty"`
	CorrPerson  *IdName           `json:"corrPerson,omitempty"`
	ConcPerson  *IdName           `json:"concPerson,omitempty"`
	Folder      *IdName           `json:"folder,omitempty"`
	Tags        []Tag             `json:"tags,omitempty"`
	Attachments []AttachmentLight `json:"attachments,omitempty"`
}

// IdName is a reference to a named entity.
type IdName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Tag as attached to an item.
type Tag struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// AttachmentLight is the summary form of an attachment.
type AttachmentLight struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchStats is the search-summary response.
type SearchStats struct {
	Count    int          `json:"count"`
	TagCloud TagCloud     `json:"tagCloud"`
	Fields   []FieldStats `json:"fieldStats"`
}

// TagCloud counts items per tag.
type TagCloud struct {
	Items []TagCount `json:"items"`
}

// TagCount is one tag with its item count.
type TagCount struct {
	Tag   Tag `json:"tag"`
	Count int `json:"count"`
}

// FieldStats aggregates a custom field over the matched items.
type FieldStats struct {
	Field IdName  `json:"field"`
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Avg   float64 `json:"avg"`
}

// ItemDetail is the full form of one item.
type ItemDetail struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	State       string       `json:"state"`
	Date        int64        `json:"date"`
	DueDate     int64        `json:"dueDate,omitempty"`
	Source      string       `json:"source,omitempty"`
	Direction   string       `json:"direction,omitempty"`
	CorrOrg     *IdName      `json:"corrOrg,omitempty"`
	CorrPerson  *IdName      `json:"corrPerson,omitempty"`
	ConcPerson  *IdName      `json:"concPerson,omitempty"`
	Folder      *IdName      `json:"folder,omitempty"`
	Tags        []Tag        `json:"tags,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// Attachment is the full form of an attachment.
type Attachment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// SourceList is the response of the source listing.
type SourceList struct {
	Items []SourceAndTags `json:"items"`
}

// SourceAndTags pairs a source with its configured tags.
type SourceAndTags struct {
	Source Source `json:"source"`
	Tags   []Tag  `json:"tags,omitempty"`
}

// Source is a configured ingestion source.
type Source struct {
	ID          string `json:"id"`
	Abbrev      string `json:"abbrev"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
	Priority    string `json:"priority,omitempty"`
	Counter     int    `json:"counter"`
	Folder      string `json:"folder,omitempty"`
	Language    string `json:"language,omitempty"`
}

// CheckFileResult reports whether a file checksum already exists.
type CheckFileResult struct {
	Exists bool        `json:"exists"`
	Items  []ItemLight `json:"items,omitempty"`
}

// StringList is the server's wrapper for lists of strings.
type StringList struct {
	Items []string `json:"items"`
}

// ItemUploadMeta is the meta part of an upload request.
type ItemUploadMeta struct {
	Multiple       bool       `json:"multiple"`
	Direction      string     `json:"direction,omitempty"`
	Folder         string     `json:"folder,omitempty"`
	SkipDuplicates bool       `json:"skipDuplicates"`
	Tags           StringList `json:"tags"`
	FileFilter     string     `json:"fileFilter,omitempty"`
	Language       string     `json:"language,omitempty"`
}

// ResetPasswordRequest names the account whose password to reset.
type ResetPasswordRequest struct {
	Account string `json:"account"`
}

// ResetPasswordResult carries the newly generated password.
type ResetPasswordResult struct {
	Success     bool   `json:"success"`
	NewPassword string `json:"newPassword"`
	Message     string `json:"message"`
}
