package api

import (
	"net/http"
	"net/url"

	"github.com/dsc/cli/internal/auth"
)

// checkFilePath maps the endpoint selection to the matching checkfile
// route. The three access paths use three distinct routes.
func checkFilePath(sel auth.EndpointSelection, sha string) string {
	sha = url.PathEscape(sha)
	switch sel.Mode {
	case auth.AccessIntegration:
		return "/api/v1/open/integration/checkfile/" + url.PathEscape(sel.Collective) + "/" + sha
	case auth.AccessSource:
		return "/api/v1/open/checkfile/" + url.PathEscape(sel.SourceID) + "/" + sha
	default:
		return "/api/v1/sec/checkfile/" + sha
	}
}

// FileExists asks the server whether a file with the given SHA-256
// checksum is already stored. cred is the session credential for
// session access; integration access uses the credential carried by the
// selection, and source access is anonymous.
func (c *Client) FileExists(sel auth.EndpointSelection, cred auth.Credential, sha string) (*CheckFileResult, error) {
	reqCred := auth.Anonymous()
	switch sel.Mode {
	case auth.AccessIntegration:
		reqCred = sel.Credential
	case auth.AccessSession:
		reqCred = cred
	}

	var result CheckFileResult
	if err := c.doJSON(http.MethodGet, checkFilePath(sel, sha), reqCred, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
