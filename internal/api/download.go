package api

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/dsc/cli/internal/auth"
)

// Attachment fetches the original file of one attachment. The caller
// must close the returned body. The filename comes from the
// Content-Disposition header, falling back to the attachment id.
func (c *Client) Attachment(cred auth.Credential, id string) (*http.Response, string, error) {
	path := "/api/v1/sec/attachment/" + url.PathEscape(id) + "/original"
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.send(req, cred)
	if err != nil {
		return nil, "", err
	}

	name := id
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if fn := params["filename"]; fn != "" {
				name = fn
			}
		}
	}
	return resp, name, nil
}
