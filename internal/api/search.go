package api

import (
	"net/http"
	"net/url"

	"github.com/dsc/cli/internal/auth"
)

// Search runs an item query against the secured endpoint.
func (c *Client) Search(cred auth.Credential, req SearchRequest) (*SearchResult, error) {
	var result SearchResult
	if err := c.doJSON(http.MethodPost, "/api/v1/sec/item/search", cred, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchSummary returns aggregate statistics for a query instead of the
// matching items.
func (c *Client) SearchSummary(cred auth.Credential, query string) (*SearchStats, error) {
	var result SearchStats
	req := SearchRequest{Query: query}
	if err := c.doJSON(http.MethodPost, "/api/v1/sec/item/searchStats", cred, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ItemGet fetches the full detail of one item.
func (c *Client) ItemGet(cred auth.Credential, id string) (*ItemDetail, error) {
	var result ItemDetail
	path := "/api/v1/sec/item/" + url.PathEscape(id)
	if err := c.doJSON(http.MethodGet, path, cred, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Sources lists the sources configured for the collective.
func (c *Client) Sources(cred auth.Credential) (*SourceList, error) {
	var result SourceList
	if err := c.doJSON(http.MethodGet, "/api/v1/sec/source", cred, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
