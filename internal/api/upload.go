package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dsc/cli/internal/auth"
)

// uploadPath maps the endpoint selection to the matching upload route.
func uploadPath(sel auth.EndpointSelection) string {
	switch sel.Mode {
	case auth.AccessIntegration:
		return "/api/v1/open/integration/item/" + url.PathEscape(sel.Collective)
	case auth.AccessSource:
		return "/api/v1/open/upload/item/" + url.PathEscape(sel.SourceID)
	default:
		return "/api/v1/sec/upload/item"
	}
}

// Upload sends files as one multipart request: the meta part first,
// then one file part per path. How files are batched into items is the
// caller's decision; this method uploads exactly what it is given.
func (c *Client) Upload(sel auth.EndpointSelection, cred auth.Credential, meta ItemUploadMeta, files []string) (*BasicResult, error) {
	reqCred := auth.Anonymous()
	switch sel.Mode {
	case auth.AccessIntegration:
		reqCred = sel.Credential
	case auth.AccessSession:
		reqCred = cred
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal upload meta: %w", err)
	}
	if err := w.WriteField("meta", string(metaJSON)); err != nil {
		return nil, fmt.Errorf("failed to write upload meta: %w", err)
	}

	for _, path := range files {
		if err := addFilePart(w, path); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish upload body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+uploadPath(sel), &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.send(req, reqCred)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result BasicResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result, nil
}

func addFilePart(w *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to add file part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}
