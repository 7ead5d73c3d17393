// Package upload forwards operator media to Cloudinary's unsigned upload
// endpoints and reports the hosted URL back.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// Result is the hosted URL and coarse media kind for an uploaded file.
type Result struct {
	URL  string `json:"url"`
	Type string `json:"type"` // "image" or "video"
}

// Client uploads files to a Cloudinary account using an unsigned upload
// preset.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cloudName  string
	preset     string
}

// NewClient creates a Cloudinary upload client for the given cloud name and
// unsigned upload preset.
func NewClient(cloudName, preset string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    defaultBaseURL,
		cloudName:  cloudName,
		preset:     preset,
	}
}

// Upload sends the file to Cloudinary and returns its hosted URL. Video and
// image uploads go to different endpoints of the same provider, chosen by
// the file's declared content type.
func (c *Client) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*Result, error) {
	isVideo := strings.HasPrefix(contentType, "video/")
	kind := "image"
	if isVideo {
		kind = "video"
	}
	endpoint := fmt.Sprintf("%s/%s/%s/upload", c.baseURL, c.cloudName, kind)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if err := writer.WriteField("upload_preset", c.preset); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("upload failed: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	var payload struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}

	return &Result{URL: payload.SecureURL, Type: kind}, nil
}
