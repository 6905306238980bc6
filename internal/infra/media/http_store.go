package media

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"cashmemo/internal/domain/service"
	"cashmemo/internal/errors"
)

const (
	httpStoreTimeout  = 30 * time.Second
	maxErrorBodyBytes = 4 << 10
)

// uploadResponse is the JSON returned by the media transformation service.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	Bytes     int64  `json:"bytes"`
}

type httpMediaStore struct {
	endpoint string
	apiKey   string
	folder   string
	client   *http.Client
}

// NewHTTPMediaStore relays uploads to a hosted media service.
func NewHTTPMediaStore(endpoint, apiKey, folder string, client *http.Client) service.MediaStore {
	if client == nil {
		client = &http.Client{Timeout: httpStoreTimeout}
	}

	return &httpMediaStore{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		folder:   strings.Trim(folder, "/"),
		client:   client,
	}
}

// Upload sends the image into the owner's folder on the media service and
// rejects a response whose public id lands elsewhere.
func (s *httpMediaStore) Upload(ctx context.Context, owner, name, contentType string, data []byte) (*service.MediaAsset, error) {
	folder, err := ownerFolder(s.folder, owner)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+escapeQuotes(name)+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, &body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "media service request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError("upload", resp)
	}

	var decoded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode media service response")
	}

	assetURL := decoded.SecureURL
	if assetURL == "" {
		assetURL = decoded.URL
	}
	if assetURL == "" || decoded.PublicID == "" {
		return nil, errors.New("media service response is missing url or public_id")
	}
	if !ownsKey(s.folder, owner, decoded.PublicID) {
		return nil, errors.Errorf("media service stored %q outside folder %s", decoded.PublicID, folder)
	}

	return &service.MediaAsset{
		URL:      assetURL,
		PublicID: decoded.PublicID,
		Width:    decoded.Width,
		Height:   decoded.Height,
		Format:   decoded.Format,
		Size:     decoded.Bytes,
	}, nil
}

// Delete issues DELETE {endpoint}/{publicID}. A 404 counts as deleted.
func (s *httpMediaStore) Delete(ctx context.Context, owner, publicID string) error {
	if !ownsKey(s.folder, owner, publicID) {
		return service.ErrMediaNotFound
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.endpoint+"/"+url.PathEscape(publicID), http.NoBody)
	if err != nil {
		return errors.WithStack(err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "media service request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError("delete", resp)
	}

	return nil
}

func (s *httpMediaStore) authorize(req *http.Request) {
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}
}

func statusError(op string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	return errors.Errorf("media service %s returned %d: %s", op, resp.StatusCode, strings.TrimSpace(string(snippet)))
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
