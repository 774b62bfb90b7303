package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Asad-NCS/lostandfound/internal/domain"
)

// HTTPClient implements Client over the backend's REST surface.
type HTTPClient struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New creates an HTTPClient for the given backend origin. The timeout bounds
// every request including body transfer; an expired timeout surfaces as
// ErrUnavailable.
func New(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do executes the request and decodes a 2xx JSON body into out (when out is
// non-nil). Error bodies may vary in shape: the backend usually sends
// {"error": "..."} but returns plain text on some failures.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadableResponse, err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: %v", ErrUnreadableResponse, err)
		}
	}
	return nil
}

// errorMessage extracts the server's error text from a non-2xx body.
// JSON bodies may carry the message under "error" or "message"; anything
// else is treated as plain text and returned as-is.
func errorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &body) == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	text := strings.TrimSpace(string(data))
	if text == "" || !utf8.ValidString(text) {
		return ErrUnreadableResponse.Error()
	}
	return text
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, method, path, r)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// message mirrors the backend's {"message": "..."} success envelope.
type message struct {
	Message string `json:"message"`
}

func (c *HTTPClient) Register(ctx context.Context, reg RegisterRequest) (string, error) {
	var out message
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/register", reg, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Items(ctx context.Context, status string) ([]domain.Item, error) {
	path := "/api/items"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}
	var items []domain.Item
	if err := c.getJSON(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) Item(ctx context.Context, id int64) (*domain.Item, error) {
	var item domain.Item
	if err := c.getJSON(ctx, fmt.Sprintf("/api/items/%d", id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) CreateItem(ctx context.Context, item domain.NewItem, imagePath string) (string, error) {
	return c.uploadMultipart(ctx, "/api/items", "item", item, "image", imagePath)
}

func (c *HTTPClient) ClaimsByItem(ctx context.Context, itemID int64) ([]domain.Claim, error) {
	var claims []domain.Claim
	if err := c.getJSON(ctx, fmt.Sprintf("/api/claims/item/%d", itemID), &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (c *HTTPClient) ClaimsByUser(ctx context.Context, userID int64) ([]domain.Claim, error) {
	var claims []domain.Claim
	if err := c.getJSON(ctx, fmt.Sprintf("/api/claims/user/%d", userID), &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (c *HTTPClient) CreateClaim(ctx context.Context, claim domain.NewClaim, proofImagePath string) (string, error) {
	return c.uploadMultipart(ctx, "/api/claims", "claimData", claim, "proofImage", proofImagePath)
}

func (c *HTTPClient) ForwardClaim(ctx context.Context, claimID, userID int64) (string, error) {
	return c.claimAction(ctx, claimID, "forward-to-admin", map[string]any{"userId": userID})
}

func (c *HTTPClient) ApproveClaim(ctx context.Context, claimID, userID int64) (string, error) {
	return c.claimAction(ctx, claimID, "approve", map[string]any{"userId": userID})
}

func (c *HTTPClient) RejectClaim(ctx context.Context, claimID, userID int64, reason string) (string, error) {
	body := map[string]any{"userId": userID}
	if reason != "" {
		body["rejectionReason"] = reason
	}
	return c.claimAction(ctx, claimID, "reject", body)
}

func (c *HTTPClient) claimAction(ctx context.Context, claimID int64, action string, body map[string]any) (string, error) {
	var out message
	path := fmt.Sprintf("/api/claims/%d/%s", claimID, action)
	if err := c.sendJSON(ctx, http.MethodPut, path, body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) AdminReviewClaims(ctx context.Context) ([]domain.Claim, error) {
	var claims []domain.Claim
	if err := c.getJSON(ctx, "/api/claims/admin-review", &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (c *HTTPClient) RequestVerification(ctx context.Context, claimID, userID int64) (string, error) {
	var out message
	body := map[string]any{"claimId": claimID, "userId": userID}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/verification/request", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) SubmitVerification(ctx context.Context, code string, claimID int64) (string, error) {
	var out message
	body := map[string]any{"code": code, "claimId": claimID}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/verification/verify", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// uploadMultipart sends a multipart form with one JSON part and an optional
// image part. The image content type is inferred from the file extension,
// falling back to application/octet-stream.
func (c *HTTPClient) uploadMultipart(ctx context.Context, path, jsonField string, payload any, fileField, filePath string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	jsonHeader := textproto.MIMEHeader{}
	jsonHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, jsonField))
	jsonHeader.Set("Content-Type", "application/json")
	part, err := writer.CreatePart(jsonHeader)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}

	if filePath != "" {
		if err := writeFilePart(writer, fileField, filePath); err != nil {
			return "", err
		}
	}

	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out message
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func writeFilePart(writer *multipart.Writer, field, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(filePath)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	return nil
}
