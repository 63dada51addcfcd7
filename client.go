package respond

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// DefaultBaseURL is the default base URL for the OpenAI API.
const DefaultBaseURL = "https://api.openai.com/v1"

// Client talks to the provider's files and responses endpoints. Each call is
// a single blocking request/response exchange with no retry behavior; the
// caller-supplied HTTP client's timeout is the only deadline.
type Client struct {
	// APIKey is the bearer token used for requests.
	APIKey string

	// HTTPClient is the HTTP client to use for requests.
	// If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// Organization, when set, is attached as the OpenAI-Organization header.
	//
	// https://platform.openai.com/docs/api-reference/authentication
	Organization string

	// BaseURL is the base URL for the API.
	BaseURL string
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithHTTPClient is a ClientOption that sets the HTTP client to use for
// requests.
//
// If the client is nil, then http.DefaultClient is used.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		if c == nil {
			c = http.DefaultClient
		}
		client.HTTPClient = c
	}
}

// WithOrganization is a ClientOption that sets the organization to use for
// requests.
func WithOrganization(org string) ClientOption {
	return func(client *Client) {
		client.Organization = org
	}
}

// WithBaseURL is a ClientOption that points the client at a different API
// base URL, e.g. a compatible gateway.
func WithBaseURL(baseURL string) ClientOption {
	return func(client *Client) {
		client.BaseURL = strings.TrimRight(baseURL, "/")
	}
}

// NewClient returns a new Client with the given API key.
//
// # Example
//
//	c := respond.NewClient(os.Getenv("OPENAI_API_KEY"))
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		APIKey:     apiKey,
		HTTPClient: http.DefaultClient,
		BaseURL:    DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) setHeaders(r *http.Request) {
	r.Header.Set("Authorization", "Bearer "+c.APIKey)

	if c.Organization != "" {
		r.Header.Set("OpenAI-Organization", c.Organization)
	}
}

// CreateResponse performs a single completion call against the responses
// endpoint. Non-2xx responses decode into an [*APIError]; exceeding the
// HTTP client's deadline surfaces as a [*TimeoutError].
//
// https://platform.openai.com/docs/api-reference/responses/create
func (c *Client) CreateResponse(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	c.setHeaders(r)
	r.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(r)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(resp)
	}

	apiResp := &Response{}
	if err := json.NewDecoder(resp.Body).Decode(apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return apiResp, nil
}

// UploadFileRequest describes binary content to upload before attaching it
// to a completion request.
//
// https://platform.openai.com/docs/api-reference/files/create
type UploadFileRequest struct {
	// Name of the file, used as the multipart filename.
	//
	// Required.
	Name string

	// Purpose of the uploaded file, e.g. "user_data" for responses inputs.
	//
	// Required.
	Purpose string

	// ContentType of the body. Optional; when set it is attached to the
	// multipart file part.
	ContentType string

	// Body of the file to upload.
	//
	// Required.
	Body io.Reader
}

// UploadFileResponse is the provider's file object.
type UploadFileResponse struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Bytes     int    `json:"bytes"`
	CreatedAt int    `json:"created_at"`
	Filename  string `json:"filename"`
	Purpose   string `json:"purpose"`
}

// UploadFile performs a multipart upload and returns the provider-assigned
// file identifier.
//
// # CURL
//
//	$ curl "https://api.openai.com/v1/files" \
//	 -H "Authorization: Bearer ..." \
//	 -F purpose="user_data" \
//	 -F file='@report.pdf'
//
// https://platform.openai.com/docs/api-reference/files/create
func (c *Client) UploadFile(ctx context.Context, req *UploadFileRequest) (*UploadFileResponse, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	fw, err := createFilePart(w, req.Name, req.ContentType)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(fw, req.Body); err != nil {
		return nil, err
	}

	if err := w.WriteField("purpose", req.Purpose); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/files", &b)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	c.setHeaders(r)
	r.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient().Do(r)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(resp)
	}

	upResp := &UploadFileResponse{}
	if err := json.NewDecoder(resp.Body).Decode(upResp); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}

	return upResp, nil
}

// createFilePart writes the file part header, carrying the content type
// through when the caller knows it.
func createFilePart(w *multipart.Writer, name, contentType string) (io.Writer, error) {
	if contentType == "" {
		return w.CreateFormFile("file", name)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	h.Set("Content-Type", contentType)
	return w.CreatePart(h)
}
