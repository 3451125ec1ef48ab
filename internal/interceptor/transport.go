package interceptor

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// Transport is an [http.RoundTripper] that runs the Interceptor on JSON
// request bodies before they are sent and on successful JSON responses
// before the caller reads them. It never mutates the caller's request.
type Transport struct {
	Base        http.RoundTripper
	Interceptor *Interceptor

	// BasePath is the path the API is mounted under on the server
	// (e.g. "/vault"). It is stripped before the registry is consulted.
	BasePath string
}

// NewTransport wraps base. A nil base means http.DefaultTransport.
func NewTransport(base http.RoundTripper, i *Interceptor) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Base: base, Interceptor: i}
}

// WithBasePath sets [Transport.BasePath] and returns t.
func (t *Transport) WithBasePath(p string) *Transport {
	t.BasePath = strings.TrimRight(p, "/")
	return t
}

// route maps a request path onto the API path the registry is keyed by.
func (t *Transport) route(p string) string {
	if t.BasePath == "" {
		return p
	}
	rest, ok := strings.CutPrefix(p, t.BasePath)
	if !ok || (rest != "" && rest[0] != '/') {
		return p
	}
	if rest == "" {
		return "/"
	}
	return rest
}

// RoundTrip implements [http.RoundTripper].
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	path := t.route(req.URL.Path)
	if !t.Interceptor.Applies(path) {
		return t.Base.RoundTrip(req)
	}

	out := req
	if req.Body != nil && req.Body != http.NoBody && isJSON(req.Header.Get("Content-Type")) {
		body, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}

		sealed, err := t.Interceptor.EncryptRequestPayload(path, body)
		if err != nil {
			return nil, err
		}

		out = req.Clone(req.Context())
		out.Body = io.NopCloser(bytes.NewReader(sealed))
		out.ContentLength = int64(len(sealed))
		out.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(sealed)), nil
		}
	}

	resp, err := t.Base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || resp.Body == nil || !isJSON(resp.Header.Get("Content-Type")) {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	opened, err := t.Interceptor.DecryptResponsePayload(path, body)
	if err != nil {
		return nil, err
	}

	resp.Body = io.NopCloser(bytes.NewReader(opened))
	resp.ContentLength = int64(len(opened))
	resp.Header.Set("Content-Length", strconv.Itoa(len(opened)))
	return resp, nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || (len(mediaType) > 5 && mediaType[len(mediaType)-5:] == "+json")
}
