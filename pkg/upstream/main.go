/*
Copyright © 2025 ExistTV Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package upstream wraps a fasthttp client for fetching third-party playlist
// resources.
package upstream

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/elnormous/contenttype"
	"github.com/valyala/fasthttp"
)

type Connection struct {
	client  *fasthttp.Client
	headers map[string]string
}

func New(headers map[string]string) *Connection {
	return &Connection{
		client: &fasthttp.Client{
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		headers: headers,
	}
}

// Get fetches the URI, following up to 10 redirects, and returns the body,
// the final status code, and the negotiated media type.
func (u *Connection) Get(uri string) ([]byte, int, contenttype.MediaType, error) {
	const maxRedirects = 10
	currentURL := uri

	for i := 0; i < maxRedirects; i++ {
		req := fasthttp.AcquireRequest()
		req.SetRequestURI(currentURL)
		req.Header.SetMethod(fasthttp.MethodGet)
		for key, value := range u.headers {
			req.Header.Set(key, value)
		}

		resp := fasthttp.AcquireResponse()
		err := u.client.Do(req, resp)
		fasthttp.ReleaseRequest(req)
		if err != nil {
			fasthttp.ReleaseResponse(resp)
			return nil, 0, contenttype.MediaType{}, err
		}

		statusCode := resp.StatusCode()
		ct := contenttype.NewMediaType(string(resp.Header.ContentType()))

		if statusCode/100 == 3 {
			location := resp.Header.Peek("Location")
			if location == nil {
				fasthttp.ReleaseResponse(resp)
				return nil, statusCode, ct, fmt.Errorf("redirect response missing Location header")
			}
			next, err := ResolveLocation(currentURL, string(location))
			fasthttp.ReleaseResponse(resp)
			if err != nil {
				return nil, statusCode, ct, err
			}
			currentURL = next
			continue
		}

		body := append([]byte(nil), resp.Body()...)
		fasthttp.ReleaseResponse(resp)
		return body, statusCode, ct, nil
	}

	return nil, 0, contenttype.MediaType{}, fmt.Errorf("too many redirects fetching %s", uri)
}

// ResolveLocation resolves a redirect Location header, which may be relative,
// against the URL that produced it.
func ResolveLocation(current, location string) (string, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return location, nil
	}
	baseURL, err := url.Parse(current)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	relativeURL, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("failed to parse relative URL: %w", err)
	}
	return baseURL.ResolveReference(relativeURL).String(), nil
}
