package gallery

import (
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

// ImageLoader fetches (or verifies) a full-resolution image ahead of
// display. The viewer calls it off the operation path and reacts to the
// result, so implementations may block.
type ImageLoader interface {
	Load(url string) error
}

// HTTPLoader probes the image over HTTP. The body is discarded; the
// point is to know whether the swap to the full image can happen or the
// placeholder has to take its slot.
type HTTPLoader struct {
	client *fasthttp.Client
}

func NewHTTPLoader(timeout time.Duration) *HTTPLoader {
	return &HTTPLoader{client: &fasthttp.Client{
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}}
}

func (l *HTTPLoader) Load(url string) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodHead)

	if err := l.client.Do(req, resp); err != nil {
		return fmt.Errorf("probe image '%s': %w", url, err)
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("probe image '%s': unexpected status %d", url, resp.StatusCode())
	}
	return nil
}
