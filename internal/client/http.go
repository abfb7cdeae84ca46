package client

import (
	"context"
	"time"

	"github.com/valyala/fasthttp"
)

// doGet executes a GET request honoring the context deadline when one is set.
// The returned body is detached from the fasthttp response and safe to keep.
func doGet(ctx context.Context, client *fasthttp.Client, requestURL string, timeout time.Duration, headers map[string]string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetContentType("application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return do(ctx, client, req, timeout)
}

// doPost executes a POST request with a JSON payload.
func doPost(ctx context.Context, client *fasthttp.Client, requestURL string, payload []byte, timeout time.Duration, headers map[string]string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	req.SetBody(payload)

	return do(ctx, client, req, timeout)
}

func do(ctx context.Context, client *fasthttp.Client, req *fasthttp.Request, timeout time.Duration) ([]byte, int, error) {
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := client.DoDeadline(req, resp, deadline); err != nil {
			return nil, 0, err
		}
	} else {
		if err := client.DoTimeout(req, resp, timeout); err != nil {
			return nil, 0, err
		}
	}

	body := append([]byte(nil), resp.Body()...)
	return body, resp.StatusCode(), nil
}
