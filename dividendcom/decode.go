package dividendcom

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/htmlindex"
)

const acceptEncoding = "gzip, deflate, br, zstd"

// decodeBody returns the response body uncompressed and converted to
// UTF-8. The caller closes both the result and resp.Body.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	r, err := uncompress(
		resp.Body,
		resp.Header.Get("Content-Encoding"),
	)
	if err != nil {
		return nil, err
	}

	return toUTF8(r, resp.Header.Get("Content-Type")), nil
}

func uncompress(body io.Reader, encoding string) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return io.NopCloser(body), nil
	case "gzip", "x-gzip":
		return gzip.NewReader(body)
	case "deflate":
		return flate.NewReader(body), nil
	case "br":
		return io.NopCloser(brotli.NewReader(body)), nil
	case "zstd":
		zr, err := zstd.NewReader(body)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("unsupported content encoding: %s", encoding)
	}
}

// toUTF8 decodes the charset named in the content type. Unknown or
// missing charsets leave the body as it is.
func toUTF8(r io.ReadCloser, contentType string) io.ReadCloser {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return r
	}
	name := params["charset"]
	if name == "" {
		return r
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return r
	}
	if n, _ := htmlindex.Name(enc); n == "utf-8" {
		return r
	}

	return &readCloser{
		Reader: enc.NewDecoder().Reader(r),
		Closer: r,
	}
}

type readCloser struct {
	io.Reader
	io.Closer
}
