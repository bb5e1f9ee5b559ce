package chrome_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"szakszon.com/dividendscrape"
	"szakszon.com/dividendscrape/chrome"
)

// Pages are never loaded here, a browser is not needed: the address is
// checked before one starts.
func TestFetchInvalidAddress(t *testing.T) {
	tests := []struct {
		name string
		url  *url.URL
	}{
		{name: "nil", url: nil},
		{name: "file", url: &url.URL{Scheme: "file", Path: "/etc/passwd"}},
		{name: "no host", url: &url.URL{Scheme: "https"}},
	}

	f := chrome.NewFetcher(
		chrome.Timeout(time.Second),
		chrome.UserAgent("test-agent"),
		chrome.Headless(true),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.Fetch(
				context.Background(),
				&dividendscrape.FetchInput{URL: tt.url},
			)
			require.ErrorIs(t, err, dividendscrape.ErrInvalidAddress)
			require.Nil(t, out)
		})
	}
}

func TestFetchMissingBrowser(t *testing.T) {
	f := chrome.NewFetcher(
		chrome.Timeout(5*time.Second),
		chrome.ExecPath("/nonexistent/chrome"),
	)

	u, err := url.Parse("http://127.0.0.1:1/")
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), &dividendscrape.FetchInput{URL: u})
	require.Error(t, err)
	require.NotErrorIs(t, err, dividendscrape.ErrInvalidAddress)
}
