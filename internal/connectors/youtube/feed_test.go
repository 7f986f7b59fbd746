package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tscribe-cli/internal/core/domain"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns="http://www.w3.org/2005/Atom">
  <title>Channel uploads</title>
  <entry>
    <id>yt:video:abc123</id>
    <yt:videoId>abc123</yt:videoId>
    <title>Gold Is Moving</title>
    <published>2023-01-05T12:00:00+00:00</published>
  </entry>
  <entry>
    <id>yt:video:def456</id>
    <yt:videoId>def456</yt:videoId>
    <title>Housing Crash Update</title>
    <published>2023-01-03T12:00:00+00:00</published>
  </entry>
</feed>`

func TestParseFeed(t *testing.T) {
	feed, err := parseFeed([]byte(sampleFeed))

	require.NoError(t, err)
	require.Len(t, feed.Entries, 2)
	assert.Equal(t, "abc123", feed.Entries[0].VideoID)
	assert.Equal(t, "Gold Is Moving", feed.Entries[0].Title)
	assert.Equal(t, "2023-01-05T12:00:00+00:00", feed.Entries[0].Published)
}

func TestParseFeed_Malformed(t *testing.T) {
	_, err := parseFeed([]byte("<feed><entry>"))

	assert.Error(t, err)
}

func TestListVideos_ViaFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "UCtest", r.URL.Query().Get("channel_id"))
		fmt.Fprint(w, sampleFeed)
	}))
	defer server.Close()

	c := New(Config{})
	// Point the client at the test server regardless of requested host
	c.client.Transport = rewriteTransport{target: server.URL}

	entries, err := c.ListVideos(context.Background(), "UCtest", 0)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "abc123", entries[0].VideoID)
	assert.Equal(t, "def456", entries[1].VideoID)
}

func TestListVideos_HonoursLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, sampleFeed)
	}))
	defer server.Close()

	c := New(Config{})
	c.client.Transport = rewriteTransport{target: server.URL}

	entries, err := c.ListVideos(context.Background(), "UCtest", 1)

	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestListVideos_EmptyChannelID(t *testing.T) {
	c := New(Config{})

	_, err := c.ListVideos(context.Background(), "  ", 10)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFetchCaptions_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(Config{})
	c.client.Transport = rewriteTransport{target: server.URL}

	_, err := c.FetchCaptions(context.Background(), "abc123", "en")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchCaptions_EmptyBodyIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	defer server.Close()

	c := New(Config{})
	c.client.Transport = rewriteTransport{target: server.URL}

	_, err := c.FetchCaptions(context.Background(), "abc123", "en")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchCaptions_ReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc123", r.URL.Query().Get("v"))
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		assert.Equal(t, "vtt", r.URL.Query().Get("fmt"))
		fmt.Fprint(w, "WEBVTT\n\n00:00:00.000 --> 00:00:02.000\nhello")
	}))
	defer server.Close()

	c := New(Config{})
	c.client.Transport = rewriteTransport{target: server.URL}

	vtt, err := c.FetchCaptions(context.Background(), "abc123", "")

	require.NoError(t, err)
	assert.Contains(t, vtt, "WEBVTT")
}

// rewriteTransport redirects every request to the test server while
// preserving path and query.
type rewriteTransport struct {
	target string
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	redirected := *req
	u := *req.URL
	u.Scheme = "http"
	u.Host = t.target[len("http://"):]
	redirected.URL = &u
	return http.DefaultTransport.RoundTrip(&redirected)
}
