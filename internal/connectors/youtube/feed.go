package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"github.com/quill-labs/tscribe-cli/internal/core/ports/driven"
)

// feedURL is the public Atom feed listing a channel's latest uploads.
const feedURL = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"

// atomFeed is the subset of the channel feed we read. Video IDs live in
// the yt: namespace, publication dates in plain Atom.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []feedEntry `xml:"entry"`
}

type feedEntry struct {
	VideoID   string `xml:"http://www.youtube.com/xml/schemas/2015 videoId"`
	Title     string `xml:"title"`
	Published string `xml:"published"`
}

// listViaFeed lists uploads from the channel's public Atom feed. The feed
// only exposes the most recent uploads (about 15), which is enough for
// incremental fetching.
func (c *Connector) listViaFeed(ctx context.Context, channelID string, limit int) ([]driven.VideoEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(feedURL, channelID), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch channel feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("channel feed returned status %d for %s", resp.StatusCode, channelID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read channel feed: %w", err)
	}

	feed, err := parseFeed(body)
	if err != nil {
		return nil, fmt.Errorf("parse channel feed: %w", err)
	}

	entries := make([]driven.VideoEntry, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		if e.VideoID == "" {
			continue
		}
		entries = append(entries, driven.VideoEntry{
			VideoID:   e.VideoID,
			Title:     e.Title,
			Published: e.Published,
		})
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries, nil
}

// parseFeed decodes the Atom XML payload.
func parseFeed(data []byte) (*atomFeed, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}
