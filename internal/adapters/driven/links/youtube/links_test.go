package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupURL(t *testing.T) {
	b := New()

	url := b.LookupURL("Gold & Silver: What's Next?")

	assert.Equal(t, "https://www.youtube.com/results?search_query=Gold+%26+Silver%3A+What%27s+Next%3F", url)
}

func TestLookupURL_EmptyTitle(t *testing.T) {
	assert.Empty(t, New().LookupURL(""))
}
