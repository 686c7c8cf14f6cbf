package jellyfin

import (
	"fmt"
	"net/url"
)

// ImageType represents different image types.
type ImageType string

const ImagePrimary ImageType = "Primary"

// GetImageURL constructs a URL for an item's image.
func (c *Client) GetImageURL(itemID string, imgType ImageType, maxWidth, maxHeight int) string {
	u := fmt.Sprintf("%s/Items/%s/Images/%s", c.serverURL, url.PathEscape(itemID), string(imgType))
	params := url.Values{}
	if maxWidth > 0 {
		params.Set("maxWidth", fmt.Sprintf("%d", maxWidth))
	}
	if maxHeight > 0 {
		params.Set("maxHeight", fmt.Sprintf("%d", maxHeight))
	}
	params.Set("quality", "90")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// GetArtworkURL returns the square album art URL for a track, and false when
// neither the track nor its album has a primary image.
func (c *Client) GetArtworkURL(t *Track, size int) (string, bool) {
	itemID, tag, ok := t.ArtworkItem()
	if !ok {
		return "", false
	}
	u := c.GetImageURL(itemID, ImagePrimary, size, size)
	return u + "&tag=" + url.QueryEscape(tag), true
}
