package jellyfin

import (
	"fmt"
	"net/url"
)

// GetAudioStreamURL returns a direct-play streaming URL for an audio item,
// tagged with the play session the reporter uses.
func (c *Client) GetAudioStreamURL(itemID, playSessionID string) string {
	params := url.Values{}
	params.Set("Static", "true")
	params.Set("api_key", c.token)
	params.Set("DeviceId", c.deviceID)
	if playSessionID != "" {
		params.Set("PlaySessionId", playSessionID)
	}
	return fmt.Sprintf("%s/Audio/%s/stream?%s",
		c.serverURL, url.PathEscape(itemID), params.Encode())
}
