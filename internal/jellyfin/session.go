package jellyfin

import (
	"fmt"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// ReportPlaybackStart notifies the server that playback has started.
func (c *Client) ReportPlaybackStart(itemID, playSessionID string, positionTicks int64) error {
	body := *jellyfin.NewPlaybackStartInfo()
	body.SetItemId(itemID)
	body.SetPlaySessionId(playSessionID)
	body.SetPositionTicks(positionTicks)
	body.SetCanSeek(true)
	body.SetPlayMethod(jellyfin.PLAYMETHOD_DIRECT_PLAY)

	_, err := c.api.PlaystateAPI.ReportPlaybackStart(c.ctx).PlaybackStartInfo(body).Execute()
	if err != nil {
		return fmt.Errorf("report playback start: %w", err)
	}
	return nil
}

// ReportPlaybackProgress sends a progress update to the server.
func (c *Client) ReportPlaybackProgress(itemID, playSessionID string, positionTicks int64, isPaused bool) error {
	body := *jellyfin.NewPlaybackProgressInfo()
	body.SetItemId(itemID)
	body.SetPlaySessionId(playSessionID)
	body.SetPositionTicks(positionTicks)
	body.SetIsPaused(isPaused)
	body.SetCanSeek(true)
	body.SetPlayMethod(jellyfin.PLAYMETHOD_DIRECT_PLAY)

	_, err := c.api.PlaystateAPI.ReportPlaybackProgress(c.ctx).PlaybackProgressInfo(body).Execute()
	if err != nil {
		return fmt.Errorf("report progress: %w", err)
	}
	return nil
}

// ReportPlaybackStopped notifies the server that playback has stopped.
func (c *Client) ReportPlaybackStopped(itemID, playSessionID string, positionTicks int64) error {
	body := *jellyfin.NewPlaybackStopInfo()
	body.SetItemId(itemID)
	body.SetPlaySessionId(playSessionID)
	body.SetPositionTicks(positionTicks)

	_, err := c.api.PlaystateAPI.ReportPlaybackStopped(c.ctx).PlaybackStopInfo(body).Execute()
	if err != nil {
		return fmt.Errorf("report playback stopped: %w", err)
	}
	return nil
}
