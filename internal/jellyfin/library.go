package jellyfin

import (
	"fmt"

	jellyfin "github.com/sj14/jellyfin-go/api"

	"github.com/depeter/scrubbar/internal/constants"
)

// Track is a simplified representation of a Jellyfin audio item.
type Track struct {
	ID                   string
	Name                 string
	Album                string
	AlbumID              string
	AlbumPrimaryImageTag string
	Artists              []string
	RuntimeTicks         int64
	ImageTags            map[string]string
}

// Duration returns the runtime in seconds, or 0 when the server does not know it.
func (t *Track) Duration() float64 {
	return float64(t.RuntimeTicks) / constants.TicksPerSecond
}

// Title is the label shown above the bar: "Artist - Name" when an artist is known.
func (t *Track) Title() string {
	if len(t.Artists) == 0 {
		return t.Name
	}
	return t.Artists[0] + " - " + t.Name
}

// ArtworkItem returns the item and tag to fetch artwork from: the track's own
// primary image, else its album's.
func (t *Track) ArtworkItem() (itemID, tag string, ok bool) {
	if tag := t.ImageTags[string(ImagePrimary)]; tag != "" {
		return t.ID, tag, true
	}
	if t.AlbumID != "" && t.AlbumPrimaryImageTag != "" {
		return t.AlbumID, t.AlbumPrimaryImageTag, true
	}
	return "", "", false
}

// SearchTracks searches audio items by name.
func (c *Client) SearchTracks(query string, limit int) ([]Track, error) {
	result, _, err := c.api.ItemsAPI.GetItems(c.ctx).
		UserId(c.userID).
		SearchTerm(query).
		Limit(int32(limit)).
		Recursive(true).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY}).
		IncludeItemTypes([]jellyfin.BaseItemKind{jellyfin.BASEITEMKIND_AUDIO}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return convertItems(result.Items), nil
}

// GetTrack returns a single audio item by ID.
func (c *Client) GetTrack(itemID string) (*Track, error) {
	result, _, err := c.api.UserLibraryAPI.GetItem(c.ctx, itemID).
		UserId(c.userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	t := convertBaseItemDto(result)
	return &t, nil
}

func convertItems(items []jellyfin.BaseItemDto) []Track {
	result := make([]Track, 0, len(items))
	for _, item := range items {
		result = append(result, convertBaseItemDto(&item))
	}
	return result
}

func convertBaseItemDto(item *jellyfin.BaseItemDto) Track {
	t := Track{}
	if item.Id != nil {
		t.ID = *item.Id
	}
	t.Name = item.GetName()
	t.Album = item.GetAlbum()
	t.AlbumID = item.GetAlbumId()
	t.AlbumPrimaryImageTag = item.GetAlbumPrimaryImageTag()
	t.Artists = item.GetArtists()
	t.RuntimeTicks = item.GetRunTimeTicks()

	if len(item.ImageTags) > 0 {
		t.ImageTags = make(map[string]string)
		for k, v := range item.ImageTags {
			t.ImageTags[k] = v
		}
	}
	return t
}
