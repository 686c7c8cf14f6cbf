package constants

// TicksPerSecond is the Jellyfin ticks-per-second factor (100ns ticks).
const TicksPerSecond = 10_000_000

// SecondsToTicks converts a playback position to Jellyfin ticks.
func SecondsToTicks(seconds float64) int64 {
	if !(seconds > 0) {
		return 0
	}
	return int64(seconds * TicksPerSecond)
}

// ArtworkSize is the edge length, in pixels, artwork is requested at.
const ArtworkSize = 96
