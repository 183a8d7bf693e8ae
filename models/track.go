package models

// Track is a single catalog entry in the shape the frontend consumes.
// It is the reduced projection of the upstream catalog's track payload.
type Track struct {
	// ID is the upstream catalog identifier of the track.
	ID int64 `json:"id"`

	// Title is the track title as reported by the catalog.
	Title string `json:"title"`

	// Artist is the display string of all performing artists joined
	// with ", ".
	Artist string `json:"artist"`

	// Duration is the track length in whole seconds, truncated.
	Duration int64 `json:"duration"`

	// Cover is the fully resolved cover image URL, or an empty string when
	// the catalog provided none.
	Cover string `json:"cover"`
}

// TrackList is the response envelope of the music endpoint.
type TrackList struct {
	Tracks []Track `json:"tracks"`
}

// NewTrackList wraps tracks into the response envelope. A nil slice becomes
// an empty one so the JSON field is always an array, never null.
func NewTrackList(tracks []Track) TrackList {
	if tracks == nil {
		tracks = []Track{}
	}
	return TrackList{Tracks: tracks}
}
