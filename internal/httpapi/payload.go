package httpapi

import "github.com/mesh-intelligence/mediarack/pkg/types"

// createMediaRequest is the POST /media body. All fields are required; the
// id is assigned by the store.
type createMediaRequest struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Location string `json:"location"`
	Format   string `json:"format"`
}

func (r createMediaRequest) toItem() types.MediaItem {
	return types.MediaItem{
		Title:    r.Title,
		Artist:   r.Artist,
		Location: r.Location,
		Format:   r.Format,
	}
}

// deleteResponse confirms a successful DELETE /media/{id}.
type deleteResponse struct {
	Message string `json:"message"`
}
