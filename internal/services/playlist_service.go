package services

import (
	"net/url"

	"vdpcza/internal/models/response_models"
)

type PlaylistServiceInterface interface {
	Get() response_models.PlaylistResponse
}

type PlaylistService struct {
	spotifyID string
	youtubeID string
}

func NewPlaylistService(spotifyID, youtubeID string) *PlaylistService {
	return &PlaylistService{spotifyID: spotifyID, youtubeID: youtubeID}
}

func (p *PlaylistService) Get() response_models.PlaylistResponse {
	var resp response_models.PlaylistResponse
	if p.spotifyID != "" {
		resp.SpotifyEmbedURL = "https://open.spotify.com/embed/playlist/" + url.PathEscape(p.spotifyID) + "?utm_source=generator&theme=0"
	}
	if p.youtubeID != "" {
		resp.YouTubeEmbedURL = "https://www.youtube.com/embed/videoseries?list=" + url.QueryEscape(p.youtubeID)
	}
	return resp
}
