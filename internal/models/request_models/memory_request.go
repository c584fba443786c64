package request_models

import "io"

type CreateAlbumRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	CoverURL string `json:"cover_url" binding:"omitempty,url"`
}

// UploadMemoryRequest is bound from the multipart form next to the file part.
type UploadMemoryRequest struct {
	Description string `form:"description"`
	Date        string `form:"date"`
	AlbumID     string `form:"album_id" binding:"omitempty,uuid"`
}

// UploadFile is a single file part handed from the controller to a service.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
