package controllers

import (
	"io"
	"mime/multipart"

	"vdpcza/internal/models/request_models"
)

const uploadField = "file"

// openUpload hands an uploaded part to a service. The caller closes the returned file.
func openUpload(fh *multipart.FileHeader) (request_models.UploadFile, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return request_models.UploadFile{}, nil, err
	}
	return request_models.UploadFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, f, nil
}
