package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type MemoryController struct {
	memoryService services.MemoryServiceInterface
}

func NewMemoryController(memoryService services.MemoryServiceInterface) *MemoryController {
	return &MemoryController{memoryService: memoryService}
}

// ListAlbums godoc
// @Summary List albums
// @Tags Memories
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]db_models.Album}
// @Security BearerAuth
// @Router /albums [get]
func (m *MemoryController) ListAlbums(c *gin.Context) {
	albums, err := m.memoryService.ListAlbums(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, albums, "")
}

// CreateAlbum godoc
// @Summary Create an album
// @Tags Memories
// @Accept json
// @Produce json
// @Param request body request_models.CreateAlbumRequest true "Album"
// @Success 201 {object} utils.APIResponse{data=db_models.Album}
// @Security BearerAuth
// @Router /albums [post]
func (m *MemoryController) CreateAlbum(c *gin.Context) {
	var req request_models.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	album, err := m.memoryService.CreateAlbum(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, album, "Album created")
}

// ListMemories godoc
// @Summary List photos, newest date first
// @Tags Memories
// @Produce json
// @Param album_id query string false "Only photos in this album"
// @Success 200 {object} utils.APIResponse{data=[]db_models.Memory}
// @Security BearerAuth
// @Router /memories [get]
func (m *MemoryController) ListMemories(c *gin.Context) {
	var albumID *uuid.UUID
	if raw := c.Query("album_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid album_id")
			return
		}
		albumID = &id
	}

	memories, err := m.memoryService.ListMemories(c.Request.Context(), albumID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, memories, "")
}

// UploadMemory godoc
// @Summary Upload a photo
// @Tags Memories
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Param description formData string false "Caption"
// @Param date formData string false "YYYY-MM-DD, defaults to today"
// @Param album_id formData string false "Album ID"
// @Success 201 {object} utils.APIResponse{data=db_models.Memory}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /memories/upload [post]
func (m *MemoryController) UploadMemory(c *gin.Context) {
	var req request_models.UploadMemoryRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	fh, err := c.FormFile(uploadField)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A file is required")
		return
	}
	file, closer, err := openUpload(fh)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read the file")
		return
	}
	defer closer.Close()

	memory, err := m.memoryService.Upload(c.Request.Context(), utils.CurrentSession(c).UserID, req, file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, memory, "Memory uploaded")
}
