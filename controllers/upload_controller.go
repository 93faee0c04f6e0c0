package controllers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/resp"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

const maxUploadBytes = 5 << 20

// UploadController stores dish and profile photos under a local directory
// served by the static file route. Files are renamed to a random name so
// uploads can never collide or overwrite each other.
type UploadController struct {
	Dir     string
	BaseURL string
}

func NewUploadController(dir, baseURL string) *UploadController {
	return &UploadController{Dir: dir, BaseURL: baseURL}
}

// POST /uploads (multipart field "file")
func (h *UploadController) Upload(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "missing file")
		return
	}
	if file.Size > maxUploadBytes {
		resp.BadRequest(c, "file too large")
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		resp.BadRequest(c, "unsupported file type")
		return
	}

	filename := fmt.Sprintf("u%d_%s%s", userID, uuid.NewString(), ext)
	savePath := filepath.Join(h.Dir, filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"url": fmt.Sprintf("%s/uploads/%s", h.BaseURL, filename)})
}
