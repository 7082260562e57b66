package transport

import (
	"encoding/base64"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ds124wfegd/meme-generator/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *MemeHandler) FinalizeMeme(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !isValidImageType(ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type. Supported: jpg, jpeg, png, gif"})
		return
	}

	// empty caption text is rejected here, the renderer assumes non-empty
	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'text' field."})
		return
	}

	position := strings.ToLower(strings.TrimSpace(c.DefaultPostForm("position", "bottom")))
	filterName := strings.ToLower(strings.TrimSpace(c.PostForm("filter")))

	raw, _, err := readUpload(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.FinalizeMeme(c.Request.Context(), raw, text, position, filterName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entity.FinalizeResponse{
		ImageBase64: base64.StdEncoding.EncodeToString(out),
	})
}

func (h *MemeHandler) GenerateCaptions(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	raw, mime, err := readUpload(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	suggestion, err := h.service.GenerateCaptions(c.Request.Context(), raw, mime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

func readUpload(file *multipart.FileHeader) ([]byte, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, "", err
	}

	mime := file.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/png"
	}
	return raw, mime, nil
}

func isValidImageType(ext string) bool {
	validTypes := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
	}
	return validTypes[ext]
}
