package handler

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// UploadImage 是图片上传的演示桩：返回一个虚构地址，不落盘。
// TODO: replace with real object-store uploads once the image pipeline
// is in scope.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "image file is required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url": fmt.Sprintf("/static/uploads/demo-%s", filepath.Base(file.Filename)),
		"alt": file.Filename,
	})
}
