package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/touchpointee/avanyaa-store/internal/storage"
)

const maxUploadBytes = 10 << 20

// UploadImage stores an admin-submitted image in the object store and
// returns its public URL.
func UploadImage(store *storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/upload"
		defer handlePanic(c, route)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "file is required")
			return
		}
		if fileHeader.Size > maxUploadBytes {
			respondWithError(c, http.StatusBadRequest, route, "file too large")
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			respondWithError(c, http.StatusBadRequest, route, "only image uploads are allowed")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "could not read file")
			return
		}
		defer file.Close()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		url, err := store.Upload(ctx, fileHeader.Filename, contentType, fileHeader.Size, file)
		if err != nil {
			log.Printf("[%s] upload failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "upload failed")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}

// DeleteImage removes a previously uploaded image by its public URL.
// Best-effort: unknown URLs succeed.
func DeleteImage(store *storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/upload"
		defer handlePanic(c, route)

		url := strings.TrimSpace(c.Query("url"))
		if url == "" {
			respondWithError(c, http.StatusBadRequest, route, "url is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		if err := store.Delete(ctx, url); err != nil {
			log.Printf("[%s] delete failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "delete failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
	}
}
