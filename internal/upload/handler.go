// Package upload implementa el endpoint de subida de imágenes: recibe el
// archivo crudo, lo recorta y escala a un cuadrado de 300x300 y lo deja
// en el blob store, devolviendo la URL pública.
package upload

import (
	"bytes"
	"encoding/json"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"path"
	"strings"

	_ "image/gif" // registra el decoder; los gif se reencodan como jpeg

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"animal-registry/internal/blob"
	"animal-registry/internal/platform/logger"
)

const (
	targetSize     = 300
	maxUploadBytes = 10 << 20 // 10 MiB
)

func Handler(store blob.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := strings.TrimSpace(r.URL.Query().Get("filename"))

		body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to upload image.")
			return
		}

		if filename == "" || len(body) == 0 {
			writeError(w, http.StatusBadRequest, "Filename and file content are required.")
			return
		}

		src, format, err := image.Decode(bytes.NewReader(body))
		if err != nil {
			log.Warn("upload: undecodable image", map[string]any{"filename": filename, "err": err.Error()})
			writeError(w, http.StatusInternalServerError, "Failed to upload image.")
			return
		}

		resized := coverResize(src, targetSize)

		var (
			buf         bytes.Buffer
			contentType string
		)
		if format == "png" {
			contentType = "image/png"
			err = png.Encode(&buf, resized)
		} else {
			contentType = "image/jpeg"
			err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 90})
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to upload image.")
			return
		}

		info, err := store.Put(r.Context(), uniqueKey(filename, contentType), &buf, contentType)
		if err != nil {
			log.Error("upload: blob put failed", map[string]any{"filename": filename, "err": err.Error()})
			writeError(w, http.StatusInternalServerError, "Failed to upload image.")
			return
		}

		log.Info("upload: image stored", map[string]any{"key": info.Key, "size": info.Size})
		writeJSON(w, http.StatusOK, info)
	}
}

// coverResize recorta el centro cuadrado de la imagen y lo escala al
// tamaño pedido (mismo resultado que un fit "cover").
func coverResize(src image.Image, size int) image.Image {
	b := src.Bounds()

	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}

// uniqueKey agrega un sufijo aleatorio al nombre para no pisar subidas
// anteriores con el mismo filename, y normaliza la extensión al formato
// en que quedó codificada la imagen.
func uniqueKey(filename, contentType string) string {
	base := path.Base(filename)
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." {
		base = "image"
	}

	ext := ".jpg"
	if contentType == "image/png" {
		ext = ".png"
	}

	return base + "-" + uuid.NewString()[:8] + ext
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
