package upload

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-registry/internal/blob"
	"animal-registry/internal/platform/logger"
)

func testImage(t *testing.T, w, h int, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func encodePNG(buf *bytes.Buffer, img image.Image) error  { return png.Encode(buf, img) }
func encodeJPEG(buf *bytes.Buffer, img image.Image) error { return jpeg.Encode(buf, img, nil) }

func TestHandler_ResizesAndStores(t *testing.T) {
	store := blob.NewMemory()
	h := Handler(store, logger.Nop())

	body := testImage(t, 600, 400, encodeJPEG)

	req := httptest.NewRequest("POST", "/upload?filename=betta.jpg", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, 200, rec.Code)

	var info blob.Info
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "image/jpeg", info.ContentType)
	assert.True(t, strings.HasPrefix(info.Key, "betta-"))
	assert.True(t, strings.HasSuffix(info.Key, ".jpg"))
	assert.NotEmpty(t, info.URL)

	// lo almacenado quedó en 300x300
	_, rc, err := store.Get(req.Context(), info.Key)
	require.NoError(t, err)
	defer rc.Close()

	stored, _, err := image.Decode(rc)
	require.NoError(t, err)
	assert.Equal(t, 300, stored.Bounds().Dx())
	assert.Equal(t, 300, stored.Bounds().Dy())
}

func TestHandler_KeepsPNG(t *testing.T) {
	store := blob.NewMemory()
	h := Handler(store, logger.Nop())

	body := testImage(t, 100, 350, encodePNG)

	req := httptest.NewRequest("POST", "/upload?filename=calopsita.png", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, 200, rec.Code)

	var info blob.Info
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "image/png", info.ContentType)
	assert.True(t, strings.HasSuffix(info.Key, ".png"))
}

func TestHandler_MissingFilename(t *testing.T) {
	h := Handler(blob.NewMemory(), logger.Nop())

	req := httptest.NewRequest("POST", "/upload", bytes.NewReader(testImage(t, 10, 10, encodePNG)))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, 400, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Filename and file content are required.", resp["error"])
}

func TestHandler_EmptyBody(t *testing.T) {
	h := Handler(blob.NewMemory(), logger.Nop())

	req := httptest.NewRequest("POST", "/upload?filename=x.png", bytes.NewReader(nil))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestHandler_UndecodableImage(t *testing.T) {
	h := Handler(blob.NewMemory(), logger.Nop())

	req := httptest.NewRequest("POST", "/upload?filename=x.png", strings.NewReader("esto no es una imagen"))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, 500, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to upload image.", resp["error"])
}
