package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"ajira_backend/internal/imageprocessor"
	"ajira_backend/internal/storage"

	"github.com/stretchr/testify/require"
)

func newLocalUploads(t *testing.T) (UploadService, *storage.LocalStorage, *Presenter) {
	t.Helper()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "http://files.test"})
	require.NoError(t, err)
	return NewUploadService(store, imageprocessor.NewProcessor(85)), store, NewPresenter(store)
}

// fileHeader builds a multipart file header the way gin would hand it to a handler.
func fileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File[field][0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func storedKeys(t *testing.T, store *storage.LocalStorage, keys ...string) map[string]bool {
	t.Helper()
	out := map[string]bool{}
	for _, k := range keys {
		ok, err := store.Exists(context.Background(), k)
		require.NoError(t, err)
		out[k] = ok
	}
	return out
}
