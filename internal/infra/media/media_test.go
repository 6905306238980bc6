package media

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cashmemo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestPrepareImage_KeepsSmallImage(t *testing.T) {
	data := pngBytes(t, 40, 20)

	img, err := prepareImage(data, 100)
	require.NoError(t, err)
	assert.Equal(t, "png", img.format)
	assert.Equal(t, "image/png", img.contentType)
	assert.Equal(t, 40, img.width)
	assert.Equal(t, 20, img.height)
	assert.Equal(t, data, img.data)
}

func TestPrepareImage_DownscalesLargeImage(t *testing.T) {
	img, err := prepareImage(pngBytes(t, 400, 200), 100)
	require.NoError(t, err)
	assert.Equal(t, 100, img.width)
	assert.Equal(t, 50, img.height)

	decoded, err := png.Decode(bytes.NewReader(img.data))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
}

func TestPrepareImage_RejectsGarbage(t *testing.T) {
	_, err := prepareImage([]byte("definitely not an image"), 100)
	assert.Error(t, err)
}

func TestBlobMediaStore_UploadAndDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobMediaStore(bucket, "/cashmemo/", "https://cdn.example.com/", 100).(*blobMediaStore)
	store.now = func() time.Time { return time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC) }

	ctx := context.Background()
	asset, err := store.Upload(ctx, "shop-1", "logo.png", "image/png", pngBytes(t, 300, 150))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(asset.PublicID, "cashmemo/shop-1/2025/03/"))
	assert.True(t, strings.HasSuffix(asset.PublicID, ".png"))
	assert.Equal(t, "https://cdn.example.com/"+asset.PublicID, asset.URL)
	assert.Equal(t, 100, asset.Width)
	assert.Equal(t, 50, asset.Height)
	assert.Equal(t, "png", asset.Format)

	attrs, err := bucket.Attributes(ctx, asset.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
	assert.Equal(t, asset.Size, attrs.Size)

	assert.ErrorIs(t, store.Delete(ctx, "shop-2", asset.PublicID), service.ErrMediaNotFound)
	exists, err := bucket.Exists(ctx, asset.PublicID)
	require.NoError(t, err)
	assert.True(t, exists, "another owner cannot delete the object")

	require.NoError(t, store.Delete(ctx, "shop-1", asset.PublicID))
	exists, err = bucket.Exists(ctx, asset.PublicID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.Delete(ctx, "shop-1", asset.PublicID), "deleting twice is not an error")
	assert.ErrorIs(t, store.Delete(ctx, "shop-1", "../etc/passwd"), service.ErrMediaNotFound)
}

func TestBlobMediaStore_DeleteOutsideOwnerFolder(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "invoices/private.pdf", []byte("%PDF"), nil))
	store := NewBlobMediaStore(bucket, "cashmemo", "https://cdn.example.com", 100)

	for _, publicID := range []string{
		"invoices/private.pdf",
		"cashmemo/shop-1/../../invoices/private.pdf",
		"cashmemo/shop-10/2025/03/a.png",
		"cashmemo/shop-1",
		"",
	} {
		assert.ErrorIs(t, store.Delete(ctx, "shop-1", publicID), service.ErrMediaNotFound, publicID)
	}

	exists, err := bucket.Exists(ctx, "invoices/private.pdf")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestOwnsKey(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		owner    string
		publicID string
		want     bool
	}{
		{name: "own object", folder: "cashmemo", owner: "a1", publicID: "cashmemo/a1/2025/03/x.png", want: true},
		{name: "no folder", folder: "", owner: "a1", publicID: "a1/x.png", want: true},
		{name: "other owner", folder: "cashmemo", owner: "a1", publicID: "cashmemo/b2/x.png"},
		{name: "owner prefix of another", folder: "cashmemo", owner: "a1", publicID: "cashmemo/a10/x.png"},
		{name: "traversal", folder: "cashmemo", owner: "a1", publicID: "cashmemo/a1/../b2/x.png"},
		{name: "absolute", folder: "", owner: "a1", publicID: "/a1/x.png"},
		{name: "backslash", folder: "cashmemo", owner: "a1", publicID: `cashmemo/a1\..\b2`},
		{name: "empty owner", folder: "cashmemo", owner: "", publicID: "cashmemo//x.png"},
		{name: "owner with slash", folder: "cashmemo", owner: "a1/b2", publicID: "cashmemo/a1/b2/x.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ownsKey(tt.folder, tt.owner, tt.publicID))
		})
	}
}

func TestHTTPMediaStore_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)

		assert.Equal(t, "photo.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		assert.Equal(t, "cashmemo/shop-1", r.FormValue("folder"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"secure_url": "https://media.example.com/cashmemo/shop-1/abc.png",
			"public_id":  "cashmemo/shop-1/abc",
			"width":      40,
			"height":     20,
			"format":     "png",
			"bytes":      len(content),
		})
	}))
	defer server.Close()

	store := NewHTTPMediaStore(server.URL, "secret", "cashmemo", server.Client())
	data := pngBytes(t, 40, 20)

	asset, err := store.Upload(context.Background(), "shop-1", "photo.png", "image/png", data)
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/cashmemo/shop-1/abc.png", asset.URL)
	assert.Equal(t, "cashmemo/shop-1/abc", asset.PublicID)
	assert.Equal(t, int64(len(data)), asset.Size)
}

func TestHTTPMediaStore_UploadOutsideFolderIsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"secure_url": "https://media.example.com/abc.png",
			"public_id":  "abc",
		})
	}))
	defer server.Close()

	store := NewHTTPMediaStore(server.URL, "", "cashmemo", server.Client())
	_, err := store.Upload(context.Background(), "shop-1", "a.png", "image/png", []byte("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside folder")
}

func TestHTTPMediaStore_UploadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exhausted", http.StatusBadGateway)
	}))
	defer server.Close()

	store := NewHTTPMediaStore(server.URL, "", "", server.Client())
	_, err := store.Upload(context.Background(), "shop-1", "a.png", "image/png", []byte("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned 502")
	assert.Contains(t, err.Error(), "quota exhausted")
}

func TestHTTPMediaStore_Delete(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.EscapedPath())
		if strings.Contains(r.URL.Path, "missing") {
			w.WriteHeader(http.StatusNotFound)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	store := NewHTTPMediaStore(server.URL+"/", "", "cashmemo", server.Client())

	require.NoError(t, store.Delete(context.Background(), "shop-1", "cashmemo/shop-1/abc"))
	require.NoError(t, store.Delete(context.Background(), "shop-1", "cashmemo/shop-1/missing"))
	assert.ErrorIs(t, store.Delete(context.Background(), "shop-2", "cashmemo/shop-1/abc"), service.ErrMediaNotFound)
	assert.Equal(t, []string{"/cashmemo%2Fshop-1%2Fabc", "/cashmemo%2Fshop-1%2Fmissing"}, paths)
}
