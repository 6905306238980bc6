package impl

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"cashmemo/config"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/service"
	"cashmemo/internal/infra/media"
	mockSvc "cashmemo/internal/mocks/service"
	mockUsecase "cashmemo/internal/mocks/usecase"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newTestUploadService(t *testing.T, maxBytes int64) (usecase.UploadUsecase, *repoMocks, *mockUsecase.MockQuotaEngine, *mockSvc.MockMediaStore) {
	t.Helper()

	repos := newRepoMocks(t)
	quota := mockUsecase.NewMockQuotaEngine(t)
	store := mockSvc.NewMockMediaStore(t)
	srv := NewUploadService(UploadServiceParams{
		Repos:  repos.factory,
		Quota:  quota,
		Media:  store,
		Config: &config.Config{Media: &config.MediaConfig{MaxUploadBytes: maxBytes}},
		Logger: newDiscardLogger(),
	})

	return srv, repos, quota, store
}

func TestUploadService_UploadImage(t *testing.T) {
	srv, repos, quota, store := newTestUploadService(t, 1024)
	userID := uuid.New()
	shop := repos.ownShop(userID)

	quota.EXPECT().CheckImageUpload(mock.Anything, userID).Return(nil).Once()
	store.EXPECT().Upload(mock.Anything, shop.ID.String(), "product.png", "image/png", pngHeader).
		Return(&service.MediaAsset{URL: "https://cdn.test/product.png", PublicID: "products/abc", Size: int64(len(pngHeader))}, nil).
		Once()

	// The declared name and type are ignored in favour of the sniffed type.
	asset, err := srv.UploadImage(context.Background(), userID, &usecase.UploadImageInput{
		FileName:    `C:\photos\product.jpg`,
		ContentType: "image/jpeg",
		Data:        pngHeader,
	})

	require.NoError(t, err)
	assert.Equal(t, "products/abc", asset.PublicID)
}

func TestUploadService_UploadImage_Refusals(t *testing.T) {
	tests := []struct {
		name     string
		quotaErr error
		data     []byte
		wantErr  error
	}{
		{name: "plan without images", quotaErr: domainerrors.ErrImageUploadNotAllowed, data: pngHeader, wantErr: domainerrors.ErrImageUploadNotAllowed},
		{name: "empty file", data: nil, wantErr: domainerrors.ErrValidationFailed},
		{name: "too large", data: append(bytes.Clone(pngHeader), make([]byte, 64)...), wantErr: domainerrors.ErrFileTooLarge},
		{name: "not an image", data: []byte("just some text pretending to be a photo"), wantErr: domainerrors.ErrUnsupportedMedia},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, quota, _ := newTestUploadService(t, 64)
			quota.EXPECT().CheckImageUpload(mock.Anything, mock.Anything).Return(tt.quotaErr).Once()

			asset, err := srv.UploadImage(context.Background(), uuid.New(), &usecase.UploadImageInput{FileName: "x.png", Data: tt.data})

			assert.Nil(t, asset)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestUploadService_DeleteImage(t *testing.T) {
	srv, repos, _, store := newTestUploadService(t, 0)
	userID := uuid.New()
	shop := repos.ownShop(userID)

	store.EXPECT().Delete(mock.Anything, shop.ID.String(), "products/abc").Return(nil).Once()
	require.NoError(t, srv.DeleteImage(context.Background(), userID, " products/abc "))

	err := srv.DeleteImage(context.Background(), userID, "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUploadService_DeleteImage_OutsideShopFolder(t *testing.T) {
	srv, repos, _, store := newTestUploadService(t, 0)
	userID := uuid.New()
	shop := repos.ownShop(userID)

	store.EXPECT().Delete(mock.Anything, shop.ID.String(), "cashmemo/other-shop/2025/01/a.png").Return(service.ErrMediaNotFound).Once()

	err := srv.DeleteImage(context.Background(), userID, "cashmemo/other-shop/2025/01/a.png")
	assert.True(t, errors.Is(err, domainerrors.ErrMediaNotFound), "got %v", err)
}

func TestUploadService_DeleteImage_AnotherShopsObjectSurvives(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	repos := newRepoMocks(t)
	ownerA, ownerB := uuid.New(), uuid.New()
	shopA := repos.ownShop(ownerA)
	repos.ownShop(ownerB)

	quota := mockUsecase.NewMockQuotaEngine(t)
	quota.EXPECT().CheckImageUpload(mock.Anything, ownerA).Return(nil).Once()

	srv := NewUploadService(UploadServiceParams{
		Repos:  repos.factory,
		Quota:  quota,
		Media:  media.NewBlobMediaStore(bucket, "uploads", "https://cdn.test", 512),
		Config: &config.Config{Media: &config.MediaConfig{MaxUploadBytes: 1 << 20}},
		Logger: newDiscardLogger(),
	})

	asset, err := srv.UploadImage(ctx, ownerA, &usecase.UploadImageInput{FileName: "pot.png", Data: tinyPNG(t)})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(asset.PublicID, "uploads/"+shopA.ID.String()+"/"), asset.PublicID)

	require.NoError(t, bucket.WriteAll(ctx, "invoices/private.pdf", []byte("%PDF"), nil))

	for _, publicID := range []string{asset.PublicID, "invoices/private.pdf", "uploads/" + shopA.ID.String() + "/../../invoices/private.pdf"} {
		err := srv.DeleteImage(ctx, ownerB, publicID)
		assert.True(t, errors.Is(err, domainerrors.ErrMediaNotFound), "%s: got %v", publicID, err)
	}

	for _, key := range []string{asset.PublicID, "invoices/private.pdf"} {
		exists, err := bucket.Exists(ctx, key)
		require.NoError(t, err)
		assert.True(t, exists, key)
	}

	require.NoError(t, srv.DeleteImage(ctx, ownerA, asset.PublicID))
	exists, err := bucket.Exists(ctx, asset.PublicID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))

	return buf.Bytes()
}
