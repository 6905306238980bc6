package media

import (
	"context"
	"path"
	"strings"
	"time"

	"cashmemo/internal/domain/service"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const blobCacheControl = "public, max-age=31536000, immutable"

type blobMediaStore struct {
	bucket        *blob.Bucket
	folder        string
	publicBaseURL string
	maxDimension  int
	now           func() time.Time
}

// OpenBucket opens a bucket URL such as file:///var/media, s3://bucket?region=ap-south-1 or gs://bucket.
func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return bucket, nil
}

// NewBlobMediaStore stores images under folder/<owner>/yyyy/mm/ in bucket.
// Public URLs are publicBaseURL joined with the object key.
func NewBlobMediaStore(bucket *blob.Bucket, folder, publicBaseURL string, maxDimension int) service.MediaStore {
	return &blobMediaStore{
		bucket:        bucket,
		folder:        strings.Trim(folder, "/"),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxDimension:  maxDimension,
		now:           time.Now,
	}
}

func (s *blobMediaStore) Upload(ctx context.Context, owner, _, _ string, data []byte) (*service.MediaAsset, error) {
	prefix, err := ownerFolder(s.folder, owner)
	if err != nil {
		return nil, err
	}

	img, err := prepareImage(data, s.maxDimension)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	key := path.Join(prefix, now.Format("2006"), now.Format("01"), uuid.NewString()+extensionFor(img.format))

	err = s.bucket.WriteAll(ctx, key, img.data, &blob.WriterOptions{
		ContentType:  img.contentType,
		CacheControl: blobCacheControl,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write object %s", key)
	}

	return &service.MediaAsset{
		URL:      s.publicBaseURL + "/" + key,
		PublicID: key,
		Width:    img.width,
		Height:   img.height,
		Format:   img.format,
		Size:     int64(len(img.data)),
	}, nil
}

// Delete treats a missing object as already deleted. Keys outside the owner's
// folder are reported as not found and left alone.
func (s *blobMediaStore) Delete(ctx context.Context, owner, publicID string) error {
	if !ownsKey(s.folder, owner, publicID) {
		return service.ErrMediaNotFound
	}

	err := s.bucket.Delete(ctx, publicID)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete object %s", publicID)
	}

	return nil
}
