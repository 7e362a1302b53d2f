// Package blob stores evidence photos in a gocloud.dev bucket and hands
// back public URLs. The bucket backend (local files in dev, GCS in
// production) is selected by the configured URL scheme.
package blob

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gravity/config"
	"gravity/internal/domain/lifecycle"
	"gravity/internal/domain/service"
	"gravity/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
)

// Params defines the dependencies for the evidence store.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type evidenceStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewEvidenceStore opens the configured bucket and registers its
// shutdown hook.
func NewEvidenceStore(params Params) (service.EvidenceStore, error) {
	cfg := params.Config.Evidence
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("evidence bucket is not configured")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open evidence bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &evidenceStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// UploadEvidence writes the photo under a collision-free key and
// returns its public URL.
func (s *evidenceStore) UploadEvidence(ctx context.Context, filename string, data []byte) (string, error) {
	key := uuid.NewString()
	if ext := extension(filename); ext != "" {
		key += "." + ext
	}

	writeCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.bucket.WriteAll(writeCtx, key, data, nil); err != nil {
		return "", errors.Wrap(err, "failed to upload evidence")
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}

func extension(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}

	return strings.ToLower(filename[idx+1:])
}
