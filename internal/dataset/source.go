package dataset

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/platewise/backend/config"
)

// Open returns a reader over the food reference CSV, fetched from S3 when a
// bucket is configured, otherwise read from the local dataset path. The
// caller closes the reader.
func Open(ctx context.Context, cfg *config.Config) (io.ReadCloser, error) {
	if cfg.DatasetS3Bucket != "" {
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		log.Printf("Fetching dataset from s3://%s/%s", s3cfg.Bucket, s3cfg.Key)
		return s3cfg.FetchDataset(ctx)
	}

	log.Printf("Loading dataset from %s", cfg.DatasetPath)
	f, err := os.Open(cfg.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", cfg.DatasetPath, err)
	}
	return f, nil
}
