package journal

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"
)

const maxConcurrentReads = 4

// DataURL encodes raw image bytes as a data: URL, sniffing the media type.
func DataURL(data []byte) string {
	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// EncodeImages reads each path and returns its data URL, in input order.
// Either every image encodes or an error is returned.
func EncodeImages(ctx context.Context, paths []string) ([]string, error) {
	urls := make([]string, len(paths))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading image %s: %w", path, err)
			}
			urls[i] = DataURL(data)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
