package submission

import (
	"fmt"
	"io"
	"mime/multipart"

	"golang.org/x/sync/errgroup"

	"github.com/pavich5/AutoMK/utils"
)

// ReadImageBatch converts one upload batch into data URLs, preserving
// upload order. Reads run concurrently and the batch joins
// all-or-nothing: a single failing read aborts the whole batch and
// nothing is appended. This is the one asynchronous boundary in the
// submission flow.
func ReadImageBatch(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	urls := make([]string, len(files))
	var g errgroup.Group
	for i, fh := range files {
		g.Go(func() error {
			f, err := fh.Open()
			if err != nil {
				return fmt.Errorf("open %q: %w", fh.Filename, err)
			}
			defer f.Close()

			raw, err := io.ReadAll(f)
			if err != nil {
				return fmt.Errorf("read %q: %w", fh.Filename, err)
			}
			urls[i] = utils.DataURL(utils.DetectImageMIME(raw), raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
