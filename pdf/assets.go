package pdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoLogo is returned by providers that have no logo configured.
var ErrNoLogo = errors.New("no logo asset configured")

// AssetProvider supplies the optional issuer logo. Any error from Logo is
// non-fatal to a render: the logo slot stays blank and the document is
// produced without it.
type AssetProvider interface {
	// Logo returns the raw image bytes and the image type ("JPG" or "PNG").
	Logo(ctx context.Context) (data []byte, imageType string, err error)
}

type noLogo struct{}

func (noLogo) Logo(context.Context) ([]byte, string, error) {
	return nil, "", ErrNoLogo
}

// NoLogo is the default provider: every render gets a blank logo slot.
var NoLogo AssetProvider = noLogo{}

// FileAssetProvider loads the logo from a local path. Reads are bounded by
// Timeout so a hanging volume cannot stall a render past the degrade
// deadline.
type FileAssetProvider struct {
	Path    string
	Timeout time.Duration
}

const defaultAssetTimeout = 3 * time.Second

func (p *FileAssetProvider) Logo(ctx context.Context) ([]byte, string, error) {
	if strings.TrimSpace(p.Path) == "" {
		return nil, "", ErrNoLogo
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultAssetTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := os.ReadFile(p.Path)
		ch <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		return nil, "", ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return nil, "", res.err
		}
		return res.data, imageTypeFromPath(p.Path), nil
	}
}

func imageTypeFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "PNG"
	default:
		return "JPG"
	}
}
