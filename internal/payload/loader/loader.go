package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	pkgpayload "github.com/goliatone/go-apimodel/pkg/payload"
)

// ErrTooLarge is returned when a source exceeds the configured byte limit.
var ErrTooLarge = errors.New("payload loader: source exceeds size limit")

// Loader implements pkgpayload.Loader by delegating to file, fs.FS, or stdin
// strategies. Construction helpers live in the top-level apimodel package.
type Loader struct {
	fs       fs.FS
	stdin    io.Reader
	maxBytes int64
}

// Ensure the implementation satisfies the public interface.
var _ pkgpayload.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgpayload.LoaderOptions) pkgpayload.Loader {
	maxBytes := options.MaxBytes
	if maxBytes <= 0 {
		maxBytes = pkgpayload.DefaultMaxBytes
	}
	return &Loader{
		fs:       options.FileSystem,
		stdin:    options.Stdin,
		maxBytes: maxBytes,
	}
}

// Load fetches a payload from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgpayload.Source) (pkgpayload.Document, error) {
	if src == nil {
		return pkgpayload.Document{}, errors.New("payload loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgpayload.Document{}, err
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgpayload.SourceKindFile:
		data, err = loadFile(ctx, src.Location(), l.maxBytes)
	case pkgpayload.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location(), l.maxBytes)
	case pkgpayload.SourceKindStdin:
		if l.stdin == nil {
			return pkgpayload.Document{}, errors.New("payload loader: stdin is not configured")
		}
		data, err = readLimited(l.stdin, l.maxBytes)
	default:
		err = errors.New("payload loader: unsupported source kind")
	}
	if err != nil {
		return pkgpayload.Document{}, fmt.Errorf("payload loader: %s: %w", src.Location(), err)
	}

	return pkgpayload.NewDocument(src, data)
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}
