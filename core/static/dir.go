package static

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dmitrymomot/innkeeper/core/handler"
	"github.com/dmitrymomot/innkeeper/core/response"
)

// dirConfig holds configuration for directory serving
type dirConfig struct {
	stripPrefix string
	fallback    handler.Response
	encodings   []encoding
}

// DirOption configures directory serving behavior
type DirOption func(*dirConfig)

// WithStripPrefix removes the given prefix from the URL path before
// resolving files. Use it when the directory is mounted under a route prefix.
func WithStripPrefix(prefix string) DirOption {
	return func(c *dirConfig) {
		c.stripPrefix = strings.TrimSuffix(prefix, "/")
	}
}

// WithFallback sets the response used when no file matches the request.
// The default redirects to the sign-in page.
func WithFallback(resp handler.Response) DirOption {
	return func(c *dirConfig) {
		if resp != nil {
			c.fallback = resp
		}
	}
}

// WithPrecompressed sets which precompressed variants are looked up, in order
// of preference. Pass nothing to disable precompressed serving.
func WithPrecompressed(encodings ...string) DirOption {
	return func(c *dirConfig) {
		c.encodings = c.encodings[:0]
		for _, name := range encodings {
			if ext, ok := encodingExt[name]; ok {
				c.encodings = append(c.encodings, encoding{name: name, ext: ext})
			}
		}
	}
}

// ServeDir creates a handler that serves files from a directory.
//
// Directory listing is disabled: a directory resolves only through its
// index.html. When the client accepts it and a "<file>.br" or "<file>.gz"
// sibling exists, the precompressed variant is served with the original
// file's content type. Missing files produce the fallback response, and a
// file that exists but cannot be read produces a plain 500.
//
// Panics at startup if root doesn't exist or is not a directory.
func ServeDir[C handler.Context](root string, opts ...DirOption) handler.HandlerFunc[C] {
	root = filepath.Clean(root)
	if err := validateStartup(root, true); err != nil {
		panic("static.ServeDir: " + err.Error())
	}
	return ServeFS[C](os.DirFS(root), opts...)
}

// ServeFS is ServeDir over an arbitrary fs.FS, e.g. an embed.FS.
func ServeFS[C handler.Context](fsys fs.FS, opts ...DirOption) handler.HandlerFunc[C] {
	cfg := &dirConfig{
		fallback:  response.Redirect(response.SigninPath),
		encodings: defaultEncodings(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			return cfg.serve(fsys, w, r)
		}
	}
}

func (c *dirConfig) serve(fsys fs.FS, w http.ResponseWriter, r *http.Request) error {
	name, ok := resolveName(r.URL.Path, c.stripPrefix)
	if !ok {
		return c.fallback(w, r)
	}

	f, info, err := openFile(fsys, name)
	if err == nil && info.IsDir() {
		_ = f.Close()
		name = path.Join(name, "index.html")
		f, info, err = openFile(fsys, name)
		if err == nil && info.IsDir() {
			_ = f.Close()
			err = fs.ErrNotExist
		}
	}
	if err != nil {
		if isNotFound(err) {
			return c.fallback(w, r)
		}
		return internalError(w, r, err)
	}
	defer f.Close()

	ctype := mime.TypeByExtension(path.Ext(name))

	if len(c.encodings) > 0 {
		addVary(w.Header(), "Accept-Encoding")
	}
	for _, enc := range c.encodings {
		if !acceptsEncoding(r, enc.name) {
			continue
		}
		cf, cinfo, err := openFile(fsys, name+enc.ext)
		if err != nil || cinfo.IsDir() {
			if err == nil {
				_ = cf.Close()
			}
			continue
		}
		defer cf.Close()

		if ctype == "" {
			ctype = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ctype)
		w.Header().Set("Content-Encoding", enc.name)
		return serveContent(w, r, name, cinfo, cf)
	}

	if ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	return serveContent(w, r, name, info, f)
}

// resolveName turns a URL path into a name valid for fs.FS.
func resolveName(urlPath, stripPrefix string) (string, bool) {
	if stripPrefix != "" {
		rest, ok := strings.CutPrefix(urlPath, stripPrefix)
		if !ok {
			return "", false
		}
		urlPath = rest
	}

	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "."
	}
	if !fs.ValidPath(name) {
		return "", false
	}
	return name, true
}

func openFile(fsys fs.FS, name string) (fs.File, fs.FileInfo, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return f, info, nil
}

func serveContent(w http.ResponseWriter, r *http.Request, name string, info fs.FileInfo, f fs.File) error {
	rs, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			return internalError(w, r, err)
		}
		rs = bytes.NewReader(data)
	}
	http.ServeContent(w, r, name, info.ModTime(), rs)
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrInvalid) ||
		errors.Is(err, syscall.ENOTDIR)
}

// internalError writes the plain text 500 used for unreadable assets.
func internalError(w http.ResponseWriter, r *http.Request, err error) error {
	w.Header().Del("Content-Encoding")
	w.Header().Del("Vary")
	return response.StringWithStatus(
		fmt.Sprintf("Unhandled internal error: %v", err),
		http.StatusInternalServerError,
	)(w, r)
}
