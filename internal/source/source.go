package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/pgzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Options describes where a model comes from and where intermediate
// files are cached. Steps whose output already exists are skipped.
type Options struct {
	URL         string            // remote gzip archive
	Header      map[string]string // extra request headers
	ArchivePath string            // cached download
	TextPath    string            // cached decompressed text
	Client      *http.Client
}

// DefaultHeader is sent with every Fetch unless overridden.
var DefaultHeader = map[string]string{"X-TechChallenge": "true"}

// Acquire runs fetch -> extract -> read and returns the model text.
func Acquire(opts Options) ([]byte, error) {
	if opts.TextPath == "" {
		return nil, fmt.Errorf("source: no text path")
	}
	if !exists(opts.TextPath) {
		if opts.ArchivePath == "" {
			return nil, fmt.Errorf("source: %s missing and no archive path", opts.TextPath)
		}
		if !exists(opts.ArchivePath) {
			if opts.URL == "" {
				return nil, fmt.Errorf("source: %s missing and no URL", opts.ArchivePath)
			}
			fmt.Printf("downloading %s\n", filepath.Base(opts.ArchivePath))
			if err := Fetch(opts.Client, opts.URL, opts.Header, opts.ArchivePath); err != nil {
				return nil, err
			}
		}
		fmt.Printf("extracting %s into %s\n", filepath.Base(opts.ArchivePath), filepath.Base(opts.TextPath))
		if err := Extract(opts.ArchivePath, opts.TextPath); err != nil {
			return nil, err
		}
	}
	fmt.Printf("reading %s into memory\n", filepath.Base(opts.TextPath))
	return Load(opts.TextPath)
}

// Fetch downloads url to dest. The body is written to a temp file and
// renamed so a failed download never leaves a partial cache entry.
func Fetch(client *http.Client, url string, header map[string]string, dest string) error {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	for k, v := range DefaultHeader {
		req.Header.Set(k, v)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("source: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("source: fetch %s: %s", url, resp.Status)
	}

	return writeAtomic(dest, resp.Body)
}

// Extract decompresses a gzip archive into dest.
func Extract(archive, dest string) error {
	f, err := os.Open(archive)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	defer f.Close()

	zr, err := pgzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("source: gunzip %s: %w", archive, err)
	}
	defer zr.Close()

	return writeAtomic(dest, zr)
}

// Load reads a model file, decompressing it when it starts with the gzip magic.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	defer f.Close()

	data, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", path, err)
	}
	return data, nil
}

// Decode reads r fully, gunzipping when needed.
func Decode(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(head, gzipMagic) {
		return io.ReadAll(br)
	}

	zr, err := pgzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("gunzip: %w", err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func writeAtomic(dest string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".*")
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("source: write %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("source: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("source: %w", err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
