package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReportsUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/owner/taksa/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name": "v1.2.0", "html_url": "https://example.com/v1.2.0"}`)
	}))
	defer srv.Close()

	c := NewChecker("owner", "taksa", WithBaseURL(srv.URL, srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/v1.2.0", result.ReleaseURL)
}

func TestCheckAlreadyLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v1.1.0"}`)
	}))
	defer srv.Close()

	c := NewChecker("owner", "taksa", WithBaseURL(srv.URL, srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckDevBuildNeverUpdates(t *testing.T) {
	c := NewChecker("owner", "taksa")

	result, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewChecker("owner", "taksa", WithBaseURL(srv.URL, srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestUpdateDevBuild(t *testing.T) {
	c := NewChecker("owner", "taksa")

	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"darwin", "arm64", "taksa_Darwin_all.tar.gz", false},
		{"darwin", "amd64", "taksa_Darwin_all.tar.gz", false},
		{"linux", "amd64", "taksa_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "taksa_Linux_arm64.tar.gz", false},
		{"windows", "386", "taksa_Windows_i386.zip", false},
		{"linux", "mips", "", true},
		{"plan9", "amd64", "", true},
	}
	for _, tt := range tests {
		got, err := assetNameFor(tt.goos, tt.goarch)
		if tt.wantErr {
			assert.Error(t, err, "%s/%s", tt.goos, tt.goarch)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseChecksums(t *testing.T) {
	data := []byte("abc123  taksa_Linux_x86_64.tar.gz\ndef456  taksa_Darwin_all.tar.gz\n\nbadline\n")

	checksums := parseChecksums(data)
	assert.Equal(t, "abc123", checksums["taksa_Linux_x86_64.tar.gz"])
	assert.Equal(t, "def456", checksums["taksa_Darwin_all.tar.gz"])
	assert.Len(t, checksums, 2)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello")
	h := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))
	assert.ErrorIs(t, verifyChecksum(data, "deadbeef"), ErrChecksum)
}

func makeTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestExtractFromTarGz(t *testing.T) {
	archive := makeTarGz(t, "taksa", []byte("binary-bytes"))

	got, err := extractFromTarGz(archive, "taksa")
	require.NoError(t, err)
	assert.Equal(t, []byte("binary-bytes"), got)

	_, err = extractFromTarGz(archive, "other")
	assert.Error(t, err)
}

func TestUpdateEndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix rename semantics")
	}

	binary := []byte("#!/bin/sh\necho new\n")
	asset, err := assetName()
	require.NoError(t, err)
	require.True(t, len(asset) > 0)

	archive := makeTarGz(t, "taksa", binary)
	archiveHash := sha256.Sum256(archive)
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveHash[:]), asset)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/owner/taksa/releases/latest":
			fmt.Fprint(w, `{"tag_name": "v2.0.0"}`)
		case r.URL.Path == "/owner/taksa/releases/download/v2.0.0/"+asset:
			_, _ = w.Write(archive)
		case r.URL.Path == "/owner/taksa/releases/download/v2.0.0/checksums.txt":
			fmt.Fprint(w, checksums)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	target := filepath.Join(t.TempDir(), "taksa")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	c := NewChecker("owner", "taksa",
		WithBaseURL(srv.URL, srv.URL),
		WithExecPath(func() (string, error) { return target, nil }))

	var stages []string
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, binary, got)
	assert.Contains(t, stages, "download")
	assert.Contains(t, stages, "done")
}
