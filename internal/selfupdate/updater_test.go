package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin", "arm64", "mathtutor_Darwin_all.tar.gz", false},
		{"darwin", "amd64", "mathtutor_Darwin_all.tar.gz", false},
		{"linux", "amd64", "mathtutor_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "mathtutor_Linux_arm64.tar.gz", false},
		{"linux", "386", "mathtutor_Linux_i386.tar.gz", false},
		{"windows", "amd64", "mathtutor_Windows_x86_64.zip", false},
		{"windows", "arm64", "mathtutor_Windows_arm64.zip", false},
		{"linux", "mips", "", true},
		{"plan9", "amd64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksumManifest(t *testing.T) {
	data := []byte(`
abc123  mathtutor_Linux_x86_64.tar.gz
def456  mathtutor_Darwin_all.tar.gz

malformed line with too many fields here
`)
	checksums := parseChecksumManifest(data)
	assert.Len(t, checksums, 2)
	assert.Equal(t, "abc123", checksums["mathtutor_Linux_x86_64.tar.gz"])
	assert.Equal(t, "def456", checksums["mathtutor_Darwin_all.tar.gz"])
}

func TestCheckSHA256(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)
	good := hex.EncodeToString(sum[:])

	assert.NoError(t, checkSHA256(data, good))

	err := checkSHA256(data, "deadbeef")
	assert.ErrorIs(t, err, ErrChecksum)
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

func makeZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestBinaryFromTarGz(t *testing.T) {
	content := []byte("fake binary")
	archive := makeTarGz(t, "mathtutor", content)

	got, err := binaryFromTarGz(archive, "mathtutor")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestBinaryFromTarGzNested(t *testing.T) {
	content := []byte("fake binary")
	archive := makeTarGz(t, "release/mathtutor", content)

	got, err := binaryFromTarGz(archive, "mathtutor")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestBinaryFromTarGzMissing(t *testing.T) {
	archive := makeTarGz(t, "README.md", []byte("docs"))

	_, err := binaryFromTarGz(archive, "mathtutor")
	assert.Error(t, err)
}

func TestBinaryFromZip(t *testing.T) {
	content := []byte("fake windows binary")
	archive := makeZip(t, "mathtutor.exe", content)

	got, err := binaryFromZip(archive, "mathtutor.exe")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestCanonicalVersion(t *testing.T) {
	assert.Equal(t, "v1.2.3", canonicalVersion("1.2.3"))
	assert.Equal(t, "v1.2.3", canonicalVersion("v1.2.3"))
	assert.Equal(t, "", canonicalVersion(""))
	assert.Equal(t, "v0.4.0", canonicalVersion(" v0.4.0 "))
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/raptors2019-ai/math-tutor-2-sub000/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name": "v1.5.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.4.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.5.0", result.LatestVersion)

	result, err = c.Check(context.Background(), &CheckInput{Version: "v1.5.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)

	result, err = c.Check(context.Background(), &CheckInput{Version: "v2.0.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckDevBuildAlwaysUpdates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v1.0.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheckBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	assert.Error(t, err)
}

func TestUpdateDevBuild(t *testing.T) {
	c := NewChecker()
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdateAlreadyLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v1.0.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

func TestUpdateChecksumMismatch(t *testing.T) {
	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	archive := makeTarGz(t, "mathtutor", []byte("binary"))
	if bytes.HasSuffix([]byte(asset), []byte(".zip")) {
		archive = makeZip(t, "mathtutor.exe", []byte("binary"))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/raptors2019-ai/math-tutor-2-sub000/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v9.9.9"}`)
	})
	mux.HandleFunc("/raptors2019-ai/math-tutor-2-sub000/releases/download/v9.9.9/"+asset, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	})
	mux.HandleFunc("/raptors2019-ai/math-tutor-2-sub000/releases/download/v9.9.9/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%s  %s\n", "0000000000000000000000000000000000000000000000000000000000000000", asset)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrChecksum)
}
