package filestorage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartFile builds a real *multipart.FileHeader the way gin would.
func multipartFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("logo", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["logo"][0]
}

func TestSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	url, err := ls.SaveFileWithPath(multipartFile(t, "Logo.PNG", []byte("png")), "companies")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/companies/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	local := filepath.Join(dir, "companies", filepath.Base(url))
	data, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	require.NoError(t, ls.DeleteFile(url))
	_, err = os.Stat(local)
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, ls.DeleteFile(url))
}

func TestDeleteRejectsForeignURLs(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	assert.Error(t, ls.DeleteFile("https://cdn.example.com/logo.png"))
}

func TestCleanSubPathStaysInside(t *testing.T) {
	assert.Equal(t, "etc/passwd", cleanSubPath("../../etc/passwd"))
	assert.Equal(t, "companies", cleanSubPath("/companies/"))
	assert.Equal(t, "", cleanSubPath(".."))
}

func TestValidateUpload(t *testing.T) {
	fh := multipartFile(t, "logo.svg", []byte("<svg/>"))
	assert.NoError(t, ValidateUpload(fh, 1024, ".png", ".svg"))

	err := ValidateUpload(fh, 2, ".svg")
	assert.True(t, errors.Is(err, ErrFileTooLarge))

	err = ValidateUpload(fh, 1024, ".png")
	assert.True(t, errors.Is(err, ErrUnsupportedType))

	assert.True(t, errors.Is(ValidateUpload(nil, 1, ".png"), ErrNoFile))
}
