package media_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

type fakeStore struct {
	uploaded []string
	names    []string
	folders  []string
	deleted  []string
	err      error
}

func (f *fakeStore) Upload(_ context.Context, file io.Reader, filename, folder string) (services.MediaAsset, error) {
	if f.err != nil {
		return services.MediaAsset{}, f.err
	}
	b, _ := io.ReadAll(file)
	f.uploaded = append(f.uploaded, string(b))
	f.names = append(f.names, filename)
	f.folders = append(f.folders, folder)
	return services.MediaAsset{URL: "https://res.cloudinary.com/demo/image/upload/ring.jpg", PublicID: folder + "/ring"}, nil
}

func (f *fakeStore) Delete(_ context.Context, publicID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, publicID)
	return nil
}

func setup(t *testing.T, store services.MediaStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	services.SetMediaStore(store)
	t.Cleanup(func() { services.SetMediaStore(nil) })

	r := gin.New()
	r.POST("/media", UploadMedia)
	r.DELETE("/media", DeleteMedia)
	return r
}

func uploadRequest(t *testing.T, contentType, folder string, content []byte) *http.Request {
	t.Helper()
	return namedUploadRequest(t, "ring.jpg", contentType, folder, content)
}

func namedUploadRequest(t *testing.T, filename, contentType, folder string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	if folder != "" {
		require.NoError(t, mw.WriteField("folder", folder))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/media", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadMedia(t *testing.T) {
	store := &fakeStore{}
	r := setup(t, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "image/jpeg", "lumiere/rings", []byte("jpeg-bytes")))
	require.Equal(t, http.StatusCreated, w.Code)

	var env struct {
		Data services.MediaAsset `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "lumiere/rings/ring", env.Data.PublicID)
	assert.NotEmpty(t, env.Data.URL)
	assert.Equal(t, []string{"jpeg-bytes"}, store.uploaded)
	assert.Equal(t, []string{"lumiere/rings"}, store.folders)
	assert.Equal(t, []string{"ring"}, store.names)
}

func TestUploadMedia_NameHintIsSlugged(t *testing.T) {
	store := &fakeStore{}
	r := setup(t, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, namedUploadRequest(t, "Émeraude Pendant (2).PNG", "image/png", "", []byte("png")))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"emeraude-pendant-2"}, store.names)
}

func TestUploadMedia_Rejections(t *testing.T) {
	r := setup(t, &fakeStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "application/pdf", "", []byte("%PDF")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "image/png", "../secrets", []byte("png")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/media", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadMedia_ProviderFailure(t *testing.T) {
	r := setup(t, &fakeStore{err: errors.New("cloudinary 500")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "image/webp", "", []byte("webp")))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestMedia_NotConfigured(t *testing.T) {
	r := setup(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "image/jpeg", "", []byte("x")))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/media?public_id=a/b", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDeleteMedia(t *testing.T) {
	store := &fakeStore{}
	r := setup(t, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/media?public_id=lumiere/rings/ring", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"lumiere/rings/ring"}, store.deleted)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/media", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
