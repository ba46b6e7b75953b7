package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"droppcv_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFile(t *testing.T, ts *helpers.TestServer, token, fieldName, fileName string, content []byte) (*http.Response, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/api/v1/uploads", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	defer res.Body.Close()

	return res, string(body)
}

func TestUpload(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)

	res, bodyStr := uploadFile(t, ts, token, "file", "cv.pdf", []byte("fake pdf content"))
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var response struct {
		Path string `json:"path"`
		URL  string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.NotEmpty(t, response.Path)
	assert.NotEmpty(t, response.URL)
	assert.Contains(t, response.Path, ".pdf")
}

func TestUploadRequiresAuthAndFile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, _ := uploadFile(t, ts, "", "file", "cv.pdf", []byte("content"))
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	token, _, _ := helpers.CreateAndLoginEmployee(t, ts, ts.DB)
	res, _ = uploadFile(t, ts, token, "wrong_field", "cv.pdf", []byte("content"))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
