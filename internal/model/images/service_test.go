package images

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"max.ks1230/smart-receipts/internal/model/images/mock"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n0000")

func Test_OnUpload_ShouldStoreUnderReceiptsPrefix(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewObjectStoreMock(m)

	store.PutObjectMock.
		Expect("receipts/lunch.png", pngBytes, "image/png").
		Return(nil)
	store.PublicURLMock.
		Expect("receipts/lunch.png").
		Return("https://bucket.s3.amazonaws.com/receipts/lunch.png")

	payload := `{"image_data":"` + base64.StdEncoding.EncodeToString(pngBytes) + `","file_name":"lunch.png"}`
	resp := NewService(store).Upload(context.Background(), []byte(payload))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Image uploaded successfully","s3_key":"receipts/lunch.png",
		"s3_url":"https://bucket.s3.amazonaws.com/receipts/lunch.png"}`, resp.Body)
}

func Test_OnUploadWithoutName_ShouldGenerateOne(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewObjectStoreMock(m)
	s := NewService(store)
	s.fileName = func() string { return "0b6a.jpg" }

	store.PutObjectMock.
		Expect("receipts/0b6a.jpg", []byte{0x00, 0x01}, "image/jpeg").
		Return(nil)
	store.PublicURLMock.Return("https://bucket.s3.amazonaws.com/receipts/0b6a.jpg")

	resp := s.Upload(context.Background(), []byte(`{"image_data":"AAE="}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Body, `"s3_key":"receipts/0b6a.jpg"`)
}

func Test_OnDefaultFileName_ShouldBeUniqueJPEG(t *testing.T) {
	s := NewService(nil)

	first, second := s.fileName(), s.fileName()

	assert.NotEqual(t, first, second)
	assert.Regexp(t, `^[0-9a-f-]{36}\.jpg$`, first)
}

func Test_OnUploadWithPath_ShouldKeepBaseNameOnly(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewObjectStoreMock(m)

	store.PutObjectMock.
		Inspect(func(_ context.Context, key string, _ []byte, _ string) {
			assert.Equal(t, "receipts/x.jpg", key)
		}).
		Return(nil)
	store.PublicURLMock.Return("url")

	resp := NewService(store).Upload(context.Background(), []byte(`{"image_data":"AAE=","file_name":"../../x.jpg"}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func Test_OnUploadFailures_ShouldMapStatus(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewObjectStoreMock(m)
	s := NewService(store)
	ctx := context.Background()

	resp := s.Upload(ctx, []byte(`{"file_name":"a.jpg"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Missing key in request body: 'image_data'"}`, resp.Body)

	resp = s.Upload(ctx, []byte(`{"image_data":"%%%"}`))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Body, "decode image_data")

	store.PutObjectMock.Return(errors.New("put object: AccessDenied"))
	resp = s.Upload(ctx, []byte(`{"image_data":"AAE="}`))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"put object: AccessDenied"}`, resp.Body)
}

func Test_OnPresign_ShouldAskForFiveMinutes(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewObjectStoreMock(m)

	store.PresignGetObjectMock.
		Expect("receipts/a.jpg", 300*time.Second).
		Return("https://bucket.s3.amazonaws.com/receipts/a.jpg?X-Amz-Expires=300", nil)

	resp := NewService(store).Presign(context.Background(), []byte(`{"s3_key":"receipts/a.jpg"}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Presigned URL generated successfully",
		"presigned_url":"https://bucket.s3.amazonaws.com/receipts/a.jpg?X-Amz-Expires=300"}`, resp.Body)
}

func Test_OnPresignFailures_ShouldMapStatus(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewObjectStoreMock(m)
	s := NewService(store)
	ctx := context.Background()

	resp := s.Presign(ctx, []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"s3_key is required."}`, resp.Body)

	store.PresignGetObjectMock.Return("", errors.New("presign object: missing credentials"))
	resp = s.Presign(ctx, []byte(`{"s3_key":"receipts/a.jpg"}`))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"presign object: missing credentials"}`, resp.Body)
}
