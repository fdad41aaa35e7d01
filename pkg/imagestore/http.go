package imagestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"

	"github.com/ysEthan/magic-sync/config"
	"github.com/ysEthan/magic-sync/pkg/log"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var ErrUpload = errors.New("imagestore: upload failed")

// HTTPUploader 商品后台的 upload_image 接口
type HTTPUploader struct {
	HTTP      *http.Client
	UploadURL string
}

func (u *HTTPUploader) Upload(ctx context.Context, localPath, filename string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	h.Set("Content-Type", "image/jpeg")
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.UploadURL, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	log.L.Info("image upload response", zap.Int("status", resp.StatusCode), zap.ByteString("body", raw))

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: http status %d", ErrUpload, resp.StatusCode)
	}

	imageURL := gjson.GetBytes(raw, "image_url")
	if !imageURL.Exists() || imageURL.Type != gjson.String {
		return "", fmt.Errorf("%w: response has no image_url", ErrUpload)
	}
	return imageURL.String(), nil
}

func newHTTPClient(cfg *config.ImageConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}
