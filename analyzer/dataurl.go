package analyzer

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DataURL encodes data the way a browser FileReader does, so uploads seed the
// same analysis as the web dashboard.
func DataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ImageDataURL sniffs the image type of data and returns its data URL.
func ImageDataURL(data []byte) (url, mime string, err error) {
	if len(data) == 0 {
		return "", "", newError(KindInvalidImage, "empty image", nil)
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", "", newError(KindInvalidImage, "unsupported content type "+mt.String(), nil)
	}
	return DataURL(mt.String(), data), mt.String(), nil
}

// NormalizeDataURL accepts either a data URL or a bare base64 payload and
// returns a data URL for an image.
func NormalizeDataURL(s string) (url, mime string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", newError(KindInvalidImage, "no image data", nil)
	}

	if strings.HasPrefix(s, "data:") {
		header, _, found := strings.Cut(s, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return "", "", newError(KindInvalidImage, "malformed data URL", nil)
		}
		mime = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		if !strings.HasPrefix(mime, "image/") {
			return "", "", newError(KindInvalidImage, "unsupported content type "+mime, nil)
		}
		return s, mime, nil
	}

	data, decErr := base64.StdEncoding.DecodeString(s)
	if decErr != nil {
		return "", "", newError(KindInvalidImage, "invalid base64 payload", decErr)
	}
	return ImageDataURL(data)
}
