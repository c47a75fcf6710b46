package util

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// ValidateMimeType 深度校验文件 MIME 类型（嗅探文件头而不是只看扩展名）
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "image/png", "image/jpeg"
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// AllowedImageTypes 帖子、故事、头像上传只接受 PNG/JPEG
var AllowedImageTypes = []string{"image/png", "image/jpeg"}
