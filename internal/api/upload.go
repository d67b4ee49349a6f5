package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
)

var (
	// ErrFileMissing はマルチパートに指定のファイルフィールドがないことを示します。
	ErrFileMissing = errors.New("file is required")
	// ErrFileTooLarge はファイルが上限サイズを超えていることを示します。
	ErrFileTooLarge = errors.New("file too large")
)

// ReadFormFile はマルチパートのファイルフィールドを最大maxバイトまで読み込み、内容とファイル名を返します。
// Content-Lengthを偽ったアップロードに備えて、読み込み時にも上限を確認します。
func ReadFormFile(c *gin.Context, field string, max int64) ([]byte, string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFileMissing, err)
	}
	if file.Size > max {
		return nil, file.Filename, ErrFileTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return nil, file.Filename, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("アップロードファイルのクローズに失敗", "error", err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return nil, file.Filename, err
	}
	if int64(len(data)) > max {
		return nil, file.Filename, ErrFileTooLarge
	}
	return data, file.Filename, nil
}
