package usecases

import (
	"context"
	"errors"
	"youtube_etl/internal/core/domain"
)

// UploadFile never fails the run: upload errors are logged and dropped.
func (uc *etlUseCase) UploadFile(ctx context.Context, filename string) {
	err := uc.storage.Upload(ctx, filename)
	if err == nil {
		return
	}

	if errors.Is(err, domain.ErrUploadFailed) {
		uc.log.Error("Upload failed", err)
		return
	}

	uc.log.Error("Error uploading file to S3", err)
}
