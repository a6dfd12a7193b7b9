package usecase

import "context"

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

type FilesInfra interface {
	UploadFiles(ctx context.Context, req *UploadFilesReq) (*UploadFilesRes, error)
	CleanupFiles(keys []string)
	WaitForCleanup(ctx context.Context) error
}
