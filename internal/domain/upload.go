package domain

import "time"

// Upload — запись о загруженном в хранилище файле
type Upload struct {
	ID        string
	Filename  string
	ObjectKey string
	URL       string
	MimeType  string
	Size      int64
	CreatedAt time.Time
}

// File — содержимое файла для загрузки в объектное хранилище
type File struct {
	ID        string
	Bucket    string
	ObjectKey string
	Bytes     []byte
	Size      int64
	MimeType  string
}

func NewFile(id, bucket, objectKey string, data []byte, size int64, mimeType string) *File {
	return &File{
		ID:        id,
		Bucket:    bucket,
		ObjectKey: objectKey,
		Bytes:     data,
		Size:      size,
		MimeType:  mimeType,
	}
}
