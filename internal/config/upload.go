package config

import (
	"os"
	"sync"
)

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		uploadConfig = &UploadConfig{
			Dir:      envString("UPLOAD_DIR", os.TempDir()),
			MaxBytes: int64(envInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		}
	})
	return uploadConfig
}
