package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime/multipart"
)

// ReadUploadAndChecksum drains an uploaded part into memory and computes the
// sha256 content checksum in one pass.
func ReadUploadAndChecksum(fileHeader *multipart.FileHeader) (data []byte, checksum string, err error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	hasher := sha256.New()
	data, err = io.ReadAll(io.TeeReader(src, hasher))
	if err != nil {
		return nil, "", err
	}
	return data, hex.EncodeToString(hasher.Sum(nil)), nil
}

// ChecksumSHA256 returns the hex sha256 digest of data.
func ChecksumSHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
