package filestore

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"palaver/internal/models"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
)

// SaveAttachment writes the attachment bytes to the store and builds the
// metadata record for a message. The attachment type is sniffed from the
// content: recognized images become "image", everything else "file". The URL
// is the content hash, which Get resolves back to the bytes.
func SaveAttachment(fs FileStore, name string, data []byte) (models.MessageAttachment, error) {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	if err := fs.Save(bytes.NewReader(data), hash); err != nil {
		return models.MessageAttachment{}, fmt.Errorf("failed to save attachment: %w", err)
	}

	attType := models.AttachmentTypeFile
	if filetype.IsImage(data) {
		attType = models.AttachmentTypeImage
	}

	return models.MessageAttachment{
		ID:   uuid.NewString(),
		Name: name,
		URL:  hash,
		Type: attType,
		Size: int64(len(data)),
	}, nil
}
