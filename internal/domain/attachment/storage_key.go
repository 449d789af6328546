package attachment

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Storage keys are namespaced per account so a presigned upload for one
// account can never be confirmed into another account's records:
//
//	{accountID}/{namespace}/{year}/{uniqueID}{ext}
//
// The account prefix is the tenancy boundary; everything after it is layout.

// StorageKey is the parsed form of an object storage key.
type StorageKey struct {
	AccountID uuid.UUID
	Namespace string
	Year      int
	FileName  string
}

// String reassembles the canonical key
func (k StorageKey) String() string {
	return fmt.Sprintf("%s/%s/%d/%s", k.AccountID, k.Namespace, k.Year, k.FileName)
}

// BuildStorageKey generates a fresh namespaced storage key for an upload.
// The original file name only contributes its extension; the object name is
// a generated UUID so uploads never collide.
func BuildStorageKey(accountID uuid.UUID, kind OwnerKind, originalFileName string) string {
	ext := filepath.Ext(originalFileName)
	return fmt.Sprintf("%s/%s/%d/%s%s",
		accountID.String(),
		kind.Namespace(),
		time.Now().Year(),
		uuid.New().String(),
		ext,
	)
}

// ThumbnailKeyFor derives the conventional thumbnail key for a photo key.
// Thumbnails live next to their originals under a thumbs/ segment.
func ThumbnailKeyFor(storageKey string) string {
	dir, file := filepath.Split(storageKey)
	return dir + "thumbs/" + file
}

// ParseStorageKey validates the shape of a raw storage key and extracts its
// components. Malformed keys yield a validation error; namespace ownership
// is checked separately via RequireAccount.
func ParseStorageKey(raw string) (StorageKey, error) {
	if raw == "" {
		return StorageKey{}, shared.NewValidation("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}
	if len(raw) > 500 {
		return StorageKey{}, shared.NewValidation("INVALID_STORAGE_KEY", "Storage key cannot exceed 500 characters")
	}
	// Prevent path traversal and absolute keys
	if strings.Contains(raw, "..") {
		return StorageKey{}, shared.NewValidation("INVALID_STORAGE_KEY", "Storage key cannot contain path traversal sequences")
	}
	if strings.HasPrefix(raw, "/") {
		return StorageKey{}, shared.NewValidation("INVALID_STORAGE_KEY", "Storage key must be a relative path")
	}

	parts := strings.SplitN(raw, "/", 4)
	if len(parts) != 4 {
		return StorageKey{}, shared.NewValidation("INVALID_STORAGE_KEY",
			"Storage key must have the form {account}/{namespace}/{year}/{file}")
	}

	accountID, err := uuid.Parse(parts[0])
	if err != nil {
		return StorageKey{}, shared.NewValidation("INVALID_STORAGE_KEY", "Storage key account prefix is not a valid UUID")
	}
	if parts[1] == "" {
		return StorageKey{}, shared.NewValidation("INVALID_STORAGE_KEY", "Storage key namespace cannot be empty")
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 2000 || year > 9999 {
		return StorageKey{}, shared.NewValidation("INVALID_STORAGE_KEY", "Storage key year segment is not valid")
	}
	if parts[3] == "" {
		return StorageKey{}, shared.NewValidation("INVALID_STORAGE_KEY", "Storage key file segment cannot be empty")
	}

	return StorageKey{
		AccountID: accountID,
		Namespace: parts[1],
		Year:      year,
		FileName:  parts[3],
	}, nil
}

// RequireAccount rejects keys whose namespace prefix belongs to a different
// account. A well-formed key with a foreign prefix is an authorization
// failure, not a validation failure: the key exists, it just is not yours.
func (k StorageKey) RequireAccount(accountID uuid.UUID) error {
	if k.AccountID != accountID {
		return shared.NewUnauthorized("FOREIGN_STORAGE_KEY",
			"Storage key does not belong to the caller's account")
	}
	return nil
}

// RequireNamespace rejects keys minted under a different namespace segment.
// A receipts/ key cannot be confirmed as a photo even inside the right
// account, and vice versa.
func (k StorageKey) RequireNamespace(kind OwnerKind) error {
	if k.Namespace != kind.Namespace() {
		return shared.NewValidation("STORAGE_KEY_NAMESPACE_MISMATCH",
			fmt.Sprintf("Storage key namespace '%s' does not match the expected '%s'",
				k.Namespace, kind.Namespace()))
	}
	return nil
}
