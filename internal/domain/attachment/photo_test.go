package attachment

import (
	"fmt"
	"testing"

	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func photoKey(accountID uuid.UUID, kind OwnerKind) string {
	return fmt.Sprintf("%s/%s/2026/%s.jpg", accountID, kind.Namespace(), uuid.New())
}

func newTestPhoto(t *testing.T, accountID uuid.UUID, owner OwnerRef) *Photo {
	t.Helper()
	p, err := NewPhoto(accountID, owner, photoKey(accountID, owner.Kind), nil, "room.jpg", "image/jpeg", 1024, nil)
	require.NoError(t, err)
	return p
}

func TestNewPhoto(t *testing.T) {
	accountID := uuid.New()
	owner := PropertyOwner(uuid.New())

	t.Run("creates photo pending placement", func(t *testing.T) {
		p := newTestPhoto(t, accountID, owner)

		assert.Equal(t, owner, p.Owner)
		assert.False(t, p.IsPrimary)
		assert.Equal(t, 0, p.DisplayOrder)
		assert.Nil(t, p.ThumbnailStorageKey)
		assert.Len(t, p.GetDomainEvents(), 1)
	})

	t.Run("accepts work order owners", func(t *testing.T) {
		p := newTestPhoto(t, accountID, WorkOrderOwner(uuid.New()))
		assert.Equal(t, OwnerKindWorkOrder, p.Owner.Kind)
	})

	t.Run("rejects expense owners", func(t *testing.T) {
		_, err := NewPhoto(accountID, ExpenseOwner(uuid.New()), photoKey(accountID, OwnerKindProperty), nil, "room.jpg", "image/jpeg", 1024, nil)
		require.Error(t, err)
		assert.Equal(t, shared.KindValidation, shared.KindOf(err))
	})

	t.Run("rejects non-image content types", func(t *testing.T) {
		_, err := NewPhoto(accountID, owner, photoKey(accountID, OwnerKindProperty), nil, "doc.pdf", "application/pdf", 1024, nil)
		require.Error(t, err)
		assert.Equal(t, shared.KindValidation, shared.KindOf(err))
	})

	t.Run("rejects foreign storage key", func(t *testing.T) {
		_, err := NewPhoto(accountID, owner, photoKey(uuid.New(), OwnerKindProperty), nil, "room.jpg", "image/jpeg", 1024, nil)
		require.Error(t, err)
		assert.Equal(t, shared.KindUnauthorized, shared.KindOf(err))
	})

	t.Run("rejects key from another namespace", func(t *testing.T) {
		receiptKey := fmt.Sprintf("%s/receipts/2026/%s.jpg", accountID, uuid.New())
		_, err := NewPhoto(accountID, owner, receiptKey, nil, "room.jpg", "image/jpeg", 1024, nil)
		require.Error(t, err)
		assert.Equal(t, shared.KindValidation, shared.KindOf(err))
		assert.Contains(t, err.Error(), "namespace")
	})

	t.Run("rejects key from the other photo namespace", func(t *testing.T) {
		_, err := NewPhoto(accountID, owner, photoKey(accountID, OwnerKindWorkOrder), nil, "room.jpg", "image/jpeg", 1024, nil)
		require.Error(t, err)
		assert.Equal(t, shared.KindValidation, shared.KindOf(err))
	})

	t.Run("rejects foreign thumbnail key", func(t *testing.T) {
		foreignThumb := photoKey(uuid.New(), OwnerKindProperty)
		_, err := NewPhoto(accountID, owner, photoKey(accountID, OwnerKindProperty), &foreignThumb, "room.jpg", "image/jpeg", 1024, nil)
		require.Error(t, err)
		assert.Equal(t, shared.KindUnauthorized, shared.KindOf(err))
	})

	t.Run("rejects thumbnail key from another namespace", func(t *testing.T) {
		thumb := photoKey(accountID, OwnerKindWorkOrder)
		_, err := NewPhoto(accountID, owner, photoKey(accountID, OwnerKindProperty), &thumb, "room.jpg", "image/jpeg", 1024, nil)
		require.Error(t, err)
		assert.Equal(t, shared.KindValidation, shared.KindOf(err))
	})
}

func TestPhotoMakePrimary(t *testing.T) {
	accountID := uuid.New()
	owner := PropertyOwner(uuid.New())

	t.Run("flags photo and bumps version", func(t *testing.T) {
		p := newTestPhoto(t, accountID, owner)
		before := p.GetVersion()

		require.NoError(t, p.MakePrimary())
		assert.True(t, p.IsPrimary)
		assert.Equal(t, before+1, p.GetVersion())
	})

	t.Run("already primary is a no-op with zero writes", func(t *testing.T) {
		p := newTestPhoto(t, accountID, owner)
		require.NoError(t, p.MakePrimary())
		version := p.GetVersion()

		require.NoError(t, p.MakePrimary())
		assert.Equal(t, version, p.GetVersion(), "no version bump on idempotent path")
	})

	t.Run("deleted photo cannot become primary", func(t *testing.T) {
		p := newTestPhoto(t, accountID, owner)
		now := p.CreatedAt
		p.DeletedAt = &now

		err := p.MakePrimary()
		require.Error(t, err)
		assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
	})
}

func TestPhotoSetDisplayOrder(t *testing.T) {
	accountID := uuid.New()
	p := newTestPhoto(t, accountID, PropertyOwner(uuid.New()))

	require.NoError(t, p.SetDisplayOrder(3))
	assert.Equal(t, 3, p.DisplayOrder)

	err := p.SetDisplayOrder(-1)
	require.Error(t, err)
	assert.Equal(t, shared.KindValidation, shared.KindOf(err))
}

func TestPhotoSetThumbnailKey(t *testing.T) {
	accountID := uuid.New()
	p := newTestPhoto(t, accountID, PropertyOwner(uuid.New()))

	t.Run("accepts in-account thumbnail", func(t *testing.T) {
		thumb := ThumbnailKeyFor(p.StorageKey)
		require.NoError(t, p.SetThumbnailKey(thumb))
		require.NotNil(t, p.ThumbnailStorageKey)
		assert.Equal(t, thumb, *p.ThumbnailStorageKey)
	})

	t.Run("rejects foreign thumbnail", func(t *testing.T) {
		err := p.SetThumbnailKey(photoKey(uuid.New(), OwnerKindProperty))
		require.Error(t, err)
		assert.Equal(t, shared.KindUnauthorized, shared.KindOf(err))
	})

	t.Run("rejects thumbnail from another namespace", func(t *testing.T) {
		err := p.SetThumbnailKey(photoKey(accountID, OwnerKindWorkOrder))
		require.Error(t, err)
		assert.Equal(t, shared.KindValidation, shared.KindOf(err))
	})
}
