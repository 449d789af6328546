package persistence

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rentdesk/backend/internal/domain/attachment"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockPhotoRepository creates a GormPhotoRepository with a mocked SQL connection
func newMockPhotoRepository(t *testing.T) (*GormPhotoRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormPhotoRepository(gormDB), mock, mockDB
}

var photoColumns = []string{
	"id", "created_at", "updated_at", "version", "account_id",
	"owner_kind", "owner_id", "storage_key", "thumbnail_storage_key",
	"original_file_name", "content_type", "file_size_bytes", "uploaded_by",
	"is_primary", "display_order", "deleted_at",
}

func photoRow(id, accountID uuid.UUID, owner attachment.OwnerRef, isPrimary bool, displayOrder int) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, now, now, 1, accountID,
		string(owner.Kind), owner.ID, accountID.String() + "/property-photos/2026/photo.jpg", nil,
		"photo.jpg", "image/jpeg", int64(2048), nil,
		isPrimary, displayOrder, nil,
	}
}

func TestGormPhotoRepository_FindByIDForAccount(t *testing.T) {
	t.Run("finds existing photo", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		accountID := uuid.New()
		photoID := uuid.New()
		owner := attachment.PropertyOwner(uuid.New())

		rows := sqlmock.NewRows(photoColumns).
			AddRow(photoRow(photoID, accountID, owner, true, 0)...)

		mock.ExpectQuery(`SELECT \* FROM "photos" WHERE account_id = \$1 AND id = \$2 AND deleted_at IS NULL ORDER BY .* LIMIT .*`).
			WithArgs(accountID, photoID, 1).
			WillReturnRows(rows)

		photo, err := repo.FindByIDForAccount(context.Background(), accountID, photoID)

		assert.NoError(t, err)
		require.NotNil(t, photo)
		assert.Equal(t, photoID, photo.ID)
		assert.Equal(t, owner, photo.Owner)
		assert.True(t, photo.IsPrimary)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns sentinel for non-existent photo", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		accountID := uuid.New()
		photoID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "photos" WHERE account_id = \$1 AND id = \$2 AND deleted_at IS NULL ORDER BY .* LIMIT .*`).
			WithArgs(accountID, photoID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		photo, err := repo.FindByIDForAccount(context.Background(), accountID, photoID)

		assert.Error(t, err)
		assert.Nil(t, photo)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPhotoRepository_FindByOwner(t *testing.T) {
	t.Run("lists photos in display order", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		accountID := uuid.New()
		owner := attachment.PropertyOwner(uuid.New())
		id1 := uuid.New()
		id2 := uuid.New()

		rows := sqlmock.NewRows(photoColumns).
			AddRow(photoRow(id1, accountID, owner, true, 0)...).
			AddRow(photoRow(id2, accountID, owner, false, 1)...)

		mock.ExpectQuery(`SELECT \* FROM "photos" WHERE account_id = \$1 AND owner_kind = \$2 AND owner_id = \$3 AND deleted_at IS NULL ORDER BY display_order ASC, created_at ASC`).
			WithArgs(accountID, string(owner.Kind), owner.ID).
			WillReturnRows(rows)

		photos, err := repo.FindByOwner(context.Background(), accountID, owner)

		assert.NoError(t, err)
		require.Len(t, photos, 2)
		assert.Equal(t, id1, photos[0].ID)
		assert.Equal(t, 0, photos[0].DisplayOrder)
		assert.Equal(t, id2, photos[1].ID)
		assert.Equal(t, 1, photos[1].DisplayOrder)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPhotoRepository_CountByOwner(t *testing.T) {
	t.Run("counts non-deleted photos", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		accountID := uuid.New()
		owner := attachment.WorkOrderOwner(uuid.New())

		mock.ExpectQuery(`SELECT count\(\*\) FROM "photos" WHERE account_id = \$1 AND owner_kind = \$2 AND owner_id = \$3 AND deleted_at IS NULL`).
			WithArgs(accountID, string(owner.Kind), owner.ID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountByOwner(context.Background(), accountID, owner)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPhotoRepository_CreateWithPlacement(t *testing.T) {
	accountID := uuid.New()
	owner := attachment.PropertyOwner(uuid.New())

	newPhoto := func(t *testing.T) *attachment.Photo {
		t.Helper()
		photo, err := attachment.NewPhoto(
			accountID, owner,
			accountID.String()+"/property-photos/2026/front.jpg",
			nil, "front.jpg", "image/jpeg", 2048, nil,
		)
		require.NoError(t, err)
		return photo
	}

	t.Run("first photo becomes primary at order zero", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		photo := newPhoto(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "photos" WHERE .* FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(photoColumns))
		mock.ExpectExec(`INSERT INTO "photos"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateWithPlacement(context.Background(), photo)

		assert.NoError(t, err)
		assert.True(t, photo.IsPrimary)
		assert.Equal(t, 0, photo.DisplayOrder)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("later photo appends after the current maximum", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		photo := newPhoto(t)

		siblings := sqlmock.NewRows(photoColumns).
			AddRow(photoRow(uuid.New(), accountID, owner, true, 0)...).
			AddRow(photoRow(uuid.New(), accountID, owner, false, 1)...)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "photos" WHERE .* FOR UPDATE`).
			WillReturnRows(siblings)
		mock.ExpectExec(`INSERT INTO "photos"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateWithPlacement(context.Background(), photo)

		assert.NoError(t, err)
		assert.False(t, photo.IsPrimary)
		assert.Equal(t, 2, photo.DisplayOrder)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPhotoRepository_SwapPrimary(t *testing.T) {
	accountID := uuid.New()
	owner := attachment.PropertyOwner(uuid.New())

	t.Run("clears previous primary and flags target", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		currentPrimaryID := uuid.New()
		targetID := uuid.New()

		siblings := sqlmock.NewRows(photoColumns).
			AddRow(photoRow(currentPrimaryID, accountID, owner, true, 0)...).
			AddRow(photoRow(targetID, accountID, owner, false, 1)...)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "photos" WHERE .* FOR UPDATE`).
			WillReturnRows(siblings)
		mock.ExpectExec(`UPDATE "photos" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "photos" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		photo, err := repo.SwapPrimary(context.Background(), accountID, owner, targetID)

		assert.NoError(t, err)
		require.NotNil(t, photo)
		assert.Equal(t, targetID, photo.ID)
		assert.True(t, photo.IsPrimary)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown target reports not found", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		siblings := sqlmock.NewRows(photoColumns).
			AddRow(photoRow(uuid.New(), accountID, owner, true, 0)...)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "photos" WHERE .* FOR UPDATE`).
			WillReturnRows(siblings)
		mock.ExpectRollback()

		photo, err := repo.SwapPrimary(context.Background(), accountID, owner, uuid.New())

		require.Error(t, err)
		assert.Nil(t, photo)
		assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPhotoRepository_Reorder(t *testing.T) {
	accountID := uuid.New()
	owner := attachment.PropertyOwner(uuid.New())

	t.Run("rewrites display orders to match the sequence", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		id0 := uuid.New()
		id1 := uuid.New()
		id2 := uuid.New()

		siblings := sqlmock.NewRows(photoColumns).
			AddRow(photoRow(id0, accountID, owner, true, 0)...).
			AddRow(photoRow(id1, accountID, owner, false, 1)...).
			AddRow(photoRow(id2, accountID, owner, false, 2)...)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "photos" WHERE .* FOR UPDATE`).
			WillReturnRows(siblings)
		// every row is rewritten, including id1 which stays at 1
		mock.ExpectExec(`UPDATE "photos" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "photos" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "photos" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		photos, err := repo.Reorder(context.Background(), accountID, owner, []uuid.UUID{id2, id1, id0})

		assert.NoError(t, err)
		require.Len(t, photos, 3)
		assert.Equal(t, id2, photos[0].ID)
		assert.Equal(t, 0, photos[0].DisplayOrder)
		assert.Equal(t, id1, photos[1].ID)
		assert.Equal(t, 1, photos[1].DisplayOrder)
		assert.Equal(t, id0, photos[2].ID)
		assert.Equal(t, 2, photos[2].DisplayOrder)
		// Primary flag follows the photo, not the position
		assert.True(t, photos[2].IsPrimary)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("resubmitting the current order writes every row", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		id0 := uuid.New()
		id1 := uuid.New()

		siblings := sqlmock.NewRows(photoColumns).
			AddRow(photoRow(id0, accountID, owner, true, 0)...).
			AddRow(photoRow(id1, accountID, owner, false, 1)...)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "photos" WHERE .* FOR UPDATE`).
			WillReturnRows(siblings)
		mock.ExpectExec(`UPDATE "photos" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "photos" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		photos, err := repo.Reorder(context.Background(), accountID, owner, []uuid.UUID{id0, id1})

		assert.NoError(t, err)
		require.Len(t, photos, 2)
		assert.Equal(t, 0, photos[0].DisplayOrder)
		assert.Equal(t, 1, photos[1].DisplayOrder)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown photo id reports not found", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		siblings := sqlmock.NewRows(photoColumns).
			AddRow(photoRow(uuid.New(), accountID, owner, true, 0)...)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "photos" WHERE .* FOR UPDATE`).
			WillReturnRows(siblings)
		mock.ExpectRollback()

		photos, err := repo.Reorder(context.Background(), accountID, owner, []uuid.UUID{uuid.New()})

		require.Error(t, err)
		assert.Nil(t, photos)
		assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("incomplete list reports validation error", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		id0 := uuid.New()
		id1 := uuid.New()

		siblings := sqlmock.NewRows(photoColumns).
			AddRow(photoRow(id0, accountID, owner, true, 0)...).
			AddRow(photoRow(id1, accountID, owner, false, 1)...)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "photos" WHERE .* FOR UPDATE`).
			WillReturnRows(siblings)
		mock.ExpectRollback()

		photos, err := repo.Reorder(context.Background(), accountID, owner, []uuid.UUID{id0})

		require.Error(t, err)
		assert.Nil(t, photos)
		assert.Equal(t, shared.KindValidation, shared.KindOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPhotoRepository_HardDelete(t *testing.T) {
	accountID := uuid.New()
	owner := attachment.PropertyOwner(uuid.New())

	t.Run("deletes the photo row", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		photoID := uuid.New()

		mock.ExpectExec(`DELETE FROM "photos" WHERE account_id = \$1 AND owner_kind = \$2 AND owner_id = \$3 AND id = \$4`).
			WithArgs(accountID, string(owner.Kind), owner.ID, photoID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.HardDelete(context.Background(), accountID, owner, photoID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns sentinel when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockPhotoRepository(t)
		defer mockDB.Close()

		photoID := uuid.New()

		mock.ExpectExec(`DELETE FROM "photos" WHERE account_id = \$1 AND owner_kind = \$2 AND owner_id = \$3 AND id = \$4`).
			WithArgs(accountID, string(owner.Kind), owner.ID, photoID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.HardDelete(context.Background(), accountID, owner, photoID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
