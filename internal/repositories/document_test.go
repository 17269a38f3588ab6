package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/flashnote-app/flashnote/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user, err := NewUserRepository(db).Register(context.Background(), email, "secret1")
	require.NoError(t, err)
	return user
}

func TestCreateDocument(t *testing.T) {
	db := testDB(t)
	repo := NewDocumentRepository(db)
	owner := seedUser(t, db, "a@x.com")
	ctx := context.Background()

	doc, err := repo.Create(ctx, owner.ID, "")
	require.NoError(t, err)
	assert.Len(t, doc.Slug, models.SlugLength)
	assert.Equal(t, "", doc.Content)
	assert.Equal(t, owner.ID, doc.OwnerID)
	assert.Nil(t, doc.EditToken)

	other, err := repo.Create(ctx, owner.ID, "hello")
	require.NoError(t, err)
	assert.NotEqual(t, doc.Slug, other.Slug)
	assert.Equal(t, "hello", other.Content)
}

func TestFindBySlug(t *testing.T) {
	db := testDB(t)
	repo := NewDocumentRepository(db)
	owner := seedUser(t, db, "a@x.com")
	ctx := context.Background()

	created, err := repo.Create(ctx, owner.ID, "initial")
	require.NoError(t, err)

	doc, err := repo.FindBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, "initial", doc.Content)

	_, err = repo.FindBySlug(ctx, "no-such-doc")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateContentPermissions(t *testing.T) {
	db := testDB(t)
	repo := NewDocumentRepository(db)
	owner := seedUser(t, db, "a@x.com")
	stranger := seedUser(t, db, "b@x.com")
	ctx := context.Background()

	doc, err := repo.Create(ctx, owner.ID, "")
	require.NoError(t, err)

	// Owner may write.
	updated, err := repo.UpdateContent(ctx, doc.Slug, "hello", owner.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Content)

	// Authenticated non-owner without the token may not.
	_, err = repo.UpdateContent(ctx, doc.Slug, "nope", stranger.ID, "")
	require.ErrorIs(t, err, models.ErrForbidden)

	// Anonymous without the token may not.
	_, err = repo.UpdateContent(ctx, doc.Slug, "nope", 0, "")
	require.ErrorIs(t, err, models.ErrForbidden)

	// Anonymous with the correct token may.
	withToken, err := repo.EnsureEditToken(ctx, doc.Slug, owner.ID)
	require.NoError(t, err)
	updated, err = repo.UpdateContent(ctx, doc.Slug, "via token", 0, *withToken.EditToken)
	require.NoError(t, err)
	assert.Equal(t, "via token", updated.Content)

	// Wrong token is still forbidden.
	_, err = repo.UpdateContent(ctx, doc.Slug, "nope", 0, "wrong-token-1")
	require.ErrorIs(t, err, models.ErrForbidden)

	_, err = repo.UpdateContent(ctx, "no-such-doc", "x", owner.ID, "")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateContentLastWriteWins(t *testing.T) {
	db := testDB(t)
	repo := NewDocumentRepository(db)
	owner := seedUser(t, db, "a@x.com")
	ctx := context.Background()

	doc, err := repo.Create(ctx, owner.ID, "")
	require.NoError(t, err)

	_, err = repo.UpdateContent(ctx, doc.Slug, "first", owner.ID, "")
	require.NoError(t, err)
	_, err = repo.UpdateContent(ctx, doc.Slug, "second", owner.ID, "")
	require.NoError(t, err)

	current, err := repo.FindBySlug(ctx, doc.Slug)
	require.NoError(t, err)
	assert.Equal(t, "second", current.Content)
}

func TestEnsureEditTokenIdempotent(t *testing.T) {
	db := testDB(t)
	repo := NewDocumentRepository(db)
	owner := seedUser(t, db, "a@x.com")
	stranger := seedUser(t, db, "b@x.com")
	ctx := context.Background()

	doc, err := repo.Create(ctx, owner.ID, "")
	require.NoError(t, err)

	first, err := repo.EnsureEditToken(ctx, doc.Slug, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, first.EditToken)
	assert.Len(t, *first.EditToken, models.EditTokenLength)

	second, err := repo.EnsureEditToken(ctx, doc.Slug, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, *first.EditToken, *second.EditToken)

	_, err = repo.EnsureEditToken(ctx, doc.Slug, stranger.ID)
	require.ErrorIs(t, err, models.ErrForbidden)

	_, err = repo.EnsureEditToken(ctx, "no-such-doc", owner.ID)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteBySlug(t *testing.T) {
	db := testDB(t)
	repo := NewDocumentRepository(db)
	owner := seedUser(t, db, "a@x.com")
	stranger := seedUser(t, db, "b@x.com")
	ctx := context.Background()

	doc, err := repo.Create(ctx, owner.ID, "")
	require.NoError(t, err)

	err = repo.DeleteBySlug(ctx, doc.Slug, stranger.ID)
	require.ErrorIs(t, err, models.ErrForbidden)

	require.NoError(t, repo.DeleteBySlug(ctx, doc.Slug, owner.ID))

	_, err = repo.FindBySlug(ctx, doc.Slug)
	require.ErrorIs(t, err, models.ErrNotFound)

	err = repo.DeleteBySlug(ctx, doc.Slug, owner.ID)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestListByOwner(t *testing.T) {
	db := testDB(t)
	repo := NewDocumentRepository(db)
	owner := seedUser(t, db, "a@x.com")
	other := seedUser(t, db, "b@x.com")
	ctx := context.Background()

	older, err := repo.Create(ctx, owner.ID, "")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	newer, err := repo.Create(ctx, owner.ID, "")
	require.NoError(t, err)
	_, err = repo.Create(ctx, other.ID, "")
	require.NoError(t, err)

	docs, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, newer.Slug, docs[0].Slug)
	assert.Equal(t, older.Slug, docs[1].Slug)

	// Updating the older one moves it to the front.
	time.Sleep(10 * time.Millisecond)
	_, err = repo.UpdateContent(ctx, older.Slug, "bump", owner.ID, "")
	require.NoError(t, err)

	docs, err = repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, older.Slug, docs[0].Slug)
}
