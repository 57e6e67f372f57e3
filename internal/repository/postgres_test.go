package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/errcodes"
	"github.com/just-nibble/folio-service/pkg/log"
)

// testDB connects to the database named by FOLIO_TEST_DATABASE_DSN and
// empties every table. Tests are skipped when it is unset.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("FOLIO_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("FOLIO_TEST_DATABASE_DSN not set")
	}

	db, err := Open(config.DatabaseConfig{DSN: dsn}, log.Nop())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Exec("TRUNCATE portfolios, certifications, projects, users").Error)
	return db
}

func TestPortfolioStoreCRUD(t *testing.T) {
	db := testDB(t)
	store := NewGormPortfolioStore(db)
	ctx := context.Background()

	first, err := store.SavePortfolio(ctx, domain.PortfolioItem{
		Title: "Poster", Category: domain.CategoryDesignGraphics, Description: "A poster",
		Tags: []string{"print"}, ImageURL: "https://cdn.example.com/poster.png",
		CreatedAt: time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
	second, err := store.SavePortfolio(ctx, domain.PortfolioItem{
		Title: "Loop", Category: domain.CategoryMotionGraphics, Description: "A loop",
		ImageURL: "https://cdn.example.com/loop.gif",
	})
	require.NoError(t, err)

	all, err := store.ListPortfolios(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")
	assert.Equal(t, []string{}, all[0].Tags)

	design, err := store.ListPortfolios(ctx, domain.CategoryDesignGraphics)
	require.NoError(t, err)
	require.Len(t, design, 1)
	assert.Equal(t, []string{"print"}, design[0].Tags)

	first.Title = "Poster v2"
	first.Tags = nil
	updated, err := store.UpdatePortfolio(ctx, *first)
	require.NoError(t, err)
	assert.Equal(t, "Poster v2", updated.Title)
	assert.Empty(t, updated.Tags)

	require.NoError(t, store.DeletePortfolio(ctx, first.ID))
	assert.ErrorIs(t, store.DeletePortfolio(ctx, first.ID), errcodes.ErrNoRecordFound)
	_, err = store.PortfolioByID(ctx, first.ID)
	assert.ErrorIs(t, err, errcodes.ErrNoRecordFound)
}

func TestCertificationsOrderedByYear(t *testing.T) {
	db := testDB(t)
	store := NewGormCertificationStore(db)
	ctx := context.Background()

	for _, year := range []string{"2021", "2024", "2019"} {
		_, err := store.SaveCertification(ctx, domain.Certification{
			Name: "Cert " + year, Type: domain.CertificationPDF, Issuer: "Org",
			Year: year, FileURL: "https://cdn.example.com/" + year + ".pdf",
		})
		require.NoError(t, err)
	}

	certs, err := store.ListCertifications(ctx)
	require.NoError(t, err)
	require.Len(t, certs, 3)
	assert.Equal(t, []string{"2024", "2021", "2019"}, []string{certs[0].Year, certs[1].Year, certs[2].Year})
}

func TestMalformedRowIsReported(t *testing.T) {
	db := testDB(t)
	store := NewGormProjectStore(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&Project{
		ID: "6f1c1f5e-8f5f-4a44-9d39-0a7c5e0f0b11", Name: "Broken", Description: "x",
		LiveURL: "not a url", Category: "web",
	}).Error)

	_, err := store.ListProjects(ctx)

	assert.ErrorIs(t, err, errcodes.ErrMalformedRecord)
}

func TestSaveUserUpsertsByEmail(t *testing.T) {
	db := testDB(t)
	store := NewGormUserStore(db)
	ctx := context.Background()

	first, err := store.SaveUser(ctx, domain.User{Email: "me@example.com", PasswordHash: "a"})
	require.NoError(t, err)
	second, err := store.SaveUser(ctx, domain.User{Email: "me@example.com", PasswordHash: "b"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "b", second.PasswordHash)

	byID, err := store.UserByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", byID.Email)
}
