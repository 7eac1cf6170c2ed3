package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mathématiques", "mathematiques"},
		{"Français", "francais"},
		{"1ère année", "1ere-annee"},
		{"Sciences de la vie et de la terre", "sciences-de-la-vie-et-de-la-terre"},
		{"  Équations   du 2nd degré  ", "equations-du-2nd-degre"},
		{"Chapitre 3: Les suites (partie 1)", "chapitre-3-les-suites-partie-1"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestEnsureUniqueSlug(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// a second pooled connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec(`CREATE TABLE things (slug TEXT)`).Error)

	slug, err := EnsureUniqueSlug(db, "maths", "things", "slug")
	require.NoError(t, err)
	assert.Equal(t, "maths", slug)

	require.NoError(t, db.Exec(`INSERT INTO things (slug) VALUES ('maths')`).Error)
	slug, err = EnsureUniqueSlug(db, "maths", "things", "slug")
	require.NoError(t, err)
	assert.Equal(t, "maths-2", slug)

	require.NoError(t, db.Exec(`INSERT INTO things (slug) VALUES ('maths-2'), ('maths-7')`).Error)
	slug, err = EnsureUniqueSlug(db, "maths", "things", "slug")
	require.NoError(t, err)
	assert.Equal(t, "maths-8", slug)

	// unrelated prefixed slugs do not bump the counter
	require.NoError(t, db.Exec(`INSERT INTO things (slug) VALUES ('maths-avancees')`).Error)
	slug, err = EnsureUniqueSlug(db, "maths", "things", "slug")
	require.NoError(t, err)
	assert.Equal(t, "maths-8", slug)

	_, err = EnsureUniqueSlug(db, "", "things", "slug")
	assert.Error(t, err)
}
