package corpus

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/khalsafoundry/pothi/internal/entities"
	"github.com/khalsafoundry/pothi/internal/search"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_corpus_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Source{},
		&entities.Section{},
		&entities.Subsection{},
		&entities.Writer{},
		&entities.Language{},
		&entities.Publication{},
		&entities.LineType{},
		&entities.TranslationSource{},
		&entities.Shabad{},
		&entities.Line{},
		&entities.Content{},
		&entities.Translation{},
		&entities.Transliteration{},
		&entities.Bani{},
		&entities.BaniLine{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func TestRepository_WritersOrderedByKey(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Create(&entities.Writer{ID: 2, NameEnglish: "Guru Angad Dev Ji"}).Error)
	require.NoError(t, db.Create(&entities.Writer{ID: 1, NameEnglish: "Guru Nanak Dev Ji"}).Error)

	writers, err := repo.Writers(context.Background())

	require.NoError(t, err)
	require.Len(t, writers, 2)
	assert.Equal(t, uint(1), writers[0].ID)
	assert.Equal(t, uint(2), writers[1].ID)
}

func TestRepository_SourcesPreloadHierarchyOrdered(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Create(&entities.Source{ID: 2, NameEnglish: "Sri Dasam Granth"}).Error)
	require.NoError(t, db.Create(&entities.Source{ID: 1, NameEnglish: "Sri Guru Granth Sahib Ji"}).Error)
	require.NoError(t, db.Create(&entities.Section{ID: 2, SourceID: 1, NameEnglish: "Raag Gauri"}).Error)
	require.NoError(t, db.Create(&entities.Section{ID: 1, SourceID: 1, NameEnglish: "Jap"}).Error)
	require.NoError(t, db.Create(&entities.Subsection{ID: 1, SectionID: 2, NameEnglish: "Guareri"}).Error)

	sources, err := repo.Sources(context.Background())

	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "Sri Guru Granth Sahib Ji", sources[0].NameEnglish)

	require.Len(t, sources[0].Sections, 2)
	assert.Equal(t, "Jap", sources[0].Sections[0].NameEnglish)
	assert.Equal(t, "Raag Gauri", sources[0].Sections[1].NameEnglish)
	require.Len(t, sources[0].Sections[1].Subsections, 1)
	assert.Equal(t, "Guareri", sources[0].Sections[1].Subsections[0].NameEnglish)
	assert.Empty(t, sources[1].Sections)
}

func TestRepository_TranslationSourcesResolveRelations(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Create(&entities.Language{ID: 1, Name: "English"}).Error)
	require.NoError(t, db.Create(&entities.Source{ID: 1, NameEnglish: "Sri Guru Granth Sahib Ji"}).Error)
	require.NoError(t, db.Create(&entities.TranslationSource{
		ID: 1, NameEnglish: "Dr. Sant Singh Khalsa", LanguageID: 1, SourceID: 1,
	}).Error)

	translationSources, err := repo.TranslationSources(context.Background())

	require.NoError(t, err)
	require.Len(t, translationSources, 1)
	assert.Equal(t, "English", translationSources[0].Language.Name)
	assert.Equal(t, "Sri Guru Granth Sahib Ji", translationSources[0].Source.NameEnglish)
}

func TestRepository_BanisMembershipOrderedByLineOrder(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	lines := []entities.Line{
		{ID: 21, SourceID: 1, OrderID: 5, Gurmukhi: "ਦੂਜੀ"},
		{ID: 22, SourceID: 1, OrderID: 2, Gurmukhi: "ਪਹਿਲੀ"},
		{ID: 23, SourceID: 1, OrderID: 9, Gurmukhi: "ਤੀਜੀ"},
	}
	require.NoError(t, db.Create(&lines).Error)
	require.NoError(t, db.Create(&entities.Bani{ID: 1, NameEnglish: "Anand Sahib"}).Error)
	membership := []entities.BaniLine{
		{BaniID: 1, LineID: 21, LineGroup: 1},
		{BaniID: 1, LineID: 23, LineGroup: 1},
		{BaniID: 1, LineID: 22, LineGroup: 1},
	}
	require.NoError(t, db.Create(&membership).Error)

	banis, err := repo.Banis(context.Background())

	require.NoError(t, err)
	require.Len(t, banis, 1)
	require.Len(t, banis[0].BaniLines, 3)

	var lineIDs []uint
	for _, member := range banis[0].BaniLines {
		lineIDs = append(lineIDs, member.LineID)
	}
	assert.Equal(t, []uint{22, 21, 23}, lineIDs)
	assert.Equal(t, "ਪਹਿਲੀ", banis[0].BaniLines[0].Line.Gurmukhi)
}

func TestRepository_ShabadsBySourceOrderingContract(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Create(&entities.Source{ID: 1, NameEnglish: "Sri Guru Granth Sahib Ji"}).Error)
	require.NoError(t, db.Create(&entities.Source{ID: 2, NameEnglish: "Sri Dasam Granth"}).Error)
	require.NoError(t, db.Create(&entities.Writer{ID: 1, NameEnglish: "Guru Nanak Dev Ji"}).Error)
	require.NoError(t, db.Create(&entities.Section{ID: 1, SourceID: 1, NameEnglish: "Jap"}).Error)
	require.NoError(t, db.Create(&entities.Publication{ID: 1, NameEnglish: "SGPC"}).Error)
	require.NoError(t, db.Create(&entities.Publication{ID: 2, NameEnglish: "Faridkot Wala"}).Error)
	require.NoError(t, db.Create(&entities.Language{ID: 1, Name: "English"}).Error)
	require.NoError(t, db.Create(&entities.TranslationSource{
		ID: 1, NameEnglish: "Dr. Sant Singh Khalsa", LanguageID: 1, SourceID: 1,
	}).Error)

	// Sequence numbers deliberately inserted out of order.
	shabads := []entities.Shabad{
		{ID: 2, SourceID: 1, WriterID: 1, SectionID: 1, Sno: 2},
		{ID: 1, SourceID: 1, WriterID: 1, SectionID: 1, Sno: 1},
		{ID: 9, SourceID: 2, WriterID: 1, SectionID: 1, Sno: 1},
	}
	require.NoError(t, db.Create(&shabads).Error)

	lines := []entities.Line{
		{ID: 11, ShabadID: 1, SourceID: 1, OrderID: 2, PageNo: 1, Gurmukhi: "ਆਦਿ ਸਚੁ"},
		{ID: 10, ShabadID: 1, SourceID: 1, OrderID: 1, PageNo: 1, Gurmukhi: "ਜਪੁ"},
		{ID: 12, ShabadID: 2, SourceID: 1, OrderID: 3, PageNo: 2, Gurmukhi: "ਸੋਚੈ ਸੋਚਿ"},
		{ID: 90, ShabadID: 9, SourceID: 2, OrderID: 1, PageNo: 1, Gurmukhi: "ਚਕ੍ਰ ਚਿਹਨ"},
	}
	require.NoError(t, db.Create(&lines).Error)

	content := []entities.Content{
		{LineID: 10, PublicationID: 2, Gurmukhi: "ਜਪੁ ॥"},
		{LineID: 10, PublicationID: 1, Gurmukhi: "ਜਪੁ"},
	}
	require.NoError(t, db.Create(&content).Error)
	require.NoError(t, db.Create(&entities.Translation{
		LineID: 10, TranslationSourceID: 1, Translation: "Chant And Meditate",
	}).Error)

	result, err := repo.ShabadsBySource(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].Sno)
	assert.Equal(t, 2, result[1].Sno)
	assert.Equal(t, "Guru Nanak Dev Ji", result[0].Writer.NameEnglish)
	assert.Equal(t, "Jap", result[0].Section.NameEnglish)

	require.Len(t, result[0].Lines, 2)
	assert.Equal(t, 1, result[0].Lines[0].OrderID)
	assert.Equal(t, 2, result[0].Lines[1].OrderID)

	first := result[0].Lines[0]
	require.Len(t, first.Content, 2)
	assert.Equal(t, "SGPC", first.Content[0].Publication.NameEnglish)
	assert.Equal(t, "Faridkot Wala", first.Content[1].Publication.NameEnglish)

	require.Len(t, first.Translations, 1)
	assert.Equal(t, "Dr. Sant Singh Khalsa", first.Translations[0].TranslationSource.NameEnglish)
	assert.Equal(t, "English", first.Translations[0].TranslationSource.Language.Name)
}

func seedSearchLines(t *testing.T, db *gorm.DB) {
	t.Helper()
	lines := []entities.Line{
		{ID: 3, SourceID: 1, OrderID: 3, Gurmukhi: "ਹਰਿ ਸਤਿ ਨਾਮੁ", FirstLetters: "ਹਸਨ"},
		{ID: 2, SourceID: 1, OrderID: 2, Gurmukhi: "ਸਤਿਗੁਰੁ ਪ੍ਰਸਾਦਿ", FirstLetters: "ਸਪ"},
		{ID: 1, SourceID: 1, OrderID: 1, Gurmukhi: "ਸਤਿ", FirstLetters: "ਸ"},
		{ID: 4, SourceID: 1, OrderID: 4, Gurmukhi: "ਵਾਹਿਗੁਰੂ ਜੀ ਕਾ ਖਾਲਸਾ", FirstLetters: "ਵਜਕਖ"},
		{ID: 5, SourceID: 1, OrderID: 5, Gurmukhi: "ਗੁਰ ਹਰਿ ਸਤਿ ਨਾਮ ਮੇਰਾ", FirstLetters: "ਗਹਸਨਮ"},
	}
	require.NoError(t, db.Create(&lines).Error)
}

func TestRepository_SearchLinesRankedText(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	seedSearchLines(t, db)

	lines, err := repo.SearchLines(context.Background(), search.ByText("ਸਤਿ", true), 0)

	require.NoError(t, err)
	require.Len(t, lines, 4)
	// Exact match first, then the prefix match, then any-position matches.
	assert.Equal(t, uint(1), lines[0].ID)
	assert.Equal(t, uint(2), lines[1].ID)
	assert.ElementsMatch(t, []uint{3, 5}, []uint{lines[2].ID, lines[3].ID})
}

func TestRepository_SearchLinesUnrankedStillFilters(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	seedSearchLines(t, db)

	lines, err := repo.SearchLines(context.Background(), search.ByText("ਸਤਿ", false), 0)

	require.NoError(t, err)
	var ids []uint
	for _, line := range lines {
		ids = append(ids, line.ID)
	}
	assert.ElementsMatch(t, []uint{1, 2, 3, 5}, ids)
}

func TestRepository_SearchLinesFirstLettersFromRomanInput(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	seedSearchLines(t, db)

	// AnmolLipi keyboard input: h s n maps to the akhars of the stored key.
	lines, err := repo.SearchLines(context.Background(), search.ByFirstLetters("hsn", true), 0)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, uint(3), lines[0].ID)
	assert.Equal(t, uint(5), lines[1].ID)
}

func TestRepository_SearchLinesLimit(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	seedSearchLines(t, db)

	lines, err := repo.SearchLines(context.Background(), search.ByText("ਸਤਿ", true), 2)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, uint(1), lines[0].ID)
	assert.Equal(t, uint(2), lines[1].ID)
}

func TestRepository_SearchLinesNoMatches(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	seedSearchLines(t, db)

	lines, err := repo.SearchLines(context.Background(), search.ByText("ਐਸੀ", true), 0)

	require.NoError(t, err)
	assert.Empty(t, lines)
}
