package compiler

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalsafoundry/pothi/internal/entities"
)

func TestFlattenSources_SortsEveryLevelByKey(t *testing.T) {
	// Retrieval order is deliberately shuffled at every level.
	sources := []entities.Source{
		{
			ID:           2,
			NameGurmukhi: "ਦਸਮ ਗ੍ਰੰਥ",
			NameEnglish:  "Sri Dasam Granth",
			Sections: []entities.Section{
				{ID: 21, NameEnglish: "Jaap"},
			},
		},
		{
			ID:           1,
			NameGurmukhi: "ਸ੍ਰੀ ਗੁਰੂ ਗ੍ਰੰਥ ਸਾਹਿਬ ਜੀ",
			NameEnglish:  "Sri Guru Granth Sahib Ji",
			Sections: []entities.Section{
				{
					ID:          12,
					NameEnglish: "Raag Gauri",
					Subsections: []entities.Subsection{
						{ID: 122, NameEnglish: "Gauri Deepaki"},
						{ID: 121, NameEnglish: "Gauri Guarayri"},
					},
				},
				{ID: 11, NameEnglish: "Jap"},
			},
		},
	}

	views := FlattenSources(sources)

	require.Len(t, views, 2)
	assert.Equal(t, "Sri Guru Granth Sahib Ji", views[0].NameEnglish)
	assert.Equal(t, "Sri Dasam Granth", views[1].NameEnglish)

	require.Len(t, views[0].Sections, 2)
	assert.Equal(t, "Jap", views[0].Sections[0].NameEnglish)
	assert.Equal(t, "Raag Gauri", views[0].Sections[1].NameEnglish)

	subsections := views[0].Sections[1].Subsections
	require.Len(t, subsections, 2)
	assert.Equal(t, "Gauri Guarayri", subsections[0].NameEnglish)
	assert.Equal(t, "Gauri Deepaki", subsections[1].NameEnglish)
}

func TestFlattenSources_ReproducibleAcrossRetrievalOrders(t *testing.T) {
	a := []entities.Source{
		{ID: 1, NameEnglish: "One", Sections: []entities.Section{{ID: 2, NameEnglish: "B"}, {ID: 1, NameEnglish: "A"}}},
		{ID: 2, NameEnglish: "Two"},
	}
	b := []entities.Source{
		{ID: 2, NameEnglish: "Two"},
		{ID: 1, NameEnglish: "One", Sections: []entities.Section{{ID: 1, NameEnglish: "A"}, {ID: 2, NameEnglish: "B"}}},
	}

	if diff := cmp.Diff(FlattenSources(a), FlattenSources(b)); diff != "" {
		t.Errorf("flattened output differs with retrieval order (-a +b):\n%s", diff)
	}
}

func TestFlattenSources_DoesNotMutateInput(t *testing.T) {
	sources := []entities.Source{
		{ID: 2, NameEnglish: "Two"},
		{ID: 1, NameEnglish: "One", Sections: []entities.Section{
			{ID: 12, NameEnglish: "B"},
			{ID: 11, NameEnglish: "A"},
		}},
	}

	FlattenSources(sources)

	assert.Equal(t, uint(2), sources[0].ID)
	assert.Equal(t, "B", sources[1].Sections[0].NameEnglish)
}

func TestFlattenSources_StripsInternalKeys(t *testing.T) {
	views := FlattenSources([]entities.Source{
		{ID: 7, NameEnglish: "One", Sections: []entities.Section{{ID: 3, SourceID: 7, NameEnglish: "A"}}},
	})

	raw, err := json.Marshal(views)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"id"`)
	assert.NotContains(t, string(raw), `"source_id"`)
}

func TestFlattenTranslationSources_ResolvesForeignKeysToNames(t *testing.T) {
	views := FlattenTranslationSources([]entities.TranslationSource{
		{
			ID:          2,
			NameEnglish: "Bhai Manmohan Singh",
			Language:    entities.Language{ID: 1, Name: "Punjabi"},
			Source:      entities.Source{ID: 1, NameEnglish: "Sri Guru Granth Sahib Ji"},
		},
		{
			ID:          1,
			NameEnglish: "Dr. Sant Singh Khalsa",
			Language:    entities.Language{ID: 2, Name: "English"},
			Source:      entities.Source{ID: 1, NameEnglish: "Sri Guru Granth Sahib Ji"},
		},
	})

	require.Len(t, views, 2)
	assert.Equal(t, "Dr. Sant Singh Khalsa", views[0].NameEnglish)
	assert.Equal(t, "English", views[0].Language)
	assert.Equal(t, "Sri Guru Granth Sahib Ji", views[0].Source)
	assert.Equal(t, "Punjabi", views[1].Language)
}

func TestFlattenWriters_SortsByKey(t *testing.T) {
	views := FlattenWriters([]entities.Writer{
		{ID: 3, NameEnglish: "Guru Amar Das Ji"},
		{ID: 1, NameEnglish: "Guru Nanak Dev Ji"},
		{ID: 2, NameEnglish: "Guru Angad Dev Ji"},
	})

	require.Len(t, views, 3)
	assert.Equal(t, "Guru Nanak Dev Ji", views[0].NameEnglish)
	assert.Equal(t, "Guru Angad Dev Ji", views[1].NameEnglish)
	assert.Equal(t, "Guru Amar Das Ji", views[2].NameEnglish)
}
