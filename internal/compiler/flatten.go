package compiler

import (
	"sort"

	"github.com/khalsafoundry/pothi/internal/entities"
)

// FlattenSources produces the source hierarchy artifact: sources, sections
// and subsections each sorted by key ascending, then projected to their
// export views. Ordering depends only on keys, never on retrieval order, so
// re-runs against unchanged data emit identical trees. Input slices are
// never mutated.
func FlattenSources(sources []entities.Source) []entities.SourceView {
	ordered := make([]entities.Source, len(sources))
	copy(ordered, sources)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	views := make([]entities.SourceView, 0, len(ordered))
	for _, source := range ordered {
		source.Sections = sortedSections(source.Sections)
		views = append(views, source.View())
	}
	return views
}

func sortedSections(sections []entities.Section) []entities.Section {
	ordered := make([]entities.Section, len(sections))
	copy(ordered, sections)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	for i := range ordered {
		subsections := make([]entities.Subsection, len(ordered[i].Subsections))
		copy(subsections, ordered[i].Subsections)
		sort.Slice(subsections, func(a, b int) bool { return subsections[a].ID < subsections[b].ID })
		ordered[i].Subsections = subsections
	}
	return ordered
}

// FlattenWriters produces the writers reference artifact.
func FlattenWriters(writers []entities.Writer) []entities.WriterView {
	ordered := make([]entities.Writer, len(writers))
	copy(ordered, writers)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	views := make([]entities.WriterView, 0, len(ordered))
	for _, writer := range ordered {
		views = append(views, writer.View())
	}
	return views
}

// FlattenLanguages produces the languages reference artifact.
func FlattenLanguages(languages []entities.Language) []entities.LanguageView {
	ordered := make([]entities.Language, len(languages))
	copy(ordered, languages)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	views := make([]entities.LanguageView, 0, len(ordered))
	for _, language := range ordered {
		views = append(views, language.View())
	}
	return views
}

// FlattenPublications produces the publications reference artifact.
func FlattenPublications(publications []entities.Publication) []entities.PublicationView {
	ordered := make([]entities.Publication, len(publications))
	copy(ordered, publications)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	views := make([]entities.PublicationView, 0, len(ordered))
	for _, publication := range ordered {
		views = append(views, publication.View())
	}
	return views
}

// FlattenLineTypes produces the line-types reference artifact.
func FlattenLineTypes(lineTypes []entities.LineType) []entities.LineTypeView {
	ordered := make([]entities.LineType, len(lineTypes))
	copy(ordered, lineTypes)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	views := make([]entities.LineTypeView, 0, len(ordered))
	for _, lineType := range ordered {
		views = append(views, lineType.View())
	}
	return views
}

// FlattenTranslationSources produces the translation-source catalog with
// language and source foreign keys resolved to display names.
func FlattenTranslationSources(translationSources []entities.TranslationSource) []entities.TranslationSourceView {
	ordered := make([]entities.TranslationSource, len(translationSources))
	copy(ordered, translationSources)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	views := make([]entities.TranslationSourceView, 0, len(ordered))
	for _, translationSource := range ordered {
		views = append(views, translationSource.View())
	}
	return views
}
