package entities

// Export views are the artifact-facing projections of the corpus entities.
// They carry display fields only: internal keys and join columns never
// appear in compiled output. Nested collections are projected as-is, so
// callers sort the entity tree before taking views.

type SourceView struct {
	NameGurmukhi string        `json:"name_gurmukhi"`
	NameEnglish  string        `json:"name_english"`
	Sections     []SectionView `json:"sections"`
}

type SectionView struct {
	NameGurmukhi string           `json:"name_gurmukhi"`
	NameEnglish  string           `json:"name_english"`
	Subsections  []SubsectionView `json:"subsections"`
}

type SubsectionView struct {
	NameGurmukhi string `json:"name_gurmukhi"`
	NameEnglish  string `json:"name_english"`
}

type WriterView struct {
	NameGurmukhi string `json:"name_gurmukhi"`
	NameEnglish  string `json:"name_english"`
}

type LanguageView struct {
	Name string `json:"name"`
}

type PublicationView struct {
	NameGurmukhi string `json:"name_gurmukhi"`
	NameEnglish  string `json:"name_english"`
}

type LineTypeView struct {
	NameGurmukhi string `json:"name_gurmukhi"`
	NameEnglish  string `json:"name_english"`
}

// TranslationSourceView resolves the language and source foreign keys to
// their display names.
type TranslationSourceView struct {
	NameGurmukhi string `json:"name_gurmukhi"`
	NameEnglish  string `json:"name_english"`
	Language     string `json:"language"`
	Source       string `json:"source"`
}

func (s Source) View() SourceView {
	sections := make([]SectionView, 0, len(s.Sections))
	for _, section := range s.Sections {
		sections = append(sections, section.View())
	}
	return SourceView{
		NameGurmukhi: s.NameGurmukhi,
		NameEnglish:  s.NameEnglish,
		Sections:     sections,
	}
}

func (s Section) View() SectionView {
	subsections := make([]SubsectionView, 0, len(s.Subsections))
	for _, subsection := range s.Subsections {
		subsections = append(subsections, subsection.View())
	}
	return SectionView{
		NameGurmukhi: s.NameGurmukhi,
		NameEnglish:  s.NameEnglish,
		Subsections:  subsections,
	}
}

func (s Subsection) View() SubsectionView {
	return SubsectionView{NameGurmukhi: s.NameGurmukhi, NameEnglish: s.NameEnglish}
}

func (w Writer) View() WriterView {
	return WriterView{NameGurmukhi: w.NameGurmukhi, NameEnglish: w.NameEnglish}
}

func (l Language) View() LanguageView {
	return LanguageView{Name: l.Name}
}

func (p Publication) View() PublicationView {
	return PublicationView{NameGurmukhi: p.NameGurmukhi, NameEnglish: p.NameEnglish}
}

func (t LineType) View() LineTypeView {
	return LineTypeView{NameGurmukhi: t.NameGurmukhi, NameEnglish: t.NameEnglish}
}

func (t TranslationSource) View() TranslationSourceView {
	return TranslationSourceView{
		NameGurmukhi: t.NameGurmukhi,
		NameEnglish:  t.NameEnglish,
		Language:     t.Language.Name,
		Source:       t.Source.NameEnglish,
	}
}
