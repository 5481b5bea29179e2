package compiler

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/khalsafoundry/pothi/internal/entities"
)

// GroupContent maps publication name to that publication's rendering of the
// line. Rows are injective per publication; if a duplicate slips through,
// last write wins.
func GroupContent(rows []entities.Content) map[string]string {
	grouped := make(map[string]string, len(rows))
	for _, row := range rows {
		grouped[row.Publication.NameEnglish] = row.Gurmukhi
	}
	return grouped
}

// GroupTranslations builds the two-level translation mapping for one line:
// language name to translation-source name to the translation body, with
// additional_information decoded. A row that fails to decode aborts with a
// DecodeError naming the line and translation source.
func GroupTranslations(lineID uint, rows []entities.Translation) (map[string]map[string]TranslationView, error) {
	grouped := make(map[string]map[string]TranslationView)
	for _, row := range rows {
		info, err := decodeAdditionalInformation(row.AdditionalInformation)
		if err != nil {
			return nil, &DecodeError{
				LineID:            lineID,
				TranslationSource: row.TranslationSource.NameEnglish,
				Err:               err,
			}
		}

		language := row.TranslationSource.Language.Name
		inner, ok := grouped[language]
		if !ok {
			inner = make(map[string]TranslationView)
			grouped[language] = inner
		}
		inner[row.TranslationSource.NameEnglish] = TranslationView{
			Translation:           row.Translation,
			AdditionalInformation: info,
		}
	}
	return grouped, nil
}

// decodeAdditionalInformation decodes the stored JSON document. An absent or
// null column decodes to nil; "{}" decodes to an empty non-nil map.
func decodeAdditionalInformation(raw datatypes.JSON) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var info map[string]any
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// GroupTransliterations maps language tag to phonetic rendering.
func GroupTransliterations(rows []entities.Transliteration) map[string]string {
	grouped := make(map[string]string, len(rows))
	for _, row := range rows {
		grouped[row.Language] = row.Transliteration
	}
	return grouped
}

// CompileLine assembles one line's full compiled body.
func CompileLine(line entities.Line) (LineView, error) {
	translations, err := GroupTranslations(line.ID, line.Translations)
	if err != nil {
		return LineView{}, err
	}

	view := LineView{
		ID:               line.ID,
		OrderID:          line.OrderID,
		Gurmukhi:         line.Gurmukhi,
		FirstLetters:     line.FirstLetters,
		PageNo:           line.PageNo,
		Content:          GroupContent(line.Content),
		Translations:     translations,
		Transliterations: GroupTransliterations(line.Transliterations),
	}
	if line.LineType != nil {
		view.Type = line.LineType.NameEnglish
	}
	return view, nil
}

// CompileShabad assembles one shabad with all of its lines compiled. Lines
// must arrive ordered by order_id.
func CompileShabad(shabad entities.Shabad) (ShabadView, error) {
	lines := make([]LineView, 0, len(shabad.Lines))
	for _, line := range shabad.Lines {
		view, err := CompileLine(line)
		if err != nil {
			return ShabadView{}, err
		}
		lines = append(lines, view)
	}

	view := ShabadView{
		Writer:  shabad.Writer.NameEnglish,
		Section: shabad.Section.NameEnglish,
		Lines:   lines,
	}
	if shabad.Subsection != nil {
		view.Subsection = shabad.Subsection.NameEnglish
	}
	return view, nil
}
