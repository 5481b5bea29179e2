package entities

import "gorm.io/datatypes"

type Source struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	NameGurmukhi string    `gorm:"size:256" json:"name_gurmukhi"`
	NameEnglish  string    `gorm:"index;size:256" json:"name_english"` // e.g., "Sri Guru Granth Sahib Ji"
	Sections     []Section `gorm:"foreignKey:SourceID" json:"sections,omitempty"`
}

type Section struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	SourceID     uint         `gorm:"index" json:"-"`
	NameGurmukhi string       `gorm:"size:256" json:"name_gurmukhi"`
	NameEnglish  string       `gorm:"size:256" json:"name_english"` // e.g., "Jap", "Raag Gauri"
	Subsections  []Subsection `gorm:"foreignKey:SectionID" json:"subsections,omitempty"`
}

type Subsection struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SectionID    uint   `gorm:"index" json:"-"`
	NameGurmukhi string `gorm:"size:256" json:"name_gurmukhi"`
	NameEnglish  string `gorm:"size:256" json:"name_english"`
}

type Writer struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	NameGurmukhi string `gorm:"size:256" json:"name_gurmukhi"`
	NameEnglish  string `gorm:"index;size:256" json:"name_english"` // e.g., "Guru Nanak Dev Ji"
}

type Language struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:64" json:"name"` // e.g., "English", "Punjabi"
}

type Publication struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	NameGurmukhi string `gorm:"size:256" json:"name_gurmukhi"`
	NameEnglish  string `gorm:"uniqueIndex;size:256" json:"name_english"` // e.g., "SGPC"
}

type LineType struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	NameGurmukhi string `gorm:"size:64" json:"name_gurmukhi"`
	NameEnglish  string `gorm:"size:64" json:"name_english"` // e.g., "rahau", "pauri"
}

type TranslationSource struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	NameGurmukhi string   `gorm:"size:256" json:"name_gurmukhi"`
	NameEnglish  string   `gorm:"size:256" json:"name_english"` // e.g., "Prof. Sahib Singh"
	LanguageID   uint     `gorm:"index" json:"-"`
	SourceID     uint     `gorm:"index" json:"-"`
	Language     Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Source       Source   `gorm:"foreignKey:SourceID" json:"-"`
}

type Shabad struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	SourceID     uint        `gorm:"index" json:"-"`
	WriterID     uint        `gorm:"index" json:"-"`
	SectionID    uint        `gorm:"index" json:"-"`
	SubsectionID *uint       `gorm:"index" json:"-"`
	Sno          int         `gorm:"index" json:"sno"` // sequence order among the source's shabads
	Source       Source      `gorm:"foreignKey:SourceID" json:"-"`
	Writer       Writer      `gorm:"foreignKey:WriterID" json:"writer,omitempty"`
	Section      Section     `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	Subsection   *Subsection `gorm:"foreignKey:SubsectionID" json:"subsection,omitempty"`
	Lines        []Line      `gorm:"foreignKey:ShabadID" json:"lines,omitempty"`
}

type Line struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ShabadID     uint   `gorm:"index" json:"shabad_id"`
	SourceID     uint   `gorm:"uniqueIndex:idx_lines_source_order" json:"-"`
	OrderID      int    `gorm:"uniqueIndex:idx_lines_source_order" json:"order_id"` // strictly increasing within a source
	PageNo       int    `gorm:"index" json:"page_no"`
	Gurmukhi     string `gorm:"type:text" json:"gurmukhi"`
	FirstLetters string `gorm:"index;size:128" json:"first_letters"` // phonetic search key
	LineTypeID   *uint  `gorm:"index" json:"-"`

	LineType         *LineType         `gorm:"foreignKey:LineTypeID" json:"line_type,omitempty"`
	Content          []Content         `gorm:"foreignKey:LineID" json:"content,omitempty"`
	Translations     []Translation     `gorm:"foreignKey:LineID" json:"translations,omitempty"`
	Transliterations []Transliteration `gorm:"foreignKey:LineID" json:"transliterations,omitempty"`
}

type Content struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	LineID        uint        `gorm:"uniqueIndex:idx_content_line_publication" json:"line_id"`
	PublicationID uint        `gorm:"uniqueIndex:idx_content_line_publication" json:"-"`
	Gurmukhi      string      `gorm:"type:text" json:"gurmukhi"`
	Publication   Publication `gorm:"foreignKey:PublicationID" json:"publication,omitempty"`
}

type Translation struct {
	ID                    uint              `gorm:"primaryKey" json:"id"`
	LineID                uint              `gorm:"index" json:"line_id"`
	TranslationSourceID   uint              `gorm:"index" json:"-"`
	Translation           string            `gorm:"type:text" json:"translation"`
	AdditionalInformation datatypes.JSON    `json:"additional_information,omitempty"`
	TranslationSource     TranslationSource `gorm:"foreignKey:TranslationSourceID" json:"translation_source,omitempty"`
}

type Transliteration struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	LineID          uint   `gorm:"index" json:"line_id"`
	Language        string `gorm:"size:64" json:"language"` // e.g., "english", "devanagari"
	Transliteration string `gorm:"type:text" json:"transliteration"`
}

func (Content) TableName() string {
	return "content"
}
