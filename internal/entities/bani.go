package entities

type Bani struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	NameGurmukhi string     `gorm:"size:256" json:"name_gurmukhi"`
	NameEnglish  string     `gorm:"index;size:256" json:"name_english"` // e.g., "Japji Sahib"
	BaniLines    []BaniLine `gorm:"foreignKey:BaniID" json:"bani_lines,omitempty"`
}

// BaniLine ties one Line into a Bani's membership. LineGroup partitions the
// membership into contiguous runs of line order; a bani with a single
// unbroken run has one group.
type BaniLine struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BaniID    uint `gorm:"uniqueIndex:idx_bani_lines_bani_line" json:"bani_id"`
	LineID    uint `gorm:"uniqueIndex:idx_bani_lines_bani_line" json:"line_id"`
	LineGroup int  `gorm:"index" json:"line_group"`
	Line      Line `gorm:"foreignKey:LineID" json:"line,omitempty"`
}

func (Bani) TableName() string {
	return "banis"
}

func (BaniLine) TableName() string {
	return "bani_lines"
}
