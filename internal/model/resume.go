package model

// Resume is an uploaded resume file's metadata; the file body lives in the
// configured storage backend.
// swagger:model Resume
type Resume struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"userId"`
	Filename string `gorm:"size:255;not null" json:"filename"`
	URL      string `gorm:"size:500;not null" json:"url"`
	Size     int64  `json:"size"`
}

func (Resume) TableName() string {
	return "resumes"
}
