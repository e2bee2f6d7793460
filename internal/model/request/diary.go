package request

type CreateDiary struct {
	Date          string   `json:"date" binding:"required"` // 2006-01-02
	Time          string   `json:"time" binding:"required"` // 15:04 or 15:04:05
	Title         string   `json:"title" binding:"required" validate:"required,max=200"`
	Detail        *string  `json:"detail" validate:"max=2000"`
	MoodScore     *string  `json:"moodScore"`
	MoodTags      []string `json:"moodTags"`
	PositiveScore *int     `json:"positiveScore" validate:"omitempty,min=0,max=5"`
	NegativeScore *int     `json:"negativeScore" validate:"omitempty,min=0,max=5"`
	Tags          *string  `json:"tags" validate:"omitempty,max=255"`
}

type UpdateDiary struct {
	Date          string   `json:"date" binding:"required"`
	Time          string   `json:"time" binding:"required"`
	Title         string   `json:"title" binding:"required" validate:"required,max=200"`
	Detail        *string  `json:"detail" validate:"max=2000"`
	MoodScore     *string  `json:"moodScore"`
	MoodTags      []string `json:"moodTags"`
	PositiveScore *int     `json:"positiveScore" validate:"omitempty,min=0,max=5"`
	NegativeScore *int     `json:"negativeScore" validate:"omitempty,min=0,max=5"`
	Tags          *string  `json:"tags" validate:"omitempty,max=255"`
}
