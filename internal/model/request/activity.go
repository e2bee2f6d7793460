package request

type CreateActivity struct {
	Date     string  `json:"date" binding:"required"` // 2006-01-02
	AllDay   bool    `json:"allDay"`
	Time     *string `json:"time"` // required unless allDay
	Title    string  `json:"title" binding:"required" validate:"required,max=200"`
	Category *string `json:"category" validate:"omitempty,max=30"`
	Status   string  `json:"status"`
	Notes    *string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateActivity struct {
	Date     string  `json:"date" binding:"required"`
	AllDay   bool    `json:"allDay"`
	Time     *string `json:"time"`
	Title    string  `json:"title" binding:"required" validate:"required,max=200"`
	Category *string `json:"category" validate:"omitempty,max=30"`
	Status   string  `json:"status"`
	Notes    *string `json:"notes" validate:"omitempty,max=2000"`
}
