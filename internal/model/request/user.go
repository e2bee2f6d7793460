package request

type CreateUserWithPassword struct {
	Username string `json:"username" binding:"required" validate:"required,min=1,max=64"`
	Password string `json:"password" binding:"required" validate:"required,min=6,max=128"`
}
