package Dtos

type LoginRequestDto struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponseDto mirrors the login contract: on failure Username is null
// and Success false, with a message that never says which credential was
// wrong.
type LoginResponseDto struct {
	Username *string `json:"username"`
	Success  bool    `json:"success"`
	Message  string  `json:"message"`
}
