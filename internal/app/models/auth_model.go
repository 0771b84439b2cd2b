package models

type RegisterUserData struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterProfileData struct {
	Age     int    `json:"age" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type RegisterRequest struct {
	UserData    RegisterUserData    `json:"userData" validate:"required"`
	ProfileData RegisterProfileData `json:"profileData" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Age     int    `json:"age" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
