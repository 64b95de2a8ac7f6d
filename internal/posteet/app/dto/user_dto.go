package dto

// UpdateUserRequest описывает частичное обновление профиля.
// Отсутствующие поля не меняются.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
