package dto

type UpdateUserRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=2,max=20"`
	Password *string  `json:"password" validate:"omitempty,strongpassword"`
	Roles    []string `json:"roles" validate:"omitempty,min=1,dive,oneof=USER ADMIN SELLER"`
}
