package dashboard

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type SettingRequest struct {
	Value *bool `json:"value" binding:"required"`
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value bool   `json:"value"`
}
