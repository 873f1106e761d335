package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Details is only populated in development mode.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// --- Request / Response types ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createUserResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// bulkUserItem carries one candidate in a bulk request. No validate tags:
// per-item validation happens in the service so one bad entry never
// aborts the batch.
type bulkUserItem struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type bulkUserRequest struct {
	Users []bulkUserItem `json:"users"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"is_admin"`
}

// usernameResponse is the member-list projection: usernames only.
type usernameResponse struct {
	Username string `json:"username"`
}

// adminUserResponse is the admin panel projection. The password hash is
// never serialized.
type adminUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}
