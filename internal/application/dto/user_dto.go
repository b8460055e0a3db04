package dto

// LoginRequest credenciales del formulario de login (form-data o JSON).
type LoginRequest struct {
	Email       string `json:"email" form:"email" validate:"required,email"`
	Password    string `json:"password" form:"password" validate:"required,min=6"`
	CallbackURL string `json:"callbackUrl" form:"callbackUrl"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session resultado de una autenticación exitosa.
type Session struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AuthErrorResponse cuerpo de un login fallido.
type AuthErrorResponse struct {
	Type    string `json:"type"` // invalid-credentials | other-error
	Message string `json:"message"`
}
