package entity

// User representa un usuario con acceso al dashboard.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano
}
