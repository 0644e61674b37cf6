package user

import "mortgage-api/pkg/jwt_generator"

const (
	RoleCustomer = jwt_generator.RoleCustomer
	RoleAdmin    = jwt_generator.RoleAdmin
)

type SignupPayload struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyEmailPayload struct {
	Token string `json:"token" validate:"required"`
}

type ResendVerificationPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type RequestPasswordResetPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordPayload struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserDocument is the credential store record. Email matching is
// case-sensitive by exact match, same as the store it replaces.
type UserDocument struct {
	Id                string `bson:"_id"`
	Email             string `bson:"email"`
	Password          string `bson:"password"`
	FirstName         string `bson:"firstName"`
	LastName          string `bson:"lastName"`
	Role              string `bson:"role"`
	EmailVerified     bool   `bson:"emailVerified"`
	VerificationToken string `bson:"verificationToken,omitempty"`
	ResetToken        string `bson:"resetToken,omitempty"`
	RefreshToken      string `bson:"refreshToken,omitempty"`
	CreatedAt         int64  `bson:"createdAt"`
}

// UserResponse is the wire shape of a user. Password hash and the stored
// token fields never leave the server.
type UserResponse struct {
	Id            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"emailVerified"`
	CreatedAt     int64  `json:"createdAt"`
}

func (u *UserDocument) ToResponse() *UserResponse {
	return &UserResponse{
		Id:            u.Id,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

type LoginResult struct {
	User   *UserResponse        `json:"user"`
	Tokens jwt_generator.Tokens `json:"-"`
}
