package domain

import (
	"errors"
)

var (
	MessageSuccessRegister           = "User registered successfully"
	MessageSuccessLogin              = "Login successful"
	MessageSuccessGetUser            = "success get user"
	MessageSuccessUpdateUser         = "User updated successfully"
	MessageSuccessUploadProfileImage = "profile image uploaded successfully"

	MessageFailedRegister           = "failed to register user"
	MessageFailedLogin              = "failed to login"
	MessageFailedGetUser            = "failed to get user"
	MessageFailedUpdateUser         = "failed to update user"
	MessageFailedUploadProfileImage = "failed to upload profile image"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=50,username"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	// Pointer fields distinguish "omitted" from "set"; only present
	// fields are applied on update. ProfileImage is nullable, so it
	// additionally accepts an explicit null to unset the image.
	UpdateUserRequest struct {
		Username *string `json:"username" validate:"omitempty,min=3,max=50,username"`
		Email    *string `json:"email" validate:"omitempty,email"`
		Password *string `json:"password" validate:"omitempty,min=8"`

		ProfileImage Optional[string] `json:"profile_image"`
	}

	UserResponse struct {
		UserID       uint    `json:"user_id"`
		Username     string  `json:"username"`
		Email        string  `json:"email"`
		ProfileImage *string `json:"profile_image"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
