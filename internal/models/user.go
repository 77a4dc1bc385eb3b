package models

import "time"

// IdentityStatus is a user's stage in the parent identity review pipeline.
type IdentityStatus string

const (
	IdentityPending   IdentityStatus = "pending"
	IdentitySubmitted IdentityStatus = "submitted"
	IdentityApproved  IdentityStatus = "approved"
	IdentityRejected  IdentityStatus = "rejected"
)

// User represents a registered parent account.
type User struct {
	ID               string         `json:"id" gorm:"primaryKey;size:36"`
	Name             string         `json:"name"`
	Email            string         `json:"email" gorm:"uniqueIndex"` // stored lowercase, unique
	Password         string         `json:"-"`                        // bcrypt hash
	EmailVerified    bool           `json:"email_verified"`
	VerificationCode string         `json:"-"` // pending 6-digit email code, empty once verified
	IdentityStatus   IdentityStatus `json:"identity_status" gorm:"type:varchar(20);default:'pending'"`
	DocumentURLs     []string       `json:"document_urls,omitempty" gorm:"serializer:json"`
	RejectionReason  string         `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// UserCompact is the author/participant summary embedded in feed and chat payloads.
type UserCompact struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToCompact returns the public summary of the user.
func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Name: u.Name}
}

// RegisterRequest defines the request body for account registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailRequest defines the request body for confirming an email code
type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// ResendCodeRequest defines the request body for requesting a fresh email code
type ResendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UploadDocumentsRequest defines the request body for submitting identity documents
type UploadDocumentsRequest struct {
	DocumentURLs []string `json:"document_urls" validate:"required,min=1,dive,required"`
}
