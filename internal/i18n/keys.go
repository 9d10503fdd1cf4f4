// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyInternalError = "error.internal"
	KeyAccessDenied  = "error.access_denied"
	KeyRateLimited   = "error.rate_limited"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthSignupSuccess      = "auth.signup_success"

	// Users
	KeyUserNotFound = "user.not_found"

	// Stores
	KeyStoreCreated  = "store.created"
	KeyStoreNotFound = "store.not_found"
	KeyStoreNotOwner = "store.not_owner"

	// Items
	KeyItemCreated      = "item.created"
	KeyItemUpdated      = "item.updated"
	KeyItemDeleted      = "item.deleted"
	KeyItemNotFound     = "item.not_found"
	KeyItemNotOwner     = "item.not_owner"
	KeyItemImageCreated = "item.image_created"

	// Likes
	KeyLikeCreated  = "like.created"
	KeyLikeExists   = "like.exists"
	KeyLikeDeleted  = "like.deleted"
	KeyLikeNotFound = "like.not_found"

	// Validation
	KeyValidationInvalid = "validation.invalid"
	KeyValidationID      = "validation.invalid_id"

	// Search
	KeySearchUnknownType = "search.unknown_type"
)
