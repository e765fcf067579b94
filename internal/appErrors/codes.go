package appErrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeDonationNotFound    ErrorCode = "DONATION_NOT_FOUND"
	CodeLocationNotFound    ErrorCode = "LOCATION_NOT_FOUND"
	CodePackageNotFound     ErrorCode = "PACKAGE_NOT_FOUND"
	CodeCertificateNotFound ErrorCode = "CERTIFICATE_NOT_FOUND"
	CodeNewsNotFound        ErrorCode = "NEWS_NOT_FOUND"

	// Business logic
	CodeDuplicateAccount ErrorCode = "DUPLICATE_ACCOUNT"
	CodeEmailConflict    ErrorCode = "EMAIL_CONFLICT"
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	CodeCannotModifySelf ErrorCode = "CANNOT_MODIFY_SELF"

	// Payments
	CodeGatewayFailure   ErrorCode = "GATEWAY_FAILURE"
	CodeGatewayDisabled  ErrorCode = "GATEWAY_DISABLED"
	CodeInvalidSignature ErrorCode = "INVALID_SIGNATURE"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
