package errors

import (
	"net/http"

	"huddle/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"此電子郵件已被註冊",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"建立使用者失敗",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"更新使用者失敗",
		"",
	)

	// Authentication-related errors
	ErrAuthNotFound = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_NOT_FOUND",
		"找不到認證方式",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"無效或已過期的重新整理權杖",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"密碼強度不足",
		"",
	)

	ErrPasswordForbiddenWords = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_FORBIDDEN_WORDS",
		"密碼包含禁止使用的字詞或模式",
		"",
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"OAuth 認證失敗",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_TOKEN_INVALID",
		"無效的 ID 權杖",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Friendship-related errors
	ErrFriendshipNotFound = NewBaseError(
		http.StatusNotFound,
		"FRIENDSHIP_NOT_FOUND",
		"找不到該好友關係",
		"",
	)

	ErrFriendshipExists = NewBaseError(
		http.StatusConflict,
		"FRIENDSHIP_EXISTS",
		"好友邀請已存在",
		"",
	)

	ErrFriendshipSelf = NewBaseError(
		http.StatusBadRequest,
		"FRIENDSHIP_SELF",
		"無法加自己為好友",
		"",
	)

	ErrFriendshipNotAddressee = NewBaseError(
		http.StatusForbidden,
		"FRIENDSHIP_NOT_ADDRESSEE",
		"只有被邀請者可以回覆好友邀請",
		"",
	)

	ErrFriendshipNotPending = NewBaseError(
		http.StatusConflict,
		"FRIENDSHIP_NOT_PENDING",
		"此好友邀請已被回覆",
		"",
	)

	ErrNotFriends = NewBaseError(
		http.StatusForbidden,
		"NOT_FRIENDS",
		"你們還不是好友",
		"",
	)

	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"找不到該活動",
		"",
	)

	ErrSessionAlreadyActive = NewBaseError(
		http.StatusConflict,
		"SESSION_ALREADY_ACTIVE",
		"您已有進行中的活動",
		"",
	)

	ErrSessionEnded = NewBaseError(
		http.StatusConflict,
		"SESSION_ENDED",
		"此活動已結束",
		"",
	)

	ErrSessionNotOwner = NewBaseError(
		http.StatusForbidden,
		"SESSION_NOT_OWNER",
		"只有發起者可以結束活動",
		"",
	)

	ErrSessionResponseExists = NewBaseError(
		http.StatusConflict,
		"SESSION_RESPONSE_EXISTS",
		"您已回覆過此活動",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"找不到該裝置",
		"",
	)

	ErrDeviceOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"DEVICE_OWNERSHIP_VIOLATION",
		"您沒有權限操作此裝置",
		"",
	)

	ErrInvalidPlatform = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PLATFORM",
		"不支援的裝置平台",
		"",
	)

	// Notification-related errors
	ErrNotificationDispatchFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_DISPATCH_FAILED",
		"推播發送失敗",
		"",
	)

	// ErrEventNotDeliverable marks an event that can never be delivered
	// no matter how often it is retried, such as one with a malformed
	// audience or an unknown type. Queue consumers ack these instead of
	// requesting redelivery.
	ErrEventNotDeliverable = NewBaseError(
		http.StatusUnprocessableEntity,
		"EVENT_NOT_DELIVERABLE",
		"推播事件格式錯誤",
		"",
	)

	// Refresh token-related errors
	ErrRefreshTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"REFRESH_TOKEN_NOT_FOUND",
		"找不到重新整理權杖",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"重新整理權杖已過期",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"已達到最大同時登入裝置數量",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
