package service

// Caller-facing messages. Clients match on some of these, keep them stable.
const (
	MsgInternal = "Internal server error"

	MsgRegisterFieldsRequired = "Email, password and confirm password are required"
	MsgInvalidEmail           = "Enter a valid email address"
	MsgEmailExists            = "Email already exists"
	MsgPasswordMismatch       = "Passwords do not match"
	MsgPasswordTooShort       = "Password must be at least 8 characters"
	MsgRegistered             = "Registration successful! Please check your email to verify your account."

	MsgTokenRequired       = "Verification token is required"
	MsgEmailVerified       = "Email verified successfully"
	MsgAlreadyVerified     = "Email already verified"
	MsgVerificationExpired = "Verification link has expired"
	MsgVerificationInvalid = "Invalid verification link"
	MsgVerificationSent    = "Verification email sent"

	MsgLoginFieldsRequired = "Email and password are required"
	MsgInvalidLogin        = "Invalid Login Details"
	MsgNotVerified         = "Please verify your email before logging in"
	MsgInactive            = "Account is Inactive"
	MsgLoggedIn            = "Login Successful"
	MsgLoggedOut           = "Logout Successful"

	MsgEmailRequired       = "Email is required"
	MsgUserNotFound        = "User with this email does not exist"
	MsgResetCodeSent       = "Password reset code sent to your email"
	MsgResetFieldsRequired = "Email, code and new password are required"
	MsgInvalidResetCode    = "Invalid reset code"
	MsgResetCodeExpired    = "Reset code has expired"
	MsgPasswordReset       = "Password has been reset successfully"
	MsgTooManyResets       = "Too many reset requests. Please try again later."
	MsgTooManyResetGuesses = "Too many reset attempts. Please request a new code."

	MsgRefreshRequired = "Refresh token is required"
	MsgInvalidRefresh  = "Invalid or expired refresh token"
	MsgTokenRefreshed  = "Token refreshed"
)

// MinPasswordLength applies to registration and password reset.
const MinPasswordLength = 8
