package response

const (
	MessageSuccess  = "Success"
	MessageAccepted = "Accepted"

	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode      = 1
	UnauthorizedErrorCode    = 401
	NotFoundErrorCode        = 404
	TooManyRequestsErrorCode = 429
	InternalServerErrorCode  = 500
)
