package response

const (
	messageSuccess       = "Success"
	messageInternalError = "Something went wrong"
)
