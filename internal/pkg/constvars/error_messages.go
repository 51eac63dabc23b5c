package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientDraftNotFound                 = "draft not found"
	ErrClientRecipientFaxNotConfigured     = "recipient fax not configured for this region"
	ErrClientInterfaxSendFailedFormat      = "InterFAX send failed: %s"
	ErrClientPDFFillFailedFormat           = "PDF fill failed: %s"
	ErrClientDraftSendInProgress           = "a send for this draft is already in progress"
	ErrClientObjectNotFound                = "object not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseForm            = "cannot parse form body"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed           = "validation failed"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevMissingSession             = "session id missing from context"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevReadHTTPResponse           = "failed to read HTTP response body"
	ErrDevDecodeHTTPResponse         = "failed to decode HTTP response from %s"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToGetObject     = "failed to get object from bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevRedisSetData               = "failed to set data in redis"
	ErrDevRedisDeleteData            = "failed to delete data in redis"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevDraftNotFound              = "draft metadata not found for id %s"
	ErrDevDraftLocked                = "draft %s is locked by another send"
	ErrDevRecipientFaxMissing        = "no recipient fax for region %s"
	ErrDevInterfaxSend               = "interfax provider rejected the fax"
	ErrDevPDFRender                  = "failed to render MADO PDF"
	ErrDevRecipientsDirectoryLoad    = "failed to load recipients directory"
	ErrDevInvalidObjectKey           = "object key %s outside of the drafts prefix"
	ErrDevObjectNotFound             = "object %s not found in storage"
	ErrDevUnknownDraft               = "draft %s is not in the page list"
)
