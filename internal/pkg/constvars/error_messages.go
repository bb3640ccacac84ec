package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"url":          "must be a valid URL",
	"numeric":      "must be a number",
	"notblank":     "must not be blank",
	"time24":       "must be a 24-hour time formatted as HH:MM",
	"date_key":     "must be a date formatted as YYYY-MM-DD",
	"weekday":      "must be a day of the week from Monday to Sunday",
	"slot_field":   "must be either startTime or endTime",
	"phone_digits": "must contain 8-15 digits only",
	"digits":       "must contain digits only",
	"upi_id":       "must be a valid UPI ID",
	"meridiem":     "must be either AM or PM",
	"quarter_hour": "must be one of 00, 15, 30 or 45",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientMentorNotFound                = "mentor not found"
	ErrClientSlotNotFound                  = "the selected time slot does not exist"
	ErrClientInvalidTimeRange              = "start time must be earlier than end time"
	ErrClientInvalidTimeOfDay              = "time must be formatted as HH:MM"
	ErrClientInvalidDate                   = "date must be formatted as YYYY-MM-DD"
	ErrClientInvalidImageFormat            = "only image files can be uploaded"
	ErrClientSaveFailed                    = "your availability could not be saved, please try again"
	ErrClientSaveInProgress                = "your availability is being saved, please wait a moment"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientRequestBodyTooLarge           = "the request is too large"
	ErrClientRouteNotFound                 = "the requested resource does not exist"
	ErrClientMethodNotAllowed              = "this method is not allowed on the requested resource"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevValidationFailed         = "validation failed"
	ErrDevURLParamValidationFailed = "URL param %s validation failed"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevServerProcess            = "failed to process request"
	ErrDevServerDeadlineExceeded   = "deadline exceeded"
	ErrDevMissingRequestID         = "request ID not found in context"
	ErrDevImageTooLarge            = "image exceeds the maximum upload size of %dMB"
	ErrDevImageNotAnImage          = "content type %q is not an image"
	ErrDevTooManyRequests          = "rate limit exceeded"
	ErrDevRequestBodyTooLarge      = "request body exceeds %dMB"
	ErrDevRouteNotFound            = "no route matches %s %s"
	ErrDevMethodNotAllowed         = "method %s not allowed on %s"
	ErrDevPanicRecovered           = "recovered from panic"

	// Availability messages
	ErrDevAvailabilityIndexOutOfRange = "availability slot index out of range"
	ErrDevAvailabilityInvalidRange    = "availability slot start time is not before end time"
	ErrDevAvailabilityInvalidTime     = "availability slot time is not canonical HH:MM"
	ErrDevAvailabilityInvalidDate     = "availability date key is not YYYY-MM-DD"
	ErrDevAvailabilitySaveFailed      = "failed to hand availability snapshot to mentor repository"
	ErrDevAvailabilitySaveInProgress  = "availability save lock is held by another save"

	// Mentor messages
	ErrDevMentorNotFound = "mentor document not found"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBStringNotObjectID      = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisSetData     = "failed to set data into redis"
	ErrDevRedisDeleteData  = "failed to delete data from redis"
	ErrDevRedisExpireData  = "failed to set expiration on redis key"
	ErrDevRedisLockNotOwns = "lock is not owned by this client"

	// Minio messages
	ErrDevMinioFailedToCreateObject    = "failed to create object in minio bucket %s"
	ErrDevMinioFailedToPresignedObject = "failed to create presigned URL in minio bucket %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"
)
