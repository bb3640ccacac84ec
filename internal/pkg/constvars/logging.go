package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingQueueKey          = "queue"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"
	LoggingMentorIDKey       = "mentor_id"
	LoggingDateKey           = "date_key"
	LoggingSlotIndexKey      = "slot_index"
	LoggingWeeklySlotsKey    = "weekly_slot_count"
	LoggingOverridesKey      = "override_count"
	LoggingEvictedKey        = "evicted"
)
