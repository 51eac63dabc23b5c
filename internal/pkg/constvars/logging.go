package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingDataKey           = "data"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingRedisKey          = "redis_key"
	LoggingLockTokenKey      = "lock_token"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectKey         = "object_key"
	LoggingObjectSizeKey     = "object_size"
	LoggingDraftIDKey        = "draft_id"
	LoggingEvictedKey        = "evicted"
	LoggingRemainingKey      = "remaining"
	LoggingCronSpecKey       = "cron_spec"
	LoggingFallbackKey       = "fallback"
	LoggingEncounterIDKey    = "encounter_id"
	LoggingRegionIDKey       = "region_id"
	LoggingTransportKey      = "transport"
	LoggingProviderJobIDKey  = "provider_job_id"
	LoggingDraftCountKey     = "draft_count"
	LoggingQueueNameKey      = "queue_name"
	LoggingEventTypeKey      = "event_type"
	LoggingFaxNumberKey      = "fax_number"
	LoggingURLKey            = "url"
)
