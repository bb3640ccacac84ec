package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const ServiceName = "mentor-service"

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ResourceMentors      = "mentors"
	ResourceAvailability = "availability"
	ResourceTime         = "time"
)

const (
	MongoCollectionMentors = "mentors"
)

const (
	MinioMentorObjectPathFormat = "mentors/%s/%s-%s%s"
)

// Outcomes of a compare-and-set style redis script.
const (
	RedisCompareMismatch   int64 = -1
	RedisCompareKeyMissing int64 = 0
	RedisCompareMatched    int64 = 1
)
