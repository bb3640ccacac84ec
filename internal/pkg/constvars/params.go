package constvars

const (
	URLParamMentorID  = "mentor_id"
	URLParamIndex     = "index"
	URLParamDate      = "date"
	URLParamImageKind = "image_kind"
)

const (
	URLQueryParamValue = "value"
)

const (
	FormFileImage = "image"
)
