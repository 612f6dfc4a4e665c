package shared

const (
	UserID = "user_id"

	RangeWeek  = "week"
	RangeMonth = "month"
	RangeAll   = "all"

	AttachmentKindImage = "image"
	AttachmentKindAudio = "audio"
	AttachmentKindDoc   = "document"
)
