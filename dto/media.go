package dto

// Attachment DTOs
type AttachmentUploadResponse struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	FileName  string `json:"file_name"`
	FileType  string `json:"file_type"`
	FileSize  int64  `json:"file_size"`
}

type AttachmentListResponse struct {
	SessionID   string                     `json:"session_id"`
	Attachments []AttachmentUploadResponse `json:"attachments"`
}
