package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/studyhall-app/studyhall_api/dto"
	"github.com/studyhall-app/studyhall_api/model"
	"github.com/studyhall-app/studyhall_api/services/repositories"
	"github.com/studyhall-app/studyhall_api/shared"
	log "github.com/sirupsen/logrus"
)

// MediaService handles session attachments: worksheet photos, sketches and
// audio notes. The bytes live in MinIO, the metadata row next to the session.
type MediaService struct {
	appContext.DefaultService

	sqlSvc   *SqliteService
	minioSvc *MinIOService
	baseURL  string

	sessions    *repositories.SessionRepository
	attachments *repositories.AttachmentRepository
}

const MEDIA_SVC = "media_svc"

const (
	maxImageBytes = 5 * 1024 * 1024
	maxAudioBytes = 20 * 1024 * 1024
	maxDocBytes   = 10 * 1024 * 1024
)

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *appContext.Context) error {
	svc.baseURL = os.Getenv("BASE_URL")
	if svc.baseURL == "" {
		svc.baseURL = "http://localhost:8000"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)

	db := svc.sqlSvc.Db()
	svc.sessions = repositories.NewSessionRepository(db)
	svc.attachments = repositories.NewAttachmentRepository(db)
	return nil
}

// ==================== ATTACHMENT UPLOAD ====================

func (svc *MediaService) UploadAttachment(userID, sessionID string, file *multipart.FileHeader) (*dto.AttachmentUploadResponse, error) {
	// Attachments only exist on sessions the caller owns
	if _, err := svc.sessions.GetSession(userID, sessionID); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	kind, err := attachmentKind(file.Filename)
	if err != nil {
		return nil, err
	}

	if err := checkAttachmentSize(kind, file.Size); err != nil {
		return nil, err
	}

	ext := filepath.Ext(file.Filename)
	objectKey := fmt.Sprintf("%s/%s/%d%s", userID, sessionID, time.Now().UnixNano(), ext)

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if _, err := svc.minioSvc.UploadFile(objectKey, src, file.Size, contentType); err != nil {
		return nil, shared.NewInternalError(err, "Failed to upload file to storage")
	}

	att, err := svc.attachments.CreateAttachment(&model.SessionAttachment{
		SessionID:   sessionID,
		UserID:      userID,
		FileName:    file.Filename,
		ObjectKey:   objectKey,
		ContentType: contentType,
		SizeBytes:   file.Size,
	})
	if err != nil {
		// Orphaned object if this fails too; the row is authoritative
		if delErr := svc.minioSvc.DeleteFile(objectKey); delErr != nil {
			log.Printf("Failed to remove orphaned object %s: %v", objectKey, delErr)
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	url := svc.attachmentURL(objectKey)

	log.Printf("Uploaded attachment %s for session %s", att.ID, sessionID)

	return &dto.AttachmentUploadResponse{
		ID:        att.ID,
		SessionID: sessionID,
		URL:       url,
		FileName:  att.FileName,
		FileType:  kind,
		FileSize:  att.SizeBytes,
	}, nil
}

// ==================== ATTACHMENT RETRIEVAL ====================

func (svc *MediaService) GetSessionAttachments(userID, sessionID string) (*dto.AttachmentListResponse, error) {
	if _, err := svc.sessions.GetSession(userID, sessionID); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	rows, err := svc.attachments.GetSessionAttachments(userID, sessionID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	attachments := make([]dto.AttachmentUploadResponse, 0, len(rows))
	for _, att := range rows {
		kind, _ := attachmentKind(att.FileName)
		attachments = append(attachments, dto.AttachmentUploadResponse{
			ID:        att.ID,
			SessionID: att.SessionID,
			URL:       svc.attachmentURL(att.ObjectKey),
			FileName:  att.FileName,
			FileType:  kind,
			FileSize:  att.SizeBytes,
		})
	}

	return &dto.AttachmentListResponse{
		SessionID:   sessionID,
		Attachments: attachments,
	}, nil
}

// ==================== ATTACHMENT DELETION ====================

func (svc *MediaService) DeleteAttachment(userID, attachmentID string) error {
	att, err := svc.attachments.GetAttachment(userID, attachmentID)
	if err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	if err := svc.minioSvc.DeleteFile(att.ObjectKey); err != nil {
		log.Printf("Failed to delete object %s from MinIO: %v", att.ObjectKey, err)
	}

	if err := svc.attachments.DeleteAttachment(userID, attachmentID); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

// ==================== FILE VALIDATION ====================

func attachmentKind(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		return shared.AttachmentKindImage, nil
	case ".mp3", ".wav", ".aac", ".m4a", ".ogg":
		return shared.AttachmentKindAudio, nil
	case ".pdf", ".txt", ".md":
		return shared.AttachmentKindDoc, nil
	default:
		return "", shared.NewBadRequestError(nil, "Unsupported attachment format")
	}
}

func checkAttachmentSize(kind string, size int64) error {
	var limit int64
	switch kind {
	case shared.AttachmentKindImage:
		limit = maxImageBytes
	case shared.AttachmentKindAudio:
		limit = maxAudioBytes
	default:
		limit = maxDocBytes
	}

	if size > limit {
		return shared.NewBadRequestError(nil, fmt.Sprintf("Attachment too large. Maximum size: %dMB", limit/(1024*1024)))
	}
	return nil
}

func (svc *MediaService) attachmentURL(objectKey string) string {
	url, err := svc.minioSvc.GetFileURL(objectKey, 24*time.Hour)
	if err != nil {
		log.Printf("Failed to generate presigned URL for %s: %v", objectKey, err)
		return fmt.Sprintf("%s/%s/%s", svc.baseURL, svc.minioSvc.GetBucketName(), objectKey)
	}
	return url
}
