package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/studyhall-app/studyhall_api/model"
	"gorm.io/gorm"
)

// AttachmentRepository tracks session attachment metadata. The bytes live in
// object storage; only the object key is kept here.
type AttachmentRepository struct {
	BaseRepository
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *AttachmentRepository) CreateAttachment(att *model.SessionAttachment) (*model.SessionAttachment, error) {
	id, _ := uuid.NewV7()
	att.ID = id.String()
	att.CreatedAt = time.Now()
	if err := ds.db.Create(att).Error; err != nil {
		return nil, err
	}
	return att, nil
}

func (ds *AttachmentRepository) GetSessionAttachments(userID, sessionID string) ([]model.SessionAttachment, error) {
	var attachments []model.SessionAttachment
	err := ds.db.Where("session_id = ? AND user_id = ?", sessionID, userID).
		Order("created_at ASC").Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

func (ds *AttachmentRepository) GetAttachment(userID, attachmentID string) (*model.SessionAttachment, error) {
	var att model.SessionAttachment
	if err := ds.db.Where("id = ? AND user_id = ?", attachmentID, userID).First(&att).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

func (ds *AttachmentRepository) DeleteAttachment(userID, attachmentID string) error {
	res := ds.db.Where("id = ? AND user_id = ?", attachmentID, userID).Delete(&model.SessionAttachment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
