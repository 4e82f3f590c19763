package database

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"edemy/course"
	"edemy/models"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftRepository persists educators' course drafts. Every lookup is scoped
// to the owning educator.
type DraftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Create stores a new draft and returns its id
func (r *DraftRepository) Create(educatorID string, d *course.Draft) (*models.CourseDraft, error) {
	row := &models.CourseDraft{
		DraftID:    uuid.NewString(),
		EducatorID: educatorID,
	}
	if err := fill(row, d); err != nil {
		return nil, err
	}
	if err := r.db.Create(row).Error; err != nil {
		return nil, errors.Wrap(err, "create draft")
	}
	return row, nil
}

// Get loads a draft and decodes its tree
func (r *DraftRepository) Get(educatorID, draftID string) (*models.CourseDraft, *course.Draft, error) {
	var row models.CourseDraft
	err := r.db.Where("draft_id = ? AND educator_id = ?", draftID, educatorID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "load draft")
	}

	d := course.NewDraft()
	if len(row.Content) > 0 {
		if err := json.Unmarshal(row.Content, d); err != nil {
			return nil, nil, errors.Wrap(err, "decode draft")
		}
	}
	return &row, d, nil
}

// Save writes the draft tree back to its row
func (r *DraftRepository) Save(row *models.CourseDraft, d *course.Draft) error {
	if err := fill(row, d); err != nil {
		return err
	}
	return errors.Wrap(r.db.Save(row).Error, "save draft")
}

func (r *DraftRepository) List(educatorID string) ([]models.CourseDraft, error) {
	var rows []models.CourseDraft
	err := r.db.Where("educator_id = ?", educatorID).Order("updated_at desc").Find(&rows).Error
	return rows, errors.Wrap(err, "list drafts")
}

func (r *DraftRepository) Delete(educatorID, draftID string) error {
	res := r.db.Where("draft_id = ? AND educator_id = ?", draftID, educatorID).Delete(&models.CourseDraft{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete draft")
	}
	if res.RowsAffected == 0 {
		return ErrDraftNotFound
	}
	return nil
}

func fill(row *models.CourseDraft, d *course.Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "encode draft")
	}
	row.Title = d.Title
	row.ThumbnailPath = d.Thumbnail
	row.Content = datatypes.JSON(b)
	return nil
}
